package data

import (
	"fmt"
)

// Table is an ordered set of named columns and an ordered set of rows.
// Columns are additive only: they can be appended, never removed or
// renamed. Rows always span the full current width of the table -
// appending a column pads all existing rows with an empty cell.
type Table struct {
	name    string
	columns []*Column
	index   map[string]int
	rows    []Row

	// bulk-load state, see BeginLoadData
	loading       bool
	onRowAppended func(row Row)
}

func NewTable(name string) *Table {
	return &Table{
		name:  name,
		index: make(map[string]int),
	}
}

func (t *Table) Name() string {
	return t.name
}

// SetOnRowAppended registers a callback invoked after each appended
// row. The callback is suspended while a bulk load is in progress.
func (t *Table) SetOnRowAppended(fn func(row Row)) {
	t.onRowAppended = fn
}

func (t *Table) Header() Header {
	header := make(Header, len(t.columns))
	for i, col := range t.columns {
		header[i] = col.Name
	}
	return header
}

func (t *Table) Columns() []*Column {
	return t.columns
}

func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// AddColumn appends a new column to the table. Existing rows are
// padded with an empty cell for the new column.
func (t *Table) AddColumn(name string) error {
	if t.HasColumn(name) {
		return fmt.Errorf("column already exists: %q", name)
	}

	t.index[name] = len(t.columns)
	t.columns = append(t.columns, &Column{Name: name})

	for i := range t.rows {
		t.rows[i] = append(t.rows[i], "")
	}

	return nil
}

// NewRow returns an empty row spanning the current table width.
// The row is not part of the table until passed to AppendRow.
func (t *Table) NewRow() Row {
	return make(Row, len(t.columns))
}

// AppendRow appends a row to the table. Outside of a bulk load the
// row width is validated against the table width and the appended
// callback fires; during a bulk load both are suspended and a short
// row is padded instead.
func (t *Table) AppendRow(row Row) error {
	if !t.loading && len(row) != len(t.columns) {
		return fmt.Errorf("row width %d does not match table width %d", len(row), len(t.columns))
	}

	for len(row) < len(t.columns) {
		row = append(row, "")
	}
	t.rows = append(t.rows, row)

	if !t.loading && t.onRowAppended != nil {
		t.onRowAppended(row)
	}

	return nil
}

// BeginLoadData enters the bulk-load scope: per-row validation and
// appended callbacks are suspended until EndLoadData.
func (t *Table) BeginLoadData() {
	t.loading = true
}

func (t *Table) EndLoadData() {
	t.loading = false
}

func (t *Table) Rows() []Row {
	return t.rows
}

func (t *Table) Len() int {
	return len(t.rows)
}

// Format renders the table's header and rows with the provided formatter.
func (t *Table) Format(formatter Formatter) ([]byte, error) {
	out, err := formatter.Format(t.Header(), t.rows)
	if err != nil {
		return nil, fmt.Errorf("formatter.Format: %w", err)
	}
	return out, nil
}

// List makes a Table a ListSource: iterating a table means iterating
// its default view.
func (t *Table) List() any {
	return t.DefaultView()
}

func (t *Table) DefaultView() *View {
	return &View{table: t}
}

// View is a read window over a table. Its rows carry the column
// names of the underlying table.
type View struct {
	table *Table
}

func (v *View) Table() *Table {
	return v.table
}

func (v *View) Len() int {
	return len(v.table.rows)
}

func (v *View) Row(i int) *ViewRow {
	return &ViewRow{table: v.table, index: i}
}

var _ FieldProvider = (*ViewRow)(nil)

// ViewRow is a single row of a View.
type ViewRow struct {
	table *Table
	index int
}

func (r *ViewRow) FieldNames() []string {
	return r.table.Header()
}

func (r *ViewRow) Field(name string) (any, error) {
	i, ok := r.table.ColumnIndex(name)
	if !ok {
		return nil, fmt.Errorf("no column %q on table %q", name, r.table.name)
	}
	return r.table.rows[r.index][i], nil
}
