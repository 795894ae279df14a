package data

import (
	"fmt"
	"io"
	"log/slog"
	"reflect"

	"github.com/google/uuid"
)

// ObjectAdapter fills dataset tables from arbitrary in-memory values
// without an up-front schema: the column set is rediscovered from the
// source on every fill.
//
// An adapter instance is not safe for concurrent fills - use one
// instance per concurrent invocation.
type ObjectAdapter struct {
	logger *slog.Logger
}

type adapterConfig struct {
	logger *slog.Logger
}

type AdapterOption func(*adapterConfig)

// WithLogger makes the adapter log discovery and copy progress.
// By default the adapter is silent.
func WithLogger(logger *slog.Logger) AdapterOption {
	return func(c *adapterConfig) {
		c.logger = logger
	}
}

func NewObjectAdapter(opts ...AdapterOption) *ObjectAdapter {
	config := &adapterConfig{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(config)
	}

	return &ObjectAdapter{
		logger: config.logger,
	}
}

// Fill fills a table named after the source's runtime type, creating
// it in the dataset when absent. It returns the filled table.
func (a *ObjectAdapter) Fill(ds *Dataset, source any) (*Table, error) {
	if source == nil {
		return nil, ErrNilSource
	}
	return a.FillNamed(ds, inferTableName(source), source)
}

// FillNamed fills the named table of the dataset, creating it when
// absent. A newly created table is added to the dataset only after a
// successful fill.
func (a *ObjectAdapter) FillNamed(ds *Dataset, tableName string, source any) (*Table, error) {
	if source == nil {
		return nil, ErrNilSource
	}

	table, exists := ds.Table(tableName)
	if !exists {
		table = NewTable(tableName)
	}

	if err := a.FillTable(table, source); err != nil {
		return nil, err
	}

	if !exists {
		if err := ds.AddTable(table); err != nil {
			return nil, fmt.Errorf("ds.AddTable: %w", err)
		}
	}

	return table, nil
}

// FillTable fills a single table from the source: discover the column
// set, ensure the columns exist on the table and append one row per
// source element. Once past the nil check a fill always succeeds -
// unreadable fields surface as error text inside the affected cells,
// not as a failed fill.
func (a *ObjectAdapter) FillTable(table *Table, source any) error {
	if source == nil {
		return ErrNilSource
	}

	columns := discoverColumns(source)
	a.logger.Debug("discovered schema",
		"table", table.Name(),
		"columns", len(columns))

	appended := a.copyData(table, source, columns)
	a.logger.Debug("copied source data",
		"table", table.Name(),
		"rows", appended)

	return nil
}

// copyData ensures the discovered columns exist on the table and
// appends one row per element of the inner source. Returns the number
// of appended rows.
func (a *ObjectAdapter) copyData(table *Table, source any, columns Header) int {
	if source == nil || len(columns) == 0 {
		return 0
	}

	for _, name := range columns {
		if table.HasColumn(name) {
			continue
		}
		// additive only: pre-existing columns are never touched
		_ = table.AddColumn(name)
	}

	table.BeginLoadData()
	defer table.EndLoadData()

	appended := 0
	next, hasNext := elementIterator(source)
	for hasNext() {
		element := next()

		row := table.NewRow()
		for _, name := range columns {
			value, err := getField(element, name)
			if err != nil {
				// degrade locally: the message becomes the cell
				value = err.Error()
			}
			i, _ := table.ColumnIndex(name)
			row[i] = value
		}
		_ = table.AppendRow(row)
		appended++
	}

	return appended
}

// inferTableName derives a table name from the source's runtime type.
// Tables and views keep their own name, lists are named after their
// element type and anonymous types fall back to a generated name.
func inferTableName(source any) string {
	switch src := source.(type) {
	case *Table:
		return src.Name()
	case *View:
		return src.Table().Name()
	}

	t := reflect.TypeOf(source)
	for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		t = t.Elem()
	}

	if name := t.Name(); name != "" {
		return name
	}
	return "Table_" + uuid.New().String()
}
