// Package builders constructs fillable tables from external result
// shapes - database/sql result sets and CSV streams. The produced
// tables are regular data.Tables, so they can be used directly as
// tabular fill sources.
package builders

import (
	"database/sql"
	"fmt"

	"github.com/cwooldridge/csla/data"
)

// TableFromRows drains a database/sql result set into a new table.
// The header comes from the result's column names; cell values go
// through a type processor keyed by the column's database type name
// (the default processor stringifies byte slices).
func TableFromRows(name string, rows *sql.Rows, opts ...Option) (*data.Table, error) {
	config := &config{
		typeProcessors: make(map[string]func(any) any),
	}
	for _, opt := range opts {
		opt(config)
	}

	header, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("rows.Columns: %w", err)
	}

	table := data.NewTable(name)
	for _, column := range header {
		if err := table.AddColumn(column); err != nil {
			return nil, fmt.Errorf("table.AddColumn: %w", err)
		}
	}

	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("rows.ColumnTypes: %w", err)
	}

	table.BeginLoadData()
	defer table.EndLoadData()

	for rows.Next() {
		cells := make([]any, len(header))
		cellPointers := make([]any, len(header))
		for i := range cells {
			cellPointers[i] = &cells[i]
		}

		if err := rows.Scan(cellPointers...); err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}

		row := table.NewRow()
		for i := range cells {
			proc := config.getTypeProcessor(types[i].DatabaseTypeName())
			row[i] = fmt.Sprint(proc(cells[i]))
		}

		if err := table.AppendRow(row); err != nil {
			return nil, fmt.Errorf("table.AppendRow: %w", err)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return table, nil
}
