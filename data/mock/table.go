package mock

import (
	"fmt"

	"github.com/cwooldridge/csla/data"
)

// NewTable returns a table with the provided header and rows.
// It panics on invalid input, so it is only meant for tests.
func NewTable(name string, header data.Header, rows []data.Row) *data.Table {
	table := data.NewTable(name)

	for _, column := range header {
		if err := table.AddColumn(column); err != nil {
			panic(fmt.Sprintf("mock table %q: %s", name, err))
		}
	}

	for _, row := range rows {
		if err := table.AppendRow(row); err != nil {
			panic(fmt.Sprintf("mock table %q: %s", name, err))
		}
	}

	return table
}

// NewRows returns rows in form of:
//
//	{ "<index>", "row_<index>" }
//
// where the first index is "from" and the last one is one less than "to".
func NewRows(from, to int) []data.Row {
	var rows []data.Row

	for i := from; i < to; i++ {
		rows = append(rows, data.Row{fmt.Sprint(i), fmt.Sprintf("row_%d", i)})
	}

	return rows
}
