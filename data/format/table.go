package format

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/cwooldridge/csla/data"
)

var _ data.Formatter = (*Table)(nil)

// Table renders rows as a human readable text table.
type Table struct{}

func NewTable() *Table {
	return &Table{}
}

func (tf *Table) Format(header data.Header, rows []data.Row) ([]byte, error) {
	var tableHeader table.Row
	for _, h := range header {
		tableHeader = append(tableHeader, h)
	}

	var tableRows []table.Row
	for _, row := range rows {
		tableRow := make(table.Row, len(row))
		for i, cell := range row {
			tableRow[i] = cell
		}
		tableRows = append(tableRows, tableRow)
	}

	t := table.NewWriter()
	t.AppendHeader(tableHeader)
	t.AppendRows(tableRows)
	t.AppendSeparator()
	t.SetStyle(table.StyleLight)
	t.Style().Format = table.FormatOptions{
		Footer: text.FormatDefault,
		Header: text.FormatDefault,
		Row:    text.FormatDefault,
	}
	t.Style().Options.DrawBorder = false

	return []byte(t.Render()), nil
}
