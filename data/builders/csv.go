package builders

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/cwooldridge/csla/data"
)

// TableFromCSV reads a CSV stream into a new table. The first record
// is the header; remaining records become rows. Records shorter than
// the header are padded, longer ones truncated.
func TableFromCSV(name string, r io.Reader) (*data.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return data.NewTable(name), nil
		}
		return nil, fmt.Errorf("reader.Read: %w", err)
	}

	table := data.NewTable(name)
	for _, column := range header {
		if err := table.AddColumn(column); err != nil {
			return nil, fmt.Errorf("table.AddColumn: %w", err)
		}
	}

	table.BeginLoadData()
	defer table.EndLoadData()

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reader.Read: %w", err)
		}

		row := table.NewRow()
		for i := range row {
			if i < len(record) {
				row[i] = record[i]
			}
		}

		if err := table.AppendRow(row); err != nil {
			return nil, fmt.Errorf("table.AppendRow: %w", err)
		}
	}

	return table, nil
}
