package format

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/cwooldridge/csla/data"
)

var _ data.Formatter = (*CSV)(nil)

type CSV struct{}

func NewCSV() *CSV {
	return &CSV{}
}

func (cf *CSV) Format(header data.Header, rows []data.Row) ([]byte, error) {
	records := [][]string{
		header,
	}
	for _, row := range rows {
		records = append(records, row)
	}

	b := new(bytes.Buffer)
	w := csv.NewWriter(b)

	err := w.WriteAll(records)
	if err != nil {
		return nil, fmt.Errorf("w.WriteAll: %w", err)
	}

	return b.Bytes(), nil
}
