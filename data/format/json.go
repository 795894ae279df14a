package format

import (
	"encoding/json"
	"fmt"

	"github.com/cwooldridge/csla/data"
)

var _ data.Formatter = (*JSON)(nil)

type JSON struct{}

func NewJSON() *JSON {
	return &JSON{}
}

func (jf *JSON) Format(header data.Header, rows []data.Row) ([]byte, error) {
	records := make([]map[string]string, 0, len(rows))

	for _, row := range rows {
		record := make(map[string]string, len(row))
		for i, val := range row {
			var h string
			if i < len(header) {
				h = header[i]
			} else {
				h = fmt.Sprintf("<unknown-field-%d>", i)
			}
			record[h] = val
		}
		records = append(records, record)
	}

	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json.MarshalIndent: %w", err)
	}

	return out, nil
}
