// Package mock provides test doubles for fill sources.
package mock

import (
	"fmt"

	"github.com/cwooldridge/csla/data"
)

var _ data.FieldProvider = (*Record)(nil)

// Record is a mocked field provider with a fixed field order and
// configurable per-field values and read failures.
type Record struct {
	names  []string
	config *recordConfig
}

func NewRecord(fieldNames []string, opts ...RecordOption) *Record {
	config := &recordConfig{
		values:      make(map[string]any),
		fieldErrors: make(map[string]error),
	}
	for _, opt := range opts {
		opt(config)
	}

	return &Record{
		names:  fieldNames,
		config: config,
	}
}

func (r *Record) FieldNames() []string {
	return r.names
}

func (r *Record) Field(name string) (any, error) {
	if err, ok := r.config.fieldErrors[name]; ok {
		return nil, err
	}
	if r.config.panicFields[name] {
		panic("mocked field read panic: " + name)
	}

	value, ok := r.config.values[name]
	if !ok {
		return nil, fmt.Errorf("unknown field: %q", name)
	}
	return value, nil
}
