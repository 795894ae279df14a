package data

import "fmt"

// Dataset is an ordered collection of uniquely named tables.
type Dataset struct {
	name   string
	tables []*Table
}

func NewDataset(name string) *Dataset {
	return &Dataset{name: name}
}

func (ds *Dataset) Name() string {
	return ds.name
}

// Table looks up a table by name.
func (ds *Dataset) Table(name string) (*Table, bool) {
	for _, t := range ds.tables {
		if t.name == name {
			return t, true
		}
	}
	return nil, false
}

// AddTable adds a table to the dataset.
func (ds *Dataset) AddTable(t *Table) error {
	if _, ok := ds.Table(t.name); ok {
		return fmt.Errorf("table already exists: %q", t.name)
	}

	ds.tables = append(ds.tables, t)
	return nil
}

func (ds *Dataset) Tables() []*Table {
	return ds.tables
}
