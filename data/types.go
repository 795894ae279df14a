package data

type (
	// Row and Header are attributes of a Table.
	// Cells are plain text - the fill adapter converts every source
	// value to its default string representation.
	Row    []string
	Header []string

	// Formatter converts header and rows to bytes
	Formatter interface {
		Format(header Header, rows []Row) ([]byte, error)
	}
)

// Column is a single named column of a Table.
type Column struct {
	Name string
}

// ListSource is the capability of a value to produce the list that
// should actually be iterated in its place. A Table implements it by
// returning its default View.
type ListSource interface {
	List() any
}

// FieldProvider is the capability of a value to be asked for named
// fields. Types opt in to expose fields the fill adapter cannot see
// through plain struct reflection; a ViewRow implements it with the
// columns of its underlying table.
type FieldProvider interface {
	FieldNames() []string
	Field(name string) (any, error)
}
