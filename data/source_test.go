package data

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type address struct {
	Street string
	city   string
}

// hybrid declares "Street" both through the provider capability and
// as a struct field
type hybrid struct {
	Street string
}

func (h hybrid) FieldNames() []string {
	return []string{"Street"}
}

func (h hybrid) Field(name string) (any, error) {
	if name != "Street" {
		return nil, errors.New("unknown field: " + name)
	}
	return "provided:" + h.Street, nil
}

type opaque struct {
	secret string
}

func TestDiscoverColumns(t *testing.T) {
	tests := []struct {
		name   string
		source any
		want   Header
	}{
		{name: "scalar", source: 3.14, want: Header{"Value"}},
		{name: "string", source: "x", want: Header{"Text"}},
		{name: "struct", source: address{Street: "main", city: "eindhoven"}, want: Header{"Street"}},
		{name: "struct pointer", source: &address{Street: "main"}, want: Header{"Street"}},
		{name: "slice samples first element", source: []any{"x", 1}, want: Header{"Text"}},
		{name: "empty slice", source: []address{}, want: nil},
		{name: "no exported members", source: opaque{secret: "x"}, want: nil},
		{name: "nil element", source: []any{nil}, want: nil},
		{name: "provider and field not deduplicated", source: hybrid{}, want: Header{"Street", "Street"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, discoverColumns(test.source))
		})
	}
}

func TestDiscoverColumns_View(t *testing.T) {
	r := require.New(t)

	table := NewTable("people")
	r.NoError(table.AddColumn("Name"))
	r.NoError(table.AddColumn("Age"))

	r.Equal(Header{"Name", "Age"}, discoverColumns(table.DefaultView()))

	// a table unwraps to its default view
	r.Equal(Header{"Name", "Age"}, discoverColumns(table))
}

func TestResolveSource_SingletonIsOneElementList(t *testing.T) {
	r := require.New(t)

	inner := resolveSource(address{Street: "main"})
	r.Nil(inner.view)
	r.Len(inner.elements, 1)
}

func TestResolveSource_Array(t *testing.T) {
	r := require.New(t)

	inner := resolveSource([2]string{"a", "b"})
	r.Equal([]any{"a", "b"}, inner.elements)
}

func TestGetField(t *testing.T) {
	r := require.New(t)

	value, err := getField(address{Street: "main"}, "Street")
	r.NoError(err)
	r.Equal("main", value)

	value, err = getField(&address{Street: "main"}, "Street")
	r.NoError(err)
	r.Equal("main", value)

	// provider-declared fields win over struct fields of the same name
	value, err = getField(hybrid{Street: "main"}, "Street")
	r.NoError(err)
	r.Equal("provided:main", value)
}

func TestGetField_ToleratesMismatchedName(t *testing.T) {
	r := require.New(t)

	// single-value shapes ignore the requested column name
	value, err := getField(42, "Nope")
	r.NoError(err)
	r.Equal("42", value)

	value, err = getField("hello", "Nope")
	r.NoError(err)
	r.Equal("hello", value)
}

func TestGetField_Missing(t *testing.T) {
	r := require.New(t)

	_, err := getField(address{}, "Nope")

	var fieldErr *FieldError
	r.ErrorAs(err, &fieldErr)
	r.Equal("Nope", fieldErr.Column)
	r.EqualError(err, "no such value exists: Nope")
}

func TestGetField_NilElement(t *testing.T) {
	r := require.New(t)

	_, err := getField(nil, "Name")

	var fieldErr *FieldError
	r.ErrorAs(err, &fieldErr)
	r.ErrorIs(err, errNilElement)
	r.EqualError(err, "error reading value: Name")

	_, err = getField((*address)(nil), "Street")
	r.ErrorIs(err, errNilElement)
}

func TestGetField_ViewRow(t *testing.T) {
	r := require.New(t)

	table := NewTable("people")
	r.NoError(table.AddColumn("Name"))
	r.NoError(table.AppendRow(Row{"ada"}))

	row := table.DefaultView().Row(0)

	value, err := getField(row, "Name")
	r.NoError(err)
	r.Equal("ada", value)

	_, err = getField(row, "Nope")
	var fieldErr *FieldError
	r.ErrorAs(err, &fieldErr)
	r.EqualError(err, "error reading value: Nope")
}
