package data

import (
	"fmt"
	"reflect"
	"slices"
)

// getField extracts the text representation of one named field from
// one source element. The copier calls it once per (row, column) pair
// and turns any returned error into the cell's content.
func getField(element any, columnName string) (string, error) {
	if element == nil {
		return "", &FieldError{Column: columnName, Err: errNilElement}
	}

	// a view row resolves against its underlying table
	if viewRow, ok := element.(*ViewRow); ok {
		value, err := viewRow.Field(columnName)
		if err != nil {
			return "", &FieldError{Column: columnName, Err: err}
		}
		return toText(value), nil
	}

	rv := reflect.ValueOf(element)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", &FieldError{Column: columnName, Err: errNilElement}
		}
		rv = rv.Elem()
	}

	// primitives and strings have a single value, so the requested
	// column name is irrelevant - tolerate a mismatched one
	switch {
	case isPrimitive(rv.Kind()):
		return toText(rv.Interface()), nil
	case rv.Kind() == reflect.String:
		return rv.String(), nil
	}

	// structured value: provider-declared fields first, then
	// exported struct fields
	if provider, ok := element.(FieldProvider); ok {
		if slices.Contains(provider.FieldNames(), columnName) {
			value, err := readProviderField(provider, columnName)
			if err != nil {
				return "", &FieldError{Column: columnName, Err: err}
			}
			return toText(value), nil
		}
	}

	if rv.Kind() == reflect.Struct {
		if field, ok := rv.Type().FieldByName(columnName); ok && field.IsExported() {
			value, err := readStructField(rv, field)
			if err != nil {
				return "", &FieldError{Column: columnName, Err: err}
			}
			return toText(value), nil
		}
	}

	return "", &FieldError{Column: columnName}
}

// readStructField guards against reads that panic, e.g. a promoted
// field behind a nil embedded pointer.
func readStructField(rv reflect.Value, field reflect.StructField) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("field read panic: %v", r)
		}
	}()

	return rv.FieldByIndex(field.Index).Interface(), nil
}

// readProviderField guards against providers that panic instead of
// returning an error.
func readProviderField(provider FieldProvider, name string) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("field read panic: %v", r)
		}
	}()

	return provider.Field(name)
}

func toText(value any) string {
	return fmt.Sprint(value)
}
