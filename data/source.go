package data

import (
	"reflect"
)

// innerSource is the list a fill actually iterates: the unwrapped
// list behind a ListSource, a direct slice or array, or a synthetic
// one-element list around a singleton value.
type innerSource struct {
	// view is set instead of elements when the source is tabular
	view     *View
	elements []any
}

// resolveSource classifies the source value. Discovery and copy both
// call it on the same source, so the two phases always agree on the
// inner list without sharing state.
func resolveSource(source any) innerSource {
	if source == nil {
		return innerSource{}
	}

	// unwrap a list-producing wrapper exactly once
	if ls, ok := source.(ListSource); ok {
		source = ls.List()
	}

	if view, ok := source.(*View); ok {
		return innerSource{view: view}
	}

	rv := reflect.ValueOf(source)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		elems := make([]any, rv.Len())
		for i := range elems {
			elems[i] = rv.Index(i).Interface()
		}
		return innerSource{elements: elems}
	}

	// singleton: anything else is a one-element list
	return innerSource{elements: []any{source}}
}

// elementIterator creates next and hasNext functions over the inner
// list of a source.
func elementIterator(source any) (func() any, func() bool) {
	inner := resolveSource(source)
	index := 0

	if inner.view != nil {
		// snapshot the length so a table filled from its own view
		// does not chase the rows the copier appends
		length := inner.view.Len()

		hasNext := func() bool {
			return index < length
		}

		next := func() any {
			row := inner.view.Row(index)
			index++
			return row
		}

		return next, hasNext
	}

	hasNext := func() bool {
		return index < len(inner.elements)
	}

	next := func() any {
		element := inner.elements[index]
		index++
		return element
	}

	return next, hasNext
}

// discoverColumns infers the column set of a source value.
//
// A tabular view contributes the column names of its underlying
// table; a list is sampled at its first element only, on the
// assumption that the collection is homogeneous - later elements of a
// different shape surface as error text in cells at copy time, not
// here. Discovery never fails; zero columns is a legal outcome.
func discoverColumns(source any) Header {
	inner := resolveSource(source)

	if inner.view != nil {
		return inner.view.Table().Header()
	}

	if len(inner.elements) == 0 {
		return nil
	}

	return classifyElement(inner.elements[0])
}

// classifyElement derives column names from a single element:
// primitive scalars map to a single "Value" column, strings to a
// single "Text" column and everything else is a structured value
// contributing all provider-declared field names followed by all
// exported struct field names, in declaration order, without
// de-duplication.
func classifyElement(element any) Header {
	if element == nil {
		return nil
	}

	rv := reflect.ValueOf(element)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch {
	case isPrimitive(rv.Kind()):
		return Header{"Value"}
	case rv.Kind() == reflect.String:
		return Header{"Text"}
	}

	var header Header
	if provider, ok := element.(FieldProvider); ok {
		header = append(header, provider.FieldNames()...)
	}
	if rv.Kind() == reflect.Struct {
		rt := rv.Type()
		for i := 0; i < rt.NumField(); i++ {
			if field := rt.Field(i); field.IsExported() {
				header = append(header, field.Name)
			}
		}
	}

	return header
}

func isPrimitive(kind reflect.Kind) bool {
	switch kind {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}
