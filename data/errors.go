package data

import "errors"

// ErrNilSource is returned from the fill entry points when the
// provided source is nil. It is the only error a fill can surface
// once discovery starts - everything below it degrades per cell.
var ErrNilSource = errors.New("source must not be nil")

var errNilElement = errors.New("source element is nil")

// FieldError reports a single field that could not be read from one
// source element. The table copier never propagates it: the error
// text becomes the content of the affected cell.
type FieldError struct {
	Column string
	Err    error
}

func (e *FieldError) Error() string {
	if e.Err != nil {
		return "error reading value: " + e.Column
	}
	return "no such value exists: " + e.Column
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
