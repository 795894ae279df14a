package mock

// ListOf returns its arguments as one list, so heterogeneous fill
// sources read naturally in tests.
func ListOf(elements ...any) []any {
	return elements
}
