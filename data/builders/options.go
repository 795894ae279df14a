package builders

import "strings"

type config struct {
	typeProcessors map[string]func(any) any
}

type Option func(*config)

// WithTypeProcessor registers a processor for a database type name.
// The first registration for a type wins.
func WithTypeProcessor(typ string, fn func(any) any) Option {
	return func(c *config) {
		t := strings.ToLower(typ)
		_, ok := c.typeProcessors[t]
		if ok {
			// processor already registered for this type
			return
		}

		c.typeProcessors[t] = fn
	}
}

func (c *config) getTypeProcessor(typ string) func(any) any {
	proc, ok := c.typeProcessors[strings.ToLower(typ)]
	if ok {
		return proc
	}

	return func(val any) any {
		valb, ok := val.([]byte)
		if ok {
			return string(valb)
		}
		return val
	}
}
