package mock

type recordConfig struct {
	values      map[string]any
	fieldErrors map[string]error
	panicFields map[string]bool
}

type RecordOption func(*recordConfig)

func RecordWithValue(name string, value any) RecordOption {
	return func(c *recordConfig) {
		_, ok := c.values[name]
		if ok {
			panic("value already registered for field: " + name)
		}

		c.values[name] = value
	}
}

func RecordWithFieldError(name string, err error) RecordOption {
	return func(c *recordConfig) {
		_, ok := c.fieldErrors[name]
		if ok {
			panic("error already registered for field: " + name)
		}

		c.fieldErrors[name] = err
	}
}

func RecordWithFieldPanic(name string) RecordOption {
	return func(c *recordConfig) {
		if c.panicFields == nil {
			c.panicFields = make(map[string]bool)
		}

		c.panicFields[name] = true
	}
}
