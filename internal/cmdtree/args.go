package cmdtree

// Args maps positional and flag names to their parsed values: string, bool
// or float64 depending on the declared ValueType.
type Args struct {
	values map[string]any
}

// NewArgs wraps values. Handlers under test can be called with it directly.
func NewArgs(values map[string]any) Args {
	return Args{values: values}
}

// Has reports whether name was given or has a default.
func (a Args) Has(name string) bool {
	_, ok := a.values[name]
	return ok
}

// String returns the value of name, or "" if absent or not a string.
func (a Args) String(name string) string {
	s, _ := a.values[name].(string)
	return s
}

// Bool returns the value of name, or false if absent or not a bool.
func (a Args) Bool(name string) bool {
	b, _ := a.values[name].(bool)
	return b
}

// Number returns the value of name, or 0 if absent or not a number.
func (a Args) Number(name string) float64 {
	f, _ := a.values[name].(float64)
	return f
}

// OptionalBool distinguishes a flag that was not given (nil) from one that
// was explicitly set to true or false.
func (a Args) OptionalBool(name string) *bool {
	b, ok := a.values[name].(bool)
	if !ok {
		return nil
	}
	return &b
}

// Map returns a copy of all values.
func (a Args) Map() map[string]any {
	m := make(map[string]any, len(a.values))
	for k, v := range a.values {
		m[k] = v
	}
	return m
}
