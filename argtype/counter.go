package argtype

import "github.com/danhart/clarg"

// Counter is a 0..0 argument type whose value is how many times the
// owning argument has been used so far in the current parse — e.g.
// "-vvv" via name-list clustering yields 3, one per letter.
type Counter struct {
	clarg.BaseType[int]
	count int
}

// NewCounter builds a Counter type, starting at 0.
func NewCounter() *Counter {
	return &Counter{BaseType: clarg.NewBaseType[int](clarg.Exactly(0))}
}

// ParseArgValues implements clarg.ArgumentType.
func (t *Counter) ParseArgValues(tokens []clarg.Token) {
	t.count++
	t.SetValue(t.count)
}

// ResetState clears the count alongside the embedded BaseType state.
func (t *Counter) ResetState() {
	t.count = 0
	t.BaseType.ResetState()
}
