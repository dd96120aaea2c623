package argtype

import "github.com/danhart/clarg"

// Bool is a 0..0 argument type: its value is true if and only if the
// argument was used at all (a plain on/off flag), defaulting to false.
type Bool struct {
	clarg.BaseType[bool]
}

// NewBool builds a Bool flag type, defaulting to false.
func NewBool() *Bool {
	t := &Bool{BaseType: clarg.NewBaseType[bool](clarg.Exactly(0))}
	t.SetDefault(false)

	return t
}

// ParseArgValues implements clarg.ArgumentType.
func (t *Bool) ParseArgValues(tokens []clarg.Token) {
	t.SetValue(true)
}
