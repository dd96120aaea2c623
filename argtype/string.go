// Package argtype provides the small kernel of concrete ArgumentType
// implementations every declarative CLI needs: strings, integers,
// bytes, files, glob patterns, flags, counters, key-value maps, and
// tuples of any of the above.
package argtype

import "github.com/danhart/clarg"

// String is a 1..1 argument type that accepts any single value token
// verbatim.
type String struct {
	clarg.BaseType[string]
}

// NewString builds a required-arity (exactly one value) String type.
func NewString() *String {
	return &String{BaseType: clarg.NewBaseType[string](clarg.Exactly(1))}
}

// ParseArgValues implements clarg.ArgumentType.
func (t *String) ParseArgValues(tokens []clarg.Token) {
	if !t.CheckTupleArity(tokens) {
		return
	}

	t.SetValue(tokens[0].Text)
}
