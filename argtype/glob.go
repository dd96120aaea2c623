package argtype

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/danhart/clarg"
)

// Glob is a 1..1 argument type that validates a single value token as
// a syntactically valid fish-style glob pattern (supporting ** and
// brace expansion), without resolving it against the filesystem.
type Glob struct {
	clarg.BaseType[string]
}

// NewGlob builds a required-arity Glob type.
func NewGlob() *Glob {
	return &Glob{BaseType: clarg.NewBaseType[string](clarg.Exactly(1))}
}

// ParseArgValues implements clarg.ArgumentType.
func (t *Glob) ParseArgValues(tokens []clarg.Token) {
	if !t.CheckTupleArity(tokens) {
		return
	}

	pattern := tokens[0].Text

	if !doublestar.ValidatePattern(pattern) {
		t.AddError(fmt.Sprintf("%q is not a valid glob pattern", pattern), 0, clarg.LevelError)
		return
	}

	t.SetValue(pattern)
}
