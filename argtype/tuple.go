package argtype

import (
	"strconv"

	"github.com/danhart/clarg"
)

// Element is the subset of clarg.ArgumentType[T] that Tuple needs from
// its element type: parse one value token and read the result back
// out. String, Int, Byte, and File all satisfy it.
type Element[T any] interface {
	ParseArgValues(tokens []clarg.Token)
	GetFinalValue() (T, bool)
	Diagnostics() []clarg.Diagnostic
}

// Tuple is a variable-arity argument type that applies a fresh E to
// each token in a bracketed "[a b c]" span (or, since arity is fully
// overridden by whatever the tuple span contains, to bare
// un-bracketed values too), collecting one value per token. A fresh E
// is built per element via NewInner so each gets its own diagnostic
// state and values are never stale across elements.
type Tuple[T any, E Element[T]] struct {
	clarg.BaseType[[]T]

	NewInner func() E
}

// NewTuple builds a Tuple type whose arity spans arity.Min..arity.Max
// elements; use clarg.AtLeast(0) for an unbounded tuple. newInner must
// return a fresh, unconfigured element each call, e.g.
// argtype.NewTuple[int, *argtype.Int](clarg.AtLeast(1), argtype.NewInt).
func NewTuple[T any, E Element[T]](arity clarg.Range, newInner func() E) *Tuple[T, E] {
	return &Tuple[T, E]{
		BaseType: clarg.NewBaseType[[]T](arity),
		NewInner: newInner,
	}
}

// ParseArgValues implements clarg.ArgumentType. Unlike the scalar
// kernel types, Tuple deliberately does not call CheckTupleArity: it
// IS the arity policy for its elements, so a mismatch against its own
// configured Range is reported directly.
func (t *Tuple[T, E]) ParseArgValues(tokens []clarg.Token) {
	if !t.Arity().Contains(len(tokens)) {
		t.AddErrorKind(clarg.KindTupleArityMismatch, tupleArityMessage(t.Arity(), len(tokens)), -1, clarg.LevelError)
		return
	}

	values := make([]T, 0, len(tokens))

	for i, tok := range tokens {
		elem := t.NewInner()
		elem.ParseArgValues([]clarg.Token{tok})

		for _, d := range elem.Diagnostics() {
			t.AddErrorKind(d.Kind, d.Message, i, d.Level)
		}

		if v, ok := elem.GetFinalValue(); ok {
			values = append(values, v)
		}
	}

	t.SetValue(values)
}

func tupleArityMessage(r clarg.Range, got int) string {
	return "tuple expects " + r.String() + " values, got " + strconv.Itoa(got)
}
