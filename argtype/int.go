package argtype

import (
	"fmt"
	"strconv"

	"github.com/danhart/clarg"
)

// Int is a 1..1 argument type that parses a single value token as a
// base-10 signed integer, raising NumericOutOfRange on overflow or a
// custom diagnostic on non-numeric input.
type Int struct {
	clarg.BaseType[int]
}

// NewInt builds a required-arity Int type.
func NewInt() *Int {
	return &Int{BaseType: clarg.NewBaseType[int](clarg.Exactly(1))}
}

// ParseArgValues implements clarg.ArgumentType.
func (t *Int) ParseArgValues(tokens []clarg.Token) {
	if !t.CheckTupleArity(tokens) {
		return
	}

	text := tokens[0].Text

	n, err := strconv.Atoi(text)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			t.AddErrorKind(clarg.KindNumericOutOfRange, fmt.Sprintf("%q is out of range for a 64-bit integer", text), 0, clarg.LevelError)
			return
		}

		t.AddError(fmt.Sprintf("%q is not a valid integer", text), 0, clarg.LevelError)

		return
	}

	t.SetValue(n)
}
