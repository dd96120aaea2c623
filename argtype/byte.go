package argtype

import (
	"fmt"
	"strconv"

	"github.com/danhart/clarg"
)

// Byte is a 1..1 argument type that parses a single value token as an
// unsigned 8-bit integer, raising NumericOutOfRange for anything
// outside 0..255.
type Byte struct {
	clarg.BaseType[byte]
}

// NewByte builds a required-arity Byte type.
func NewByte() *Byte {
	return &Byte{BaseType: clarg.NewBaseType[byte](clarg.Exactly(1))}
}

// ParseArgValues implements clarg.ArgumentType.
func (t *Byte) ParseArgValues(tokens []clarg.Token) {
	if !t.CheckTupleArity(tokens) {
		return
	}

	text := tokens[0].Text

	n, err := strconv.ParseUint(text, 10, 8)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			t.AddErrorKind(clarg.KindNumericOutOfRange, fmt.Sprintf("%q is out of range for a byte (0..255)", text), 0, clarg.LevelError)
			return
		}

		t.AddError(fmt.Sprintf("%q is not a valid byte", text), 0, clarg.LevelError)

		return
	}

	t.SetValue(byte(n))
}
