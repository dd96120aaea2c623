package argtype

import (
	"fmt"
	"strings"

	"github.com/danhart/clarg"
)

// KeyValue is a 1..∞ argument type that parses each value token as a
// "key=value" pair, accumulating them into a map across however many
// tokens (or occurrences) the argument receives.
type KeyValue struct {
	clarg.BaseType[map[string]string]
	values map[string]string
}

// NewKeyValue builds a KeyValue type accepting one or more "k=v"
// tokens per occurrence.
func NewKeyValue() *KeyValue {
	return &KeyValue{
		BaseType: clarg.NewBaseType[map[string]string](clarg.AtLeast(1)),
		values:   map[string]string{},
	}
}

// ParseArgValues implements clarg.ArgumentType.
func (t *KeyValue) ParseArgValues(tokens []clarg.Token) {
	if !t.CheckTupleArity(tokens) {
		return
	}

	for i, tok := range tokens {
		k, v, ok := strings.Cut(tok.Text, "=")
		if !ok {
			t.AddError(fmt.Sprintf("%q is not a key=value pair", tok.Text), i, clarg.LevelError)
			continue
		}

		t.values[k] = v
	}

	t.SetValue(t.values)
}

// ResetState clears accumulated pairs alongside the embedded BaseType
// state.
func (t *KeyValue) ResetState() {
	t.values = map[string]string{}
	t.BaseType.ResetState()
}
