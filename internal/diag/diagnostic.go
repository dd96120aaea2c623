package diag

import "fmt"

// Diagnostic is a single structured message with a source position.
// TokenIndex is -1 when the diagnostic refers to the whole command
// rather than a specific token.
type Diagnostic struct {
	Kind       Kind
	Message    string
	TokenIndex int
	Length     int
	Level      Level
}

// New builds a Diagnostic pointing at a specific token.
func New(kind Kind, level Level, tokenIndex, length int, message string) Diagnostic {
	return Diagnostic{
		Kind:       kind,
		Message:    message,
		TokenIndex: tokenIndex,
		Length:     length,
		Level:      level,
	}
}

// NewCommandLevel builds a Diagnostic that refers to the command as a
// whole rather than any one token.
func NewCommandLevel(kind Kind, level Level, message string) Diagnostic {
	return New(kind, level, -1, 0, message)
}

// DiagLevel implements diag.Leveled so Diagnostic can be stored in a
// Container without the container needing to know its concrete shape.
func (d Diagnostic) DiagLevel() Level {
	return d.Level
}

// String renders the diagnostic for display without needing the
// original source text.
func (d Diagnostic) String() string {
	if d.TokenIndex < 0 {
		return fmt.Sprintf("%s: %s", d.Level, d.Message)
	}

	return fmt.Sprintf("%s: %s (token %d)", d.Level, d.Message, d.TokenIndex)
}

// Render renders the diagnostic against the token texts it was produced
// from, drawing a caret under the offending token when its position is
// known. positions holds the character offset of each token in the
// original input string, indexed the same way as TokenIndex.
func Render(d Diagnostic, input string, positions []int) string {
	if d.TokenIndex < 0 || d.TokenIndex >= len(positions) {
		return d.String()
	}

	pos := positions[d.TokenIndex]
	length := d.Length
	if length <= 0 {
		length = 1
	}

	caretLine := make([]byte, 0, pos+length)
	for i := 0; i < pos; i++ {
		caretLine = append(caretLine, ' ')
	}

	for i := 0; i < length; i++ {
		caretLine = append(caretLine, '^')
	}

	return fmt.Sprintf("%s\n%s\n%s", input, string(caretLine), d.String())
}
