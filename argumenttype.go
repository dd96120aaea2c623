package clarg

import "fmt"

// ArgumentType is the polymorphic value parser every Argument delegates
// to. An implementation declares how many value tokens it wants
// (Arity), consumes exactly that many when ParseArgValues is called,
// and exposes the resulting value (or none) via GetFinalValue.
//
// Implementations should embed [BaseType] for the diagnostic
// bookkeeping and Arity/ResetState/AddError plumbing, overriding only
// Arity (if it isn't fixed at construction) and ParseArgValues.
type ArgumentType[T any] interface {
	// Arity declares how many value tokens this type wants.
	Arity() Range

	// ParseArgValues consumes the given value tokens, setting the
	// final value (via BaseType.SetValue, if embedding it) or
	// recording diagnostics via AddError.
	ParseArgValues(tokens []Token)

	// GetFinalValue returns the parsed value, or ok=false if none was
	// set (no occurrence, or parsing failed).
	GetFinalValue() (T, bool)

	// HasDefault reports whether a default value was configured before
	// parsing, independent of whether the argument was ever used.
	HasDefault() bool

	// ResetState clears the current value and diagnostics, but not the
	// default value, ahead of a fresh parse.
	ResetState()

	// AddError records a positioned diagnostic. tokenIndex is relative
	// to the slice passed to ParseArgValues (-1 for a whole-argument
	// diagnostic).
	AddError(message string, tokenIndex int, level Level)

	// Diagnostics returns diagnostics accumulated since the last
	// ResetState.
	Diagnostics() []Diagnostic
}

// BaseType provides the shared plumbing every kernel ArgumentType
// embeds: arity storage, current/default value, and diagnostic
// accumulation. It does not implement ParseArgValues — each concrete
// type owns its own value-parsing logic.
type BaseType[T any] struct {
	arity        Range
	value        *T
	defaultValue *T
	diags        []Diagnostic
}

// NewBaseType constructs a BaseType with the given fixed arity and no
// default value.
func NewBaseType[T any](arity Range) BaseType[T] {
	return BaseType[T]{arity: arity}
}

// Arity returns the configured arity.
func (b *BaseType[T]) Arity() Range {
	return b.arity
}

// SetValue records the parsed value.
func (b *BaseType[T]) SetValue(v T) {
	b.value = &v
}

// SetDefault configures the value used when the argument was never
// invoked.
func (b *BaseType[T]) SetDefault(v T) {
	b.defaultValue = &v
}

// HasDefault reports whether SetDefault was ever called.
func (b *BaseType[T]) HasDefault() bool {
	return b.defaultValue != nil
}

// GetFinalValue returns the current value if set, else the default if
// configured, else the zero value with ok=false.
func (b *BaseType[T]) GetFinalValue() (T, bool) {
	if b.value != nil {
		return *b.value, true
	}

	if b.defaultValue != nil {
		return *b.defaultValue, true
	}

	var zero T

	return zero, false
}

// ResetState clears the current value and diagnostics. The default
// value survives a reset, since it was configured at schema-build time
// rather than discovered during parsing.
func (b *BaseType[T]) ResetState() {
	b.value = nil
	b.diags = nil
}

// AddError appends a KindCustom diagnostic. Kernel types that want a
// more specific Kind should call AddErrorKind instead.
func (b *BaseType[T]) AddError(message string, tokenIndex int, level Level) {
	b.AddErrorKind(KindCustom, message, tokenIndex, level)
}

// AddErrorKind appends a diagnostic with an explicit Kind, for kernel
// types reporting a specific, well-known condition.
func (b *BaseType[T]) AddErrorKind(kind Kind, message string, tokenIndex int, level Level) {
	length := 1
	if tokenIndex < 0 {
		length = 0
	}

	b.diags = append(b.diags, New(kind, level, tokenIndex, length, message))
}

// Diagnostics returns diagnostics accumulated since the last
// ResetState.
func (b *BaseType[T]) Diagnostics() []Diagnostic {
	return b.diags
}

// New builds a Diagnostic pointing at a specific token, re-exported
// from the internal diag package for kernel and custom ArgumentType
// implementations.
func New(kind Kind, level Level, tokenIndex, length int, message string) Diagnostic {
	return Diagnostic{Kind: kind, Message: message, TokenIndex: tokenIndex, Length: length, Level: level}
}

// CheckTupleArity inspects tokens to see whether they came from a
// bracketed tuple (any element has TokenKind TokenArgumentValueTupled)
// or are empty (as an empty "[ ]" span is); if so, it validates the
// count against arity and records a
// TupleArityMismatch diagnostic on mismatch. It returns true when
// ParseArgValues should proceed to interpret the tokens, false when it
// already recorded a fatal arity diagnostic and should leave the value
// unset.
func (b *BaseType[T]) CheckTupleArity(tokens []Token) bool {
	fromTuple := false

	for _, t := range tokens {
		if t.Kind == TokenArgumentValueTupled {
			fromTuple = true
			break
		}
	}

	if !fromTuple && len(tokens) > 0 {
		return true
	}

	n := len(tokens)
	if b.arity.Contains(n) {
		return true
	}

	b.AddErrorKind(KindTupleArityMismatch, fmt.Sprintf("expected %s values, got %d", b.arity, n), -1, LevelError)

	return false
}
