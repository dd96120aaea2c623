package diag

// Kind classifies a Diagnostic by the condition that produced it. It is
// additive to the wire-level {message, tokenIndex, length, level}
// tuple: two diagnostics with different Kind can carry the same Level,
// and callers that only care about severity can ignore Kind entirely.
type Kind int

const (
	KindCustom Kind = iota
	KindUnterminatedQuote
	KindUnterminatedTuple
	KindNestedTuple
	KindUnexpectedValue
	KindRequiredNotPresent
	KindMultipleInExclusive
	KindUniqueCombinedWithOthers
	KindTooManyOccurrences
	KindInsufficientValues
	KindTupleArityMismatch
	KindNumericOutOfRange
	KindFileNotFound
	KindDuplicateIdentifier
	KindInvalidChild
)

// String returns the kind's display name.
func (k Kind) String() string {
	switch k {
	case KindCustom:
		return "Custom"
	case KindUnterminatedQuote:
		return "UnterminatedQuote"
	case KindUnterminatedTuple:
		return "UnterminatedTuple"
	case KindNestedTuple:
		return "NestedTuple"
	case KindUnexpectedValue:
		return "UnexpectedValue"
	case KindRequiredNotPresent:
		return "RequiredNotPresent"
	case KindMultipleInExclusive:
		return "MultipleInExclusive"
	case KindUniqueCombinedWithOthers:
		return "UniqueCombinedWithOthers"
	case KindTooManyOccurrences:
		return "TooManyOccurrences"
	case KindInsufficientValues:
		return "InsufficientValues"
	case KindTupleArityMismatch:
		return "TupleArityMismatch"
	case KindNumericOutOfRange:
		return "NumericOutOfRange"
	case KindFileNotFound:
		return "FileNotFound"
	case KindDuplicateIdentifier:
		return "DuplicateIdentifier"
	case KindInvalidChild:
		return "InvalidChild"
	default:
		return "Unknown"
	}
}
