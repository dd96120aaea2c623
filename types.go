package clarg

import (
	"github.com/danhart/clarg/internal/arity"
	"github.com/danhart/clarg/internal/diag"
	"github.com/danhart/clarg/internal/token"
)

// Range is an argument type's declared arity: the inclusive [Min, Max]
// count of value tokens it consumes. Max < 0 means unbounded.
type Range = arity.Range

// Infinite is the sentinel Range.Max value meaning "no upper bound".
const Infinite = arity.Infinite

// Exactly, AtMost and AtLeast build common Range shapes.
func Exactly(n int) Range { return arity.Exactly(n) }
func AtMost(n int) Range  { return arity.AtMost(n) }
func AtLeast(n int) Range { return arity.AtLeast(n) }

// Token is one lexical unit produced by the tokenizer: immutable,
// positioned, and kinded. Custom ArgumentType implementations receive
// a slice of these from ParseArgValues.
type Token = token.Token

// TokenKind classifies a Token.
type TokenKind = token.Kind

// The token kinds a custom ArgumentType may see in the slice passed to
// ParseArgValues: plain values and, when the argument was invoked with
// a bracketed tuple, tupled values. Name/sub-command/forward tokens
// never reach ParseArgValues.
const (
	TokenArgumentValue       = token.ArgumentValue
	TokenArgumentValueTupled = token.ArgumentValueTupled
)

// Level is a diagnostic severity, totally ordered from least to most
// severe.
type Level = diag.Level

const (
	LevelDebug   = diag.Debug
	LevelInfo    = diag.Info
	LevelWarning = diag.Warning
	LevelError   = diag.Error
)

// Diagnostic is a single structured, positioned message.
type Diagnostic = diag.Diagnostic

// Kind classifies a Diagnostic by the condition that produced it.
type Kind = diag.Kind

const (
	KindCustom                   = diag.KindCustom
	KindUnterminatedQuote        = diag.KindUnterminatedQuote
	KindUnterminatedTuple        = diag.KindUnterminatedTuple
	KindNestedTuple              = diag.KindNestedTuple
	KindUnexpectedValue          = diag.KindUnexpectedValue
	KindRequiredNotPresent       = diag.KindRequiredNotPresent
	KindMultipleInExclusive      = diag.KindMultipleInExclusive
	KindUniqueCombinedWithOthers = diag.KindUniqueCombinedWithOthers
	KindTooManyOccurrences       = diag.KindTooManyOccurrences
	KindInsufficientValues       = diag.KindInsufficientValues
	KindTupleArityMismatch       = diag.KindTupleArityMismatch
	KindNumericOutOfRange        = diag.KindNumericOutOfRange
	KindFileNotFound             = diag.KindFileNotFound
	KindDuplicateIdentifier      = diag.KindDuplicateIdentifier
	KindInvalidChild             = diag.KindInvalidChild
)
