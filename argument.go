package clarg

// Argument binds one or more names to an ArgumentType. The first name
// is canonical. A positional argument (Positional() == true) is never
// resolved by name; it is fed tokens in declaration order relative to
// its sibling positionals.
type Argument[T any] struct {
	names       []string
	prefix      rune
	typ         ArgumentType[T]
	required    bool
	positional  bool
	allowUnique bool
	maxUsage    int // 0 means unlimited

	description string
	usageCount  int
	colorIndex  int

	// ownDiagnostics holds diagnostics the parser attributed to this
	// argument specifically (RequiredNotPresent, TooManyOccurrences,
	// InsufficientValues) rather than to the underlying ArgumentType —
	// so this argument's own exit-error state never depends on whether
	// some other, unrelated argument in the same command also failed.
	ownDiagnostics []Diagnostic

	parentCmd   *Command
	parentGroup *ArgumentGroup

	onOk  func(T)
	onErr func()
}

// NewArgument builds an Argument bound to typ, with names[0] as its
// canonical name. Names must be non-empty and the prefix defaults to
// '-'; this is a schema-authoring contract violated only by programmer
// error, so — like the teacher's own Group builder — it panics rather
// than returning an error.
func NewArgument[T any](typ ArgumentType[T], names ...string) *Argument[T] {
	if len(names) == 0 {
		panic("clarg: argument must have at least one name")
	}

	return &Argument[T]{
		names:  names,
		prefix: '-',
		typ:    typ,
	}
}

// Names returns the argument's names, canonical first.
func (a *Argument[T]) Names() []string {
	return a.names
}

// CanonicalName returns the argument's first, canonical name.
func (a *Argument[T]) CanonicalName() string {
	return a.names[0]
}

// Description returns the help text shown for this argument.
func (a *Argument[T]) Description() string {
	return a.description
}

// SetDescription sets the help text shown for this argument and
// returns the argument for chaining.
func (a *Argument[T]) SetDescription(d string) *Argument[T] {
	a.description = d
	return a
}

// SetPrefix overrides the single-character prefix used to recognize
// this argument's flag forms. Only meaningful for non-positional
// arguments.
func (a *Argument[T]) SetPrefix(p rune) *Argument[T] {
	a.prefix = p
	return a
}

// SetRequired marks the argument as required: parsing emits
// RequiredNotPresent if it is never used and has no default.
func (a *Argument[T]) SetRequired() *Argument[T] {
	a.required = true
	return a
}

// SetPositional marks the argument as positional: it never resolves by
// name and instead claims value tokens in declaration order among its
// sibling positionals.
func (a *Argument[T]) SetPositional() *Argument[T] {
	a.positional = true
	return a
}

// SetAllowUnique marks the argument as safe to use on its own: when
// used, RequiredNotPresent checks for every other argument in the
// command are skipped (this is how a bare --help works on a command
// with otherwise-required arguments). Using a unique argument alongside
// any other argument raises UniqueCombinedWithOthers.
func (a *Argument[T]) SetAllowUnique() *Argument[T] {
	a.allowUnique = true
	return a
}

// SetMaxUsage caps the number of times this argument may be used in a
// single parse; exceeding it raises TooManyOccurrences. 0 (the
// default) means unlimited.
func (a *Argument[T]) SetMaxUsage(n int) *Argument[T] {
	a.maxUsage = n
	return a
}

// OnOk registers a callback invoked with the parsed value after a
// successful parse, if this argument received one.
func (a *Argument[T]) OnOk(fn func(T)) *Argument[T] {
	a.onOk = fn
	return a
}

// OnErr registers a callback invoked when this argument accumulated
// exit-level diagnostics.
func (a *Argument[T]) OnErr(fn func()) *Argument[T] {
	a.onErr = fn
	return a
}

// Type returns the argument's underlying type.
func (a *Argument[T]) Type() ArgumentType[T] {
	return a.typ
}

// Value returns the parsed value, or ok=false if the argument never
// received one and has no default.
func (a *Argument[T]) Value() (T, bool) {
	return a.typ.GetFinalValue()
}

// AnyValue is Value with the result type erased to any, so a *Command
// can look an argument's value up by name without knowing T. Callers
// that already hold *Argument[T] should prefer [Get] or [Argument.Value].
func (a *Argument[T]) AnyValue() (any, bool) {
	return a.typ.GetFinalValue()
}

// Required reports whether the argument is required.
func (a *Argument[T]) Required() bool { return a.required }

// Positional reports whether the argument is positional.
func (a *Argument[T]) Positional() bool { return a.positional }

// AllowUnique reports whether the argument was marked unique, so it
// also serves as the parser.Slot accessor of the same name.
func (a *Argument[T]) AllowUnique() bool { return a.allowUnique }

// MaxUsage returns the configured usage cap, 0 meaning unlimited.
func (a *Argument[T]) MaxUsage() int { return a.maxUsage }

// UsageCount returns how many times this argument was used in the most
// recent parse: addressed by name, as a member of an
// ArgumentNameList, or filled as a positional.
func (a *Argument[T]) UsageCount() int { return a.usageCount }

// IncrementUsage bumps the usage count; called by the parser.
func (a *Argument[T]) IncrementUsage() { a.usageCount++ }

// ColorIndex returns the index this argument was given when it was
// added to its command (0 for the first, counting up). help.Default
// does not read it; it assigns colors from its own LoopPool.
func (a *Argument[T]) ColorIndex() int { return a.colorIndex }

// setColorIndex is called once by Command.AddArgument.
func (a *Argument[T]) setColorIndex(i int) { a.colorIndex = i }

// HasDefault reports whether the underlying type has a default value
// configured.
func (a *Argument[T]) HasDefault() bool { return a.typ.HasDefault() }

// Arity returns the underlying type's declared arity.
func (a *Argument[T]) Arity() Range { return a.typ.Arity() }

// ParseValues hands tokens to the underlying type and returns any
// diagnostics it raised. OnOk/OnErr run later, from Command's
// post-order callback pass, once the whole tree has finished parsing.
func (a *Argument[T]) ParseValues(tokens []Token) []Diagnostic {
	a.typ.ParseArgValues(tokens)
	return a.typ.Diagnostics()
}

// resetState clears usage count, recorded parser diagnostics, and the
// underlying type's state.
func (a *Argument[T]) resetState() {
	a.usageCount = 0
	a.ownDiagnostics = nil
	a.typ.ResetState()
}

// RecordDiagnostic attaches a diagnostic the parser raised about this
// argument directly, satisfying internal/parser.Slot.
func (a *Argument[T]) RecordDiagnostic(d Diagnostic) {
	a.ownDiagnostics = append(a.ownDiagnostics, d)
}

// hasOwnExitErrors reports whether this argument — and only this
// argument, never its siblings — accumulated a diagnostic (from its
// ArgumentType or from the parser directly) at or above minExit.
func (a *Argument[T]) hasOwnExitErrors(minExit Level) bool {
	for _, d := range a.typ.Diagnostics() {
		if d.Level.IsInErrorMinimum(minExit) {
			return true
		}
	}

	for _, d := range a.ownDiagnostics {
		if d.Level.IsInErrorMinimum(minExit) {
			return true
		}
	}

	return false
}

// invokeCallback runs OnOk (if the argument received a value) or OnErr
// (if this argument itself, independent of its siblings, carries a
// diagnostic at or above minExit), matching Command's post-order
// callback pass.
func (a *Argument[T]) invokeCallback(minExit Level) {
	if a.hasOwnExitErrors(minExit) {
		if a.onErr != nil {
			a.onErr()
		}

		return
	}

	if v, ok := a.typ.GetFinalValue(); ok && a.usageCount > 0 && a.onOk != nil {
		a.onOk(v)
	}
}

// equalsIdentifier reports whether other shares any name with a,
// case-sensitively — the Command.AddArgument duplicate check.
func (a *Argument[T]) equalsIdentifier(other slotIdentity) bool {
	for _, n := range a.names {
		for _, m := range other.Names() {
			if n == m {
				return true
			}
		}
	}

	return false
}

// slotIdentity is the minimal interface Command needs to compare
// arguments of different value types for duplicate names.
type slotIdentity interface {
	Names() []string
}
