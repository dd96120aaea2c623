package clarg

// ParsedArguments is the immutable result of one [Command.Parse] or
// [Command.ParseString] call: a read-only view over the invoked
// command chain.
type ParsedArguments struct {
	cmd *Command
}

func newParsedArguments(c *Command) ParsedArguments {
	return ParsedArguments{cmd: c}
}

// CommandName returns the name of the command this result belongs to.
func (p ParsedArguments) CommandName() string { return p.cmd.name }

// Command returns the underlying Command node, for callers that need
// lower-level access (FullTokenList, RenderDiagnostics, PrintHelp).
func (p ParsedArguments) Command() *Command { return p.cmd }

// Sub returns the parsed result for the sub-command that was actually
// invoked, or ok=false if none was.
func (p ParsedArguments) Sub() (ParsedArguments, bool) {
	if p.cmd.subResult == nil {
		return ParsedArguments{}, false
	}

	return ParsedArguments{cmd: p.cmd.subResult}, true
}

// Get returns arg's parsed value directly. This is the preferred
// lookup: it is compile-time type safe and works regardless of which
// command in the invoked chain arg belongs to.
func Get[T any](arg *Argument[T]) (T, bool) {
	return arg.Value()
}

// GetByName looks up a value by its argument's canonical name (the
// first name passed to [NewArgument]), searching this command first and
// then, if not found here, the invoked sub-command chain. Returns
// ok=false if no argument in the invoked chain has that canonical name,
// or if it was never given a value and has no default — exactly like
// [Get], but without needing a reference to the *Argument[T].
func (p ParsedArguments) GetByName(name string) (any, bool) {
	for _, a := range p.cmd.Arguments() {
		if a.Names()[0] == name {
			return a.AnyValue()
		}
	}

	if sub, ok := p.Sub(); ok {
		return sub.GetByName(name)
	}

	return nil, false
}

// GetErrorCode aggregates the invoked chain's exit-level diagnostics
// into a bitwise-OR'd exit code; see [Command.GetErrorCode].
func (p ParsedArguments) GetErrorCode() int { return p.cmd.GetErrorCode() }

// HasExitErrors reports whether the invoked chain accumulated any
// exit-level diagnostic, at this command or any invoked descendant.
func (p ParsedArguments) HasExitErrors() bool {
	if p.cmd.HasExitErrors() {
		return true
	}

	if sub, ok := p.Sub(); ok {
		return sub.HasExitErrors()
	}

	return false
}

// HasDisplayErrors reports whether the invoked chain accumulated any
// display-level diagnostic, at this command or any invoked descendant.
func (p ParsedArguments) HasDisplayErrors() bool {
	if p.cmd.HasDisplayErrors() {
		return true
	}

	if sub, ok := p.Sub(); ok {
		return sub.HasDisplayErrors()
	}

	return false
}

// Diagnostics returns every diagnostic accumulated across the invoked
// chain, this command's own first, then its invoked sub-command's,
// recursively.
func (p ParsedArguments) Diagnostics() []Diagnostic {
	out := append([]Diagnostic{}, p.cmd.Diagnostics()...)

	if sub, ok := p.Sub(); ok {
		out = append(out, sub.Diagnostics()...)
	}

	return out
}
