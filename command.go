package clarg

import (
	"fmt"
	"io"
	"os"
	"unicode"

	"github.com/danhart/clarg/internal/diag"
	"github.com/danhart/clarg/internal/modify"
	"github.com/danhart/clarg/internal/parser"
	"github.com/danhart/clarg/internal/token"
	"github.com/danhart/clarg/internal/tokenizer"
)

// slotArg is what Command needs from an Argument[T]: the parser.Slot
// contract plus identity comparison, color assignment, and the
// unexported reset/callback hooks. Argument[T] satisfies this for any
// T, letting Command store arguments of differing value types in one
// slice.
type slotArg interface {
	parser.Slot
	slotIdentity
	equalsIdentifier(slotIdentity) bool
	setColorIndex(int)
	resetState()
	invokeCallback(Level)
}

// Command is one node of the argument-parsing tree: a named collection
// of arguments and groups, plus zero or more sub-commands. Every field
// that a sub-command may either set for itself or inherit from its
// parent is stored as a [modify.Record], so building the tree can set
// overrides in any order and inheritance is resolved once, at Parse
// time.
type Command struct {
	name        string
	description string

	arguments  []slotArg
	identities []slotIdentity
	groups     []*ArgumentGroup
	subs       []*Command
	parent     *Command

	prefix     modify.Record[rune]
	tupleOpen  modify.Record[rune]
	tupleClose modify.Record[rune]
	errorCode  modify.Record[int]
	formatter  modify.Record[HelpFormatter]

	diagnostics diag.Container[Diagnostic]

	onCorrect func(ParsedArguments)
	onError   func()

	nextColor int

	help *Argument[bool]

	Stdout io.Writer
	Stderr io.Writer

	lastTokens []token.Token
	lastPos    []int
	lastRaw    string
	subResult  *Command
}

// NewCommand builds a root or sub-command named name. Every command
// gets a built-in, unique "help"/"h" flag; a bare `--help` anywhere in
// the invocation suppresses RequiredNotPresent for everything else at
// that command's level (see [Command.UniqueArgumentReceivedValue]).
func NewCommand(name, description string) *Command {
	if name == "" || !isAlphabetic(name) {
		panic(errInvalidName)
	}

	c := &Command{
		name:        name,
		description: description,
		prefix:      modify.NewRecord(rune('-')),
		tupleOpen:   modify.NewRecord(rune('[')),
		tupleClose:  modify.NewRecord(rune(']')),
		errorCode:   modify.NewRecord(1),
		formatter:   modify.NewRecord[HelpFormatter](nil),
		diagnostics: diag.NewContainer[Diagnostic](),
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
	}

	c.help = NewArgument[bool](newFlagType(), "help", "h").
		SetDescription("show this help message").
		SetAllowUnique()
	c.help.OnOk(func(bool) { c.PrintHelp() })

	if err := c.AddArgument(c.help); err != nil {
		panic(err)
	}

	return c
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !unicode.IsLetter(r) && r != '-' && r != '_' {
			return false
		}
	}

	return true
}

// Name returns the command's name.
func (c *Command) Name() string { return c.name }

// Description returns the command's help description.
func (c *Command) Description() string { return c.description }

// SetPrefix overrides the flag prefix character for this command and
// its sub-commands (unless they set their own).
func (c *Command) SetPrefix(p rune) *Command {
	c.prefix.Set(p)
	return c
}

// SetTupleChars overrides the tuple bracket characters for this
// command and its sub-commands (unless they set their own).
func (c *Command) SetTupleChars(open, close rune) *Command {
	c.tupleOpen.Set(open)
	c.tupleClose.Set(close)

	return c
}

// Prefix returns the flag prefix character in effect for this command,
// resolving inheritance if Parse has already run.
func (c *Command) Prefix() rune { return c.prefix.Get() }

// TupleChars returns the tuple bracket characters in effect for this
// command, resolving inheritance if Parse has already run.
func (c *Command) TupleChars() (rune, rune) { return c.tupleOpen.Get(), c.tupleClose.Get() }

// SetErrorCode overrides the bit this command contributes to the
// aggregated exit code (see [Command.GetErrorCode]). Must be > 0.
func (c *Command) SetErrorCode(n int) *Command {
	if n <= 0 {
		panic(errInvalidErrorCode)
	}

	c.errorCode.Set(n)

	return c
}

// MinDisplayLevel overrides the severity threshold at or above which
// diagnostics are rendered by [Command.RenderDiagnostics].
func (c *Command) MinDisplayLevel(l Level) *Command {
	c.diagnostics.MinDisplayLevel().Set(l)
	return c
}

// MinExitLevel overrides the severity threshold at or above which
// diagnostics contribute to [Command.GetErrorCode].
func (c *Command) MinExitLevel(l Level) *Command {
	c.diagnostics.MinExitLevel().Set(l)
	return c
}

// SetHelpFormatter overrides the [HelpFormatter] used to render this
// command's (and by default its sub-commands') help text.
func (c *Command) SetHelpFormatter(f HelpFormatter) *Command {
	c.formatter.Set(f)
	return c
}

// SetOnCorrectCallback registers a callback invoked once per parse,
// with this command's own ParsedArguments view, when this command (not
// counting its sub-commands) accumulated no exit-level diagnostics. It
// runs before any individual argument's OnOk/OnErr callback.
func (c *Command) SetOnCorrectCallback(fn func(ParsedArguments)) *Command {
	c.onCorrect = fn
	return c
}

// SetOnErrorCallback registers a callback invoked once per parse when
// this command (not counting its sub-commands) accumulated an
// exit-level diagnostic, in place of SetOnCorrectCallback's callback.
// It runs before any individual argument's OnOk/OnErr callback.
func (c *Command) SetOnErrorCallback(fn func()) *Command {
	c.onError = fn
	return c
}

// AddArgument registers an argument at this command's top level.
// Returns an error satisfying [ErrDuplicateIdentifier] if any of its
// names collide with an existing argument at this command.
func (c *Command) AddArgument(slot slotArg) error {
	for _, id := range c.identities {
		if slot.equalsIdentifier(id) {
			return fmt.Errorf("%q: %w", slot.Names()[0], errDuplicateIdentifier)
		}
	}

	slot.setColorIndex(c.nextColor)
	c.nextColor++

	c.arguments = append(c.arguments, slot)
	c.identities = append(c.identities, slot)

	return nil
}

// AddGroup registers a top-level argument group. Returns an error
// satisfying [ErrDuplicateIdentifier] if the name collides with an
// existing group.
func (c *Command) AddGroup(g *ArgumentGroup) error {
	for _, existing := range c.groups {
		if existing.name == g.name {
			return fmt.Errorf("%q: %w", g.name, errDuplicateGroupName)
		}
	}

	g.parentCmd = c
	c.groups = append(c.groups, g)

	return nil
}

// AddSubCommand attaches child as a sub-command. Returns an error
// satisfying [ErrInvalidChild] if child is c itself, or
// [ErrDuplicateIdentifier] if the name collides with an existing
// sub-command. No other cycle check is made: an ancestor of c, the
// root included, is accepted as a child.
func (c *Command) AddSubCommand(child *Command) error {
	if child == c {
		return fmt.Errorf("%q: %w", child.name, errInvalidChild)
	}

	for _, existing := range c.subs {
		if existing.name == child.name {
			return fmt.Errorf("%q: %w", child.name, errDuplicateIdentifier)
		}
	}

	child.parent = c
	c.subs = append(c.subs, child)

	return nil
}

// GroupArgument adds slot to g, registering it at this command's top
// level first if it is not already present there.
func (c *Command) GroupArgument(g *ArgumentGroup, slot slotArg) error {
	if err := c.AddArgument(slot); err != nil && !ErrDuplicateIdentifier(err) {
		return err
	}

	g.addSlot(slot, slot)

	return nil
}

// inheritFrom pulls every slot this command never explicitly set from
// parent, per the ModifyRecord inherit-unless-modified rule. The help
// formatter is inherited by reference: a command that never set its
// own shares its parent's HelpFormatter value, which is not copied.
func (c *Command) inheritFrom(parent *Command) {
	c.prefix.SetIfNotModified(parent.prefix)
	c.tupleOpen.SetIfNotModified(parent.tupleOpen)
	c.tupleClose.SetIfNotModified(parent.tupleClose)
	c.errorCode.SetIfNotModified(parent.errorCode)
	c.diagnostics.MinDisplayLevel().SetIfNotModified(*parent.diagnostics.MinDisplayLevel())
	c.diagnostics.MinExitLevel().SetIfNotModified(*parent.diagnostics.MinExitLevel())
	c.formatter.SetIfNotModifiedFunc(func() HelpFormatter { return parent.formatter.Get() })
}

func (c *Command) tokenizerConfig() tokenizer.Config {
	cfg := tokenizer.Config{
		Prefix:          c.prefix.Get(),
		TupleOpen:       c.tupleOpen.Get(),
		TupleClose:      c.tupleClose.Get(),
		LongNames:       map[string]bool{},
		ShortNames:      map[rune]bool{},
		SubCommandNames: map[string]bool{},
	}

	for _, a := range c.arguments {
		if a.Positional() {
			continue
		}

		for _, n := range a.Names() {
			if len([]rune(n)) == 1 {
				cfg.ShortNames[[]rune(n)[0]] = true
			} else {
				cfg.LongNames[n] = true
			}
		}
	}

	for _, s := range c.subs {
		cfg.SubCommandNames[s.name] = true
	}

	return cfg
}

// parserInput builds the resolution tables the parser needs from this
// command's arguments, keyed the same way the tokenizer emits name
// tokens: "-x" for a single-letter name, "--name" and "-name" for a
// long one.
func (c *Command) parserInput(toks []token.Token) parser.Input {
	in := parser.Input{
		Tokens:  toks,
		Prefix:  c.prefix.Get(),
		ByName:  map[string]parser.Slot{},
		ByShort: map[rune]parser.Slot{},
	}

	prefixStr := string(c.prefix.Get())

	for _, a := range c.arguments {
		if a.Positional() {
			in.Positionals = append(in.Positionals, a)
			in.AllSlots = append(in.AllSlots, a)

			continue
		}

		for _, n := range a.Names() {
			if len([]rune(n)) == 1 {
				r := []rune(n)[0]
				in.ByShort[r] = a
				in.ByName[prefixStr+n] = a
			} else {
				in.ByName[prefixStr+prefixStr+n] = a
				in.ByName[prefixStr+n] = a
			}
		}

		in.AllSlots = append(in.AllSlots, a)
	}

	for _, g := range c.groups {
		for _, tg := range g.transitiveGroups() {
			in.Groups = append(in.Groups, tg)
		}
	}

	return in
}

// ResetState clears usage counts, accumulated diagnostics, and
// sub-command results from a previous Parse, on this command and every
// descendant. Idempotent: calling it on an already-clean tree is a
// no-op.
func (c *Command) ResetState() {
	for _, a := range c.arguments {
		a.resetState()
	}

	c.diagnostics.Reset()
	c.subResult = nil
	c.lastTokens = nil
	c.lastPos = nil
	c.lastRaw = ""

	for _, s := range c.subs {
		s.ResetState()
	}
}

// ParseString tokenizes raw and parses it against this command tree.
func (c *Command) ParseString(raw string) (ParsedArguments, error) {
	return c.parse(raw), nil
}

// Parse joins args with single spaces and parses the result. Arguments
// containing embedded spaces should instead be passed pre-quoted to
// [Command.ParseString].
func (c *Command) Parse(args []string) (ParsedArguments, error) {
	raw := ""

	for i, a := range args {
		if i > 0 {
			raw += " "
		}

		raw += a
	}

	return c.parse(raw), nil
}

func (c *Command) parse(raw string) ParsedArguments {
	c.ResetState()

	if c.parent != nil {
		c.inheritFrom(c.parent)
	}

	c.lastRaw = raw

	cur := c
	remainder := raw

	for {
		res := tokenizer.Tokenize(remainder, cur.tokenizerConfig())

		cur.lastTokens = res.Tokens
		cur.lastPos = tokenPositions(res.Tokens)

		for _, d := range res.Diagnostics {
			cur.diagnostics.Add(d)
		}

		out := parser.Parse(cur.parserInput(res.Tokens))

		for _, d := range out.Diagnostics {
			cur.diagnostics.Add(d)
		}

		if !out.StoppedAtSubCommand {
			break
		}

		var next *Command

		for _, s := range cur.subs {
			if s.name == res.SubCommand {
				next = s
				break
			}
		}

		if next == nil {
			break
		}

		next.inheritFrom(cur)
		cur.subResult = next
		cur = next
		remainder = res.Remainder
	}

	c.InvokeCallbacks()

	return newParsedArguments(c)
}

func tokenPositions(toks []token.Token) []int {
	out := make([]int, len(toks))
	for i, t := range toks {
		out[i] = t.Position
	}

	return out
}

// InvokeCallbacks walks the invoked chain post-order — sub-command
// first. For this command itself: runs OnErrorCallback if it
// accumulated exit-level diagnostics, else OnCorrectCallback; then runs
// each of this command's arguments' own OnOk or OnErr callback (judged
// independently, per argument, against its own diagnostics), in
// declaration order.
func (c *Command) InvokeCallbacks() {
	if c.subResult != nil {
		c.subResult.InvokeCallbacks()
	}

	if c.diagnostics.HasExitErrors() {
		if c.onError != nil {
			c.onError()
		}
	} else if c.onCorrect != nil {
		c.onCorrect(newParsedArguments(c))
	}

	minExit := c.diagnostics.MinExitLevel().Get()

	for _, a := range c.arguments {
		a.invokeCallback(minExit)
	}
}

// GetErrorCode aggregates this command's error code (if it accumulated
// exit-level diagnostics) with every invoked descendant's, by bitwise
// OR. A clean parse of a tree with no exit-level diagnostics anywhere
// returns 0.
func (c *Command) GetErrorCode() int {
	code := 0
	if c.diagnostics.HasExitErrors() {
		code |= c.errorCode.Get()
	}

	if c.subResult != nil {
		code |= c.subResult.GetErrorCode()
	}

	return code
}

// HasExitErrors reports whether this command (not its sub-commands)
// accumulated any diagnostic at or above the exit threshold.
func (c *Command) HasExitErrors() bool { return c.diagnostics.HasExitErrors() }

// HasDisplayErrors reports whether this command (not its sub-commands)
// accumulated any diagnostic at or above the display threshold.
func (c *Command) HasDisplayErrors() bool { return c.diagnostics.HasDisplayErrors() }

// Diagnostics returns this command's own accumulated diagnostics, in
// source order. It does not include descendants'.
func (c *Command) Diagnostics() []Diagnostic { return c.diagnostics.Diagnostics() }

// UniqueArgumentReceivedValue reports whether some AllowUnique
// argument on this command was used in the most recent parse.
func (c *Command) UniqueArgumentReceivedValue() bool {
	for _, a := range c.arguments {
		if a.AllowUnique() && a.UsageCount() > 0 {
			return true
		}
	}

	return false
}

// FullTokenList returns every token produced for this command during
// the most recent parse, including name and structural tokens (unlike
// the value-only slice an ArgumentType sees via ParseArgValues).
func (c *Command) FullTokenList() []Token { return c.lastTokens }

// SubCommandResult returns the sub-command that was actually invoked
// during the most recent parse, or nil if none was.
func (c *Command) SubCommandResult() *Command { return c.subResult }

// RenderDiagnostics writes every diagnostic at or above the display
// threshold, across the whole invoked chain, to w.
func (c *Command) RenderDiagnostics(w io.Writer) {
	minLevel := c.diagnostics.MinDisplayLevel().Get()

	for _, d := range c.diagnostics.Diagnostics() {
		if d.Level.IsInErrorMinimum(minLevel) {
			fmt.Fprintln(w, diag.Render(d, c.lastRaw, c.lastPos))
		}
	}

	if c.subResult != nil {
		c.subResult.RenderDiagnostics(w)
	}
}

// PrintHelp writes this command's help text, via its (possibly
// inherited) HelpFormatter, to Stdout. It is a no-op if no formatter
// was ever configured on this command or an ancestor.
func (c *Command) PrintHelp() {
	f := c.formatter.Get()
	if f == nil {
		return
	}

	fmt.Fprint(c.Stdout, f.FormatHelp(c))
}
