package tokenizer

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/danhart/clarg/internal/diag"
	"github.com/danhart/clarg/internal/token"
)

// Result is the output of tokenizing one command's share of the input.
type Result struct {
	Tokens      []token.Token
	Diagnostics []diag.Diagnostic

	// HasSubCommand reports whether tokenization stopped because a
	// sibling sub-command name was recognized. SubCommand names it;
	// Remainder is the unconsumed suffix handed to that sub-command's
	// own Tokenize call.
	HasSubCommand bool
	SubCommand    string
	Remainder     string
}

type scanner struct {
	runes []rune
	i     int
	cfg   Config
	out   Result
}

// Tokenize scans input according to cfg, producing a token stream for
// a single command. If a sub-command boundary is found, scanning stops
// there; the caller is responsible for recursing into the matching
// sub-command's own Tokenize call with Result.Remainder.
func Tokenize(input string, cfg Config) Result {
	if cfg.Prefix == 0 {
		cfg.Prefix = '-'
	}

	if cfg.TupleOpen == 0 {
		cfg.TupleOpen = '['
	}

	if cfg.TupleClose == 0 {
		cfg.TupleClose = ']'
	}

	s := &scanner{runes: []rune(input), cfg: cfg}
	s.run()

	return s.out
}

func (s *scanner) run() {
	for s.i < len(s.runes) {
		s.skipSpace()

		if s.i >= len(s.runes) {
			return
		}

		start := s.i
		c := s.runes[s.i]

		switch {
		case c == s.cfg.Prefix:
			s.scanPrefixed(start)
		case c == s.cfg.TupleOpen:
			s.scanTuple(start)
		default:
			s.scanBarewordSegment(start)
		}

		if s.out.HasSubCommand {
			return
		}
	}
}

func (s *scanner) skipSpace() {
	for s.i < len(s.runes) && unicode.IsSpace(s.runes[s.i]) {
		s.i++
	}
}

func (s *scanner) emit(kind token.Kind, text string, pos int) {
	s.out.Tokens = append(s.out.Tokens, token.New(kind, text, pos))
}

func (s *scanner) addDiag(d diag.Diagnostic) {
	s.out.Diagnostics = append(s.out.Diagnostics, d)
}

// readBarewordRun reads raw runes up to (not including) the next
// unescaped whitespace or end of input, honoring "backslash space is a
// literal space" and "backslash anything-else is a literal backslash
// plus that char". It does not interpret quote characters.
func (s *scanner) readBarewordRun() string {
	var b strings.Builder

	for s.i < len(s.runes) {
		c := s.runes[s.i]

		if c == '\\' && s.i+1 < len(s.runes) {
			next := s.runes[s.i+1]
			b.WriteRune(c)
			b.WriteRune(next)
			s.i += 2

			continue
		}

		if unicode.IsSpace(c) {
			break
		}

		b.WriteRune(c)
		s.i++
	}

	return unescapeBackslashSpace(b.String())
}

// unescapeBackslashSpace turns a literal `\ ` pair into a plain space,
// per the Normal-state escaping rule, while leaving `\X` (X != space)
// as a literal backslash followed by X.
func unescapeBackslashSpace(s string) string {
	var b strings.Builder

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '\\' && i+1 < len(runes) && runes[i+1] == ' ' {
			b.WriteRune(' ')
			i++

			continue
		}

		b.WriteRune(runes[i])
	}

	return b.String()
}

// scanPrefixed handles a segment beginning with the configured prefix
// character: a flag name, name list, forward marker, or (if it doesn't
// resolve to any of those) a plain value.
func (s *scanner) scanPrefixed(start int) {
	// Forward marker: "--" followed by whitespace or end of input.
	if s.isForwardMarker() {
		s.scanForward(start)
		return
	}

	word := s.readBarewordRun()

	// Lone prefix character, or prefix with nothing else: not a name.
	if len([]rune(word)) < 2 {
		s.emit(token.ArgumentValue, word, start)
		return
	}

	name, value, hasValue := splitNameValue(word)

	kind, canonical, ok := s.classifyName(name)
	if !ok {
		s.emit(token.ArgumentValue, word, start)
		return
	}

	s.emit(kind, canonical, start)

	if hasValue {
		valuePos := start + len([]rune(name)) + 1
		s.emit(token.ArgumentValue, value, valuePos)
	}
}

// splitNameValue splits "--name=value" into ("--name", "value", true),
// or returns (word, "", false) when there is no '=' form.
func splitNameValue(word string) (name, value string, hasValue bool) {
	idx := strings.IndexByte(word, '=')
	if idx < 0 {
		return word, "", false
	}

	return word[:idx], word[idx+1:], true
}

// classifyName resolves a prefixed word (without any "=value" suffix)
// to a Kind. An unknown name is reported via ok=false so the caller
// treats it as a plain value rather than an error.
func (s *scanner) classifyName(word string) (kind token.Kind, canonical string, ok bool) {
	prefix := string(s.cfg.Prefix)

	if after, found := strings.CutPrefix(word, prefix+prefix); found {
		if s.cfg.LongNames[after] {
			return token.ArgumentName, prefix + prefix + after, true
		}

		return 0, "", false
	}

	after, found := strings.CutPrefix(word, prefix)
	if !found {
		return 0, "", false
	}

	if s.cfg.LongNames[after] {
		return token.ArgumentName, prefix + after, true
	}

	if after != "" && s.allShortNames(after) {
		return token.ArgumentNameList, prefix + after, true
	}

	return 0, "", false
}

func (s *scanner) allShortNames(letters string) bool {
	for _, r := range letters {
		if !s.cfg.ShortNames[r] {
			return false
		}
	}

	return true
}

func (s *scanner) isForwardMarker() bool {
	prefix := s.cfg.Prefix
	n := len(s.runes)

	if s.i+1 >= n || s.runes[s.i] != prefix || s.runes[s.i+1] != prefix {
		return false
	}

	return s.i+2 >= n || unicode.IsSpace(s.runes[s.i+2])
}

func (s *scanner) scanForward(start int) {
	s.i += 2 // consume "--"
	s.skipSpace()

	payload := string(s.runes[s.i:])
	s.emit(token.Forward, payload, start)
	s.i = len(s.runes)
}

// scanBarewordSegment handles a segment not starting with the prefix
// character: a quoted or bare value, or a sub-command boundary.
func (s *scanner) scanBarewordSegment(start int) {
	text, wasQuoted := s.readValue()

	if !wasQuoted && s.cfg.SubCommandNames[text] {
		s.emit(token.SubCommand, text, start)
		s.out.HasSubCommand = true
		s.out.SubCommand = text
		s.skipSpace()
		s.out.Remainder = string(s.runes[s.i:])

		return
	}

	s.emit(token.ArgumentValue, text, start)
}

// readValue reads one VALUE per the grammar: a quoted string (with
// escaping) or a bareword run.
func (s *scanner) readValue() (text string, wasQuoted bool) {
	if s.i < len(s.runes) && isQuoteChar(s.runes[s.i]) {
		return s.readQuoted(), true
	}

	return s.readBarewordRun(), false
}

func isQuoteChar(r rune) bool {
	return r == '"' || r == '\''
}

// readQuoted reads a quoted string starting at the opening quote
// (s.runes[s.i]), stripping the surrounding quotes, and applying the
// backslash-escaping rule. An unterminated quote emits a diagnostic
// and recovers by closing at end of input.
func (s *scanner) readQuoted() string {
	openPos := s.i
	quote := s.runes[s.i]
	s.i++

	var b strings.Builder

	for s.i < len(s.runes) {
		c := s.runes[s.i]

		if c == '\\' && s.i+1 < len(s.runes) {
			next := s.runes[s.i+1]
			if next == quote {
				b.WriteRune(quote)
			} else {
				b.WriteRune(c)
				b.WriteRune(next)
			}

			s.i += 2

			continue
		}

		if c == quote {
			s.i++
			return b.String()
		}

		b.WriteRune(c)
		s.i++
	}

	s.addDiag(diag.NewCommandLevel(diag.KindUnterminatedQuote, diag.Error,
		"unterminated quote starting at position "+strconv.Itoa(openPos)))

	return b.String()
}

// scanTuple handles a bracketed tuple span: OpeningTuple, zero or more
// whitespace-separated ArgumentValueTupled elements, ClosingTuple.
func (s *scanner) scanTuple(start int) {
	s.emit(token.OpeningTuple, string(s.cfg.TupleOpen), start)
	s.i++ // consume opener

	for {
		s.skipSpace()

		if s.i >= len(s.runes) {
			s.addDiag(diag.NewCommandLevel(diag.KindUnterminatedTuple, diag.Error,
				"unterminated tuple starting at position "+strconv.Itoa(start)))
			return
		}

		c := s.runes[s.i]

		if c == s.cfg.TupleClose {
			s.emit(token.ClosingTuple, string(c), s.i)
			s.i++

			return
		}

		if c == s.cfg.TupleOpen {
			s.addDiag(diag.NewCommandLevel(diag.KindNestedTuple, diag.Error,
				"nested tuple opener at position "+strconv.Itoa(s.i)))

			s.i++

			continue
		}

		elemPos := s.i

		text, _ := s.readValue()
		s.emit(token.ArgumentValueTupled, text, elemPos)
	}
}
