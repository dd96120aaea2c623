package parser

import (
	"fmt"

	"github.com/danhart/clarg/internal/diag"
	"github.com/danhart/clarg/internal/token"
)

// Parse walks in.Tokens once, resolving each token to a slot (or a
// positional) and delegating value consumption to it. See spec §4.3.
func Parse(in Input) Output {
	p := &pass{in: in}
	p.run()
	p.checkRequired()
	p.checkExclusiveGroups()
	p.checkUniqueCombination()

	return p.out
}

type pass struct {
	in       Input
	out      Output
	posIndex int
}

func (p *pass) run() {
	tokens := p.in.Tokens

	for i := 0; i < len(tokens); {
		t := tokens[i]

		switch t.Kind {
		case token.ArgumentName:
			i = p.consumeNamed(p.in.ByName[t.Text], i)
		case token.ArgumentNameList:
			i = p.consumeNameList(t, i)
		case token.ArgumentValue, token.ArgumentValueTupled, token.OpeningTuple:
			i = p.consumePositionalOrReject(i)
		case token.SubCommand:
			p.out.StoppedAtSubCommand = true
			return
		case token.Forward:
			p.out.HasForward = true
			p.out.Forward = t.Text
			i++
		default:
			i++
		}
	}
}

// consumeNamed resolves one ArgumentName token at index i and returns
// the index to resume scanning from. An unresolved name (shouldn't
// happen; the tokenizer only emits ArgumentName for known names) is
// treated as consuming nothing further.
func (p *pass) consumeNamed(slot Slot, i int) int {
	if slot == nil {
		return i + 1
	}

	slot.IncrementUsage()
	next, diags := p.consumeArityAt(slot, i+1)
	diags = append(diags, p.checkMaxUsage(slot)...)
	p.out.Diagnostics = append(p.out.Diagnostics, diags...)

	return next
}

// checkMaxUsage emits TooManyOccurrences once a slot's usage count
// exceeds its configured cap (0 means unlimited).
func (p *pass) checkMaxUsage(slot Slot) []diag.Diagnostic {
	if max := slot.MaxUsage(); max > 0 && slot.UsageCount() > max {
		d := diag.NewCommandLevel(
			diag.KindTooManyOccurrences, diag.Error,
			fmt.Sprintf("%s used %d times, at most %d allowed", slot.CanonicalName(), slot.UsageCount(), max),
		)
		slot.RecordDiagnostic(d)

		return []diag.Diagnostic{d}
	}

	return nil
}

// consumeNameList expands a "-abc" token into per-letter invocations.
// Every letter but the last is treated as a bare (zero-token)
// invocation; the last letter applies the normal arity policy against
// whatever follows in the stream, so a trailing value-taking flag in a
// cluster still receives its value.
func (p *pass) consumeNameList(t token.Token, i int) int {
	letters := []rune(t.Text)[1:]

	for idx, r := range letters {
		slot := p.in.ByShort[r]
		if slot == nil {
			continue
		}

		slot.IncrementUsage()

		if idx < len(letters)-1 {
			if slot.Arity().Min > 0 {
				d := diag.NewCommandLevel(
					diag.KindInsufficientValues, diag.Error,
					fmt.Sprintf("%s needs %s value(s), got 0 (clustered)", slot.CanonicalName(), slot.Arity()),
				)
				slot.RecordDiagnostic(d)
				p.out.Diagnostics = append(p.out.Diagnostics, d)
			} else {
				p.out.Diagnostics = append(p.out.Diagnostics, slot.ParseValues(nil)...)
			}

			p.out.Diagnostics = append(p.out.Diagnostics, p.checkMaxUsage(slot)...)

			continue
		}

		next, diags := p.consumeArityAt(slot, i+1)
		diags = append(diags, p.checkMaxUsage(slot)...)
		p.out.Diagnostics = append(p.out.Diagnostics, diags...)

		return next
	}

	return i + 1
}

// consumeArityAt applies the arity policy for slot starting at token
// index idx (the first token after the name), returning the index to
// resume scanning from and any diagnostics raised.
func (p *pass) consumeArityAt(slot Slot, idx int) (int, []diag.Diagnostic) {
	tokens := p.in.Tokens

	if idx < len(tokens) && tokens[idx].Kind == token.OpeningTuple {
		return p.consumeTuple(slot, idx)
	}

	a := slot.Arity()

	count := 0
	for idx+count < len(tokens) &&
		tokens[idx+count].Kind == token.ArgumentValue &&
		(a.IsInfinite() || count < a.Max) {
		count++
	}

	slice := tokens[idx : idx+count]

	if count < a.Min {
		d := diag.NewCommandLevel(diag.KindInsufficientValues, diag.Error,
			fmt.Sprintf("%s requires %s value(s), got %d", slot.CanonicalName(), a, count))
		slot.RecordDiagnostic(d)

		return idx + count, []diag.Diagnostic{d}
	}

	return idx + count, slot.ParseValues(slice)
}

// consumeTuple passes an entire "[ ... ]" span to slot, overriding its
// arity bounds (the type itself decides whether the count it got is
// acceptable, via the ArgumentValueTupled kind on each element).
func (p *pass) consumeTuple(slot Slot, openIdx int) (int, []diag.Diagnostic) {
	tokens := p.in.Tokens
	closeIdx := openIdx + 1

	for closeIdx < len(tokens) && tokens[closeIdx].Kind != token.ClosingTuple {
		closeIdx++
	}

	inner := tokens[openIdx+1 : min(closeIdx, len(tokens))]
	diags := slot.ParseValues(inner)

	if closeIdx < len(tokens) {
		return closeIdx + 1, diags
	}

	return closeIdx, diags
}

// consumePositionalOrReject gives a value-kind token (or tuple span) to
// the next pending positional, or emits UnexpectedValue.
func (p *pass) consumePositionalOrReject(i int) int {
	if p.posIndex >= len(p.in.Positionals) {
		t := p.in.Tokens[i]
		p.out.Diagnostics = append(p.out.Diagnostics, diag.New(
			diag.KindUnexpectedValue, diag.Error, i, len([]rune(t.Text)),
			fmt.Sprintf("unexpected value %q", t.Text),
		))

		if t.Kind == token.OpeningTuple {
			return p.skipTuple(i)
		}

		return i + 1
	}

	slot := p.in.Positionals[p.posIndex]
	p.posIndex++
	slot.IncrementUsage()

	next, diags := p.consumeArityPositional(slot, i)
	p.out.Diagnostics = append(p.out.Diagnostics, diags...)

	return next
}

// consumeArityPositional handles the (rarer) case of a positional
// argument whose arity spans more than one token, e.g. a positional
// tuple or a variadic positional greedily consuming the rest of the
// bare values.
func (p *pass) consumeArityPositional(slot Slot, i int) (int, []diag.Diagnostic) {
	tokens := p.in.Tokens

	if tokens[i].Kind == token.OpeningTuple {
		return p.consumeTuple(slot, i)
	}

	a := slot.Arity()

	count := 0
	for i+count < len(tokens) &&
		tokens[i+count].Kind == token.ArgumentValue &&
		(a.IsInfinite() || count < a.Max) {
		count++
	}

	if count == 0 {
		count = 1 // the triggering token itself is always consumed
	}

	slice := tokens[i : i+count]
	diags := slot.ParseValues(slice)

	if count < a.Min {
		d := diag.NewCommandLevel(diag.KindInsufficientValues, diag.Error,
			fmt.Sprintf("%s requires %s value(s), got %d", slot.CanonicalName(), a, count))
		slot.RecordDiagnostic(d)
		diags = append(diags, d)
	}

	return i + count, diags
}

func (p *pass) skipTuple(openIdx int) int {
	tokens := p.in.Tokens
	i := openIdx + 1

	for i < len(tokens) && tokens[i].Kind != token.ClosingTuple {
		i++
	}

	if i < len(tokens) {
		return i + 1
	}

	return i
}

func (p *pass) uniqueArgumentUsed() bool {
	for _, s := range p.in.AllSlots {
		if s.AllowUnique() && s.UsageCount() > 0 {
			return true
		}
	}

	return false
}

// checkRequired emits RequiredNotPresent for required, unused,
// default-less slots — unless a unique argument (e.g. --help) was
// used, in which case the check is skipped entirely (see SPEC_FULL.md
// Open Question 2).
func (p *pass) checkRequired() {
	if p.uniqueArgumentUsed() {
		return
	}

	for _, s := range p.in.AllSlots {
		if s.Required() && s.UsageCount() == 0 && !s.HasDefault() {
			d := diag.NewCommandLevel(
				diag.KindRequiredNotPresent, diag.Error,
				fmt.Sprintf("missing required argument %s", s.CanonicalName()),
			)
			s.RecordDiagnostic(d)
			p.out.Diagnostics = append(p.out.Diagnostics, d)
		}
	}
}

func (p *pass) checkExclusiveGroups() {
	for _, g := range p.in.Groups {
		if !g.Exclusive() {
			continue
		}

		used := 0

		for _, s := range g.AllSlots() {
			if s.UsageCount() > 0 {
				used++
			}
		}

		if used > 1 {
			p.out.Diagnostics = append(p.out.Diagnostics, diag.NewCommandLevel(
				diag.KindMultipleInExclusive, diag.Error,
				fmt.Sprintf("group %q is exclusive but received %d values", g.Name(), used),
			))
		}
	}
}

// checkUniqueCombination emits UniqueCombinedWithOthers when a unique
// argument and at least one other argument were both used, regardless
// of the required-check short-circuit above.
func (p *pass) checkUniqueCombination() {
	uniqueUsed, othersUsed := false, false

	for _, s := range p.in.AllSlots {
		if s.UsageCount() == 0 {
			continue
		}

		if s.AllowUnique() {
			uniqueUsed = true
		} else {
			othersUsed = true
		}
	}

	if uniqueUsed && othersUsed {
		p.out.Diagnostics = append(p.out.Diagnostics, diag.NewCommandLevel(
			diag.KindUniqueCombinedWithOthers, diag.Error,
			"a uniquely-allowed argument was combined with other arguments",
		))
	}
}
