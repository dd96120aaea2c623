package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/danhart/clarg"
)

// Default is the built-in [clarg.HelpFormatter]: a synopsis line
// followed by description sections for positional arguments, flags,
// groups, and sub-commands, styled with lipgloss and colored per
// argument from a rotating palette.
type Default struct {
	Styles Styles

	pool  *LoopPool[lipgloss.Color]
	cache map[clarg.ArgumentInfo]lipgloss.Color
}

// NewDefault builds a Default formatter with the standard styles and
// color palette.
func NewDefault() *Default {
	return &Default{
		Styles: DefaultStyles(),
		pool:   NewLoopPool(brightColors),
		cache:  map[clarg.ArgumentInfo]lipgloss.Color{},
	}
}

// colorFor returns the color assigned to a, assigning the next one
// from the pool the first time a is seen.
func (d *Default) colorFor(a clarg.ArgumentInfo) lipgloss.Color {
	if c, ok := d.cache[a]; ok {
		return c
	}

	c := d.pool.Next()
	d.cache[a] = c

	return c
}

// FormatHelp implements [clarg.HelpFormatter].
func (d *Default) FormatHelp(c *clarg.Command) string {
	var b strings.Builder

	fmt.Fprintln(&b, d.Styles.Header.Render("Usage:"))
	fmt.Fprintln(&b, "  "+d.synopsis(c))

	if desc := c.Description(); desc != "" {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, desc)
	}

	args := SortByPriority(c.Arguments())

	var positionals, flags []clarg.ArgumentInfo

	for _, a := range args {
		if a.Positional() {
			positionals = append(positionals, a)
		} else {
			flags = append(flags, a)
		}
	}

	d.renderPositionals(&b, positionals)
	d.renderFlags(&b, flags)
	d.renderGroups(&b, c.Groups())
	d.renderSubCommands(&b, c.SubCommands())

	return b.String()
}

func (d *Default) renderPositionals(b *strings.Builder, args []clarg.ArgumentInfo) {
	if len(args) == 0 {
		return
	}

	fmt.Fprintln(b)
	fmt.Fprintln(b, d.Styles.Subsection.Render("Positional arguments:"))

	labels := make([]string, len(args))
	for i, a := range args {
		labels[i] = a.Names()[0]
	}

	width := maxWidth(labels)

	for i, a := range args {
		name := lipgloss.NewStyle().Foreground(d.colorFor(a)).Render(labels[i])
		fmt.Fprintf(b, "  %s%s\n", padTo(name, width), a.Description())
	}
}

func (d *Default) renderFlags(b *strings.Builder, args []clarg.ArgumentInfo) {
	if len(args) == 0 {
		return
	}

	fmt.Fprintln(b)
	fmt.Fprintln(b, d.Styles.Subsection.Render("Flags:"))

	labels := make([]string, len(args))
	for i, a := range args {
		labels[i] = flagLabel(a)
	}

	width := maxWidth(labels)

	for i, a := range args {
		styled := lipgloss.NewStyle().Foreground(d.colorFor(a)).Render(labels[i])
		fmt.Fprintf(b, "  %s%s\n", padTo(styled, width), a.Description())
	}
}

func (d *Default) renderGroups(b *strings.Builder, groups []clarg.GroupInfo) {
	for _, g := range groups {
		args := SortByPriority(g.Arguments())
		if len(args) == 0 && len(g.SubGroups()) == 0 {
			continue
		}

		fmt.Fprintln(b)

		header := g.Name() + ":"
		if g.Exclusive() {
			header = d.Styles.Subsection.Underline(true).Render(header)
		} else {
			header = d.Styles.Subsection.Render(header)
		}

		fmt.Fprintln(b, header)

		if g.Description() != "" {
			fmt.Fprintln(b, "  "+g.Description())
		}

		for _, a := range args {
			fmt.Fprintf(b, "  %s  %s\n", flagLabel(a), a.Description())
		}

		d.renderGroups(b, g.SubGroups())
	}
}

func (d *Default) renderSubCommands(b *strings.Builder, subs []*clarg.Command) {
	if len(subs) == 0 {
		return
	}

	fmt.Fprintln(b)
	fmt.Fprintln(b, d.Styles.Subsection.Render("Commands:"))

	labels := make([]string, len(subs))
	for i, s := range subs {
		labels[i] = s.Name()
	}

	width := maxWidth(labels)

	for i, s := range subs {
		fmt.Fprintf(b, "  %s%s\n", padTo(labels[i], width), s.Description())
	}
}

// flagLabel renders a flag's names joined by "/", e.g. "--help/-h".
func flagLabel(a clarg.ArgumentInfo) string {
	names := a.Names()
	prefixed := make([]string, len(names))

	for i, n := range names {
		if len([]rune(n)) == 1 {
			prefixed[i] = "-" + n
		} else {
			prefixed[i] = "--" + n
		}
	}

	label := strings.Join(prefixed, "/")
	if a.Required() {
		return label + " (required)"
	}

	return label
}

// synopsis renders c's one-line usage synopsis: required flags bare,
// optional flags bracketed, exclusive groups parenthesized with '|'
// between alternatives, sub-commands listed last.
func (d *Default) synopsis(c *clarg.Command) string {
	var parts []string

	parts = append(parts, c.Name())

	for _, a := range SortByPriority(c.Arguments()) {
		parts = append(parts, synopsisOne(a))
	}

	for _, g := range c.Groups() {
		if rep := groupSynopsis(g); rep != "" {
			parts = append(parts, rep)
		}
	}

	if subs := c.SubCommands(); len(subs) > 0 {
		names := make([]string, len(subs))
		for i, s := range subs {
			names[i] = s.Name()
		}

		parts = append(parts, "{"+strings.Join(names, "|")+"}")
	}

	return strings.Join(parts, " ")
}

func synopsisOne(a clarg.ArgumentInfo) string {
	name := a.Names()[0]

	label := name
	if !a.Positional() {
		if len([]rune(name)) == 1 {
			label = "-" + name
		} else {
			label = "--" + name
		}
	}

	if a.Required() {
		return label
	}

	return "[" + label + "]"
}

// groupSynopsis mirrors the original implementation's exclusive-group
// rendering: members joined by '|' and wrapped in parens when the
// group is exclusive, space-joined otherwise.
func groupSynopsis(g clarg.GroupInfo) string {
	var parts []string

	for _, a := range SortByPriority(g.Arguments()) {
		parts = append(parts, synopsisOne(a))
	}

	for _, sub := range g.SubGroups() {
		if rep := groupSynopsis(sub); rep != "" {
			parts = append(parts, rep)
		}
	}

	if len(parts) == 0 {
		return ""
	}

	if g.Exclusive() {
		return "(" + strings.Join(parts, " | ") + ")"
	}

	return strings.Join(parts, " ")
}
