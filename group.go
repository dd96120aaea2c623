package clarg

import "github.com/danhart/clarg/internal/parser"

// ArgumentGroup collects a set of arguments under a shared name for
// help rendering and, optionally, mutual exclusivity. Groups may
// nest: an exclusive group's "at most one used" check applies across
// its entire transitive closure, including sub-groups.
type ArgumentGroup struct {
	name        string
	description string
	exclusive   bool

	slots     []parser.Slot
	identity  []slotIdentity
	subGroups []*ArgumentGroup

	parentCmd   *Command
	parentGroup *ArgumentGroup
}

// NewArgumentGroup builds a named, non-exclusive group. Use
// SetExclusive to make membership mutually exclusive.
func NewArgumentGroup(name string) *ArgumentGroup {
	if name == "" {
		panic("clarg: group name must not be empty")
	}

	return &ArgumentGroup{name: name}
}

// Name returns the group's name.
func (g *ArgumentGroup) Name() string { return g.name }

// SetDescription sets the help text shown for this group.
func (g *ArgumentGroup) SetDescription(d string) *ArgumentGroup {
	g.description = d
	return g
}

// Description returns the group's help text.
func (g *ArgumentGroup) Description() string { return g.description }

// SetExclusive marks the group as mutually exclusive: at most one of
// its (transitive) members may be used per parse, or parsing raises
// MultipleInExclusive.
func (g *ArgumentGroup) SetExclusive() *ArgumentGroup {
	g.exclusive = true
	return g
}

// Exclusive reports whether the group is mutually exclusive.
func (g *ArgumentGroup) Exclusive() bool { return g.exclusive }

// AddSubGroup nests child under g for display and exclusivity
// purposes.
func (g *ArgumentGroup) AddSubGroup(child *ArgumentGroup) *ArgumentGroup {
	child.parentGroup = g
	g.subGroups = append(g.subGroups, child)

	return g
}

// ChildGroups returns the group's direct sub-groups.
func (g *ArgumentGroup) ChildGroups() []*ArgumentGroup { return g.subGroups }

// AllSlots returns every argument owned by g or any of its nested
// sub-groups, satisfying internal/parser.Group.
func (g *ArgumentGroup) AllSlots() []parser.Slot {
	out := append([]parser.Slot{}, g.slots...)

	for _, sub := range g.subGroups {
		out = append(out, sub.AllSlots()...)
	}

	return out
}

// transitiveGroups returns g and every group nested under it, at any
// depth. Command.parserInput uses this so a sub-group's own Exclusive
// flag is checked even when only an ancestor group was ever registered
// with AddGroup — exclusivity is a property of each group in the tree,
// not just the ones added at the top level.
func (g *ArgumentGroup) transitiveGroups() []*ArgumentGroup {
	out := []*ArgumentGroup{g}

	for _, sub := range g.subGroups {
		out = append(out, sub.transitiveGroups()...)
	}

	return out
}

// addSlot registers an argument as a member of g, for both the
// exclusivity check and duplicate-name detection.
func (g *ArgumentGroup) addSlot(s parser.Slot, id slotIdentity) {
	g.slots = append(g.slots, s)
	g.identity = append(g.identity, id)
}
