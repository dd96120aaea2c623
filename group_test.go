package clarg_test

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/danhart/clarg"
	"github.com/danhart/clarg/argtype"
)

func TestNewArgumentGroupPanicsOnEmptyName(t *testing.T) {
	g := NewWithT(t)

	g.Expect(func() { clarg.NewArgumentGroup("") }).To(Panic())
}

func TestGroupArgumentRegistersAtCommandTopLevelToo(t *testing.T) {
	g := NewWithT(t)

	cmd := clarg.NewCommand("app", "")
	grp := clarg.NewArgumentGroup("mode")
	g.Expect(cmd.AddGroup(grp)).To(Succeed())

	fast := clarg.NewArgument[bool](argtype.NewBool(), "fast")
	g.Expect(cmd.GroupArgument(grp, fast)).To(Succeed())

	found := false
	for _, a := range cmd.Arguments() {
		if a.Names()[0] == "fast" {
			found = true
		}
	}

	g.Expect(found).To(BeTrue())
	g.Expect(grp.Arguments()).To(HaveLen(1))
}

func TestExclusiveGroupRejectsTwoMembersUsedTogether(t *testing.T) {
	g := NewWithT(t)

	cmd := clarg.NewCommand("app", "")
	grp := clarg.NewArgumentGroup("mode").SetExclusive()
	g.Expect(cmd.AddGroup(grp)).To(Succeed())

	fast := clarg.NewArgument[bool](argtype.NewBool(), "fast")
	slow := clarg.NewArgument[bool](argtype.NewBool(), "slow")
	g.Expect(cmd.GroupArgument(grp, fast)).To(Succeed())
	g.Expect(cmd.GroupArgument(grp, slow)).To(Succeed())

	res, err := cmd.Parse([]string{"--fast", "--slow"})
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(res.HasExitErrors()).To(BeTrue())
}

func TestExclusiveGroupAllowsOneMember(t *testing.T) {
	g := NewWithT(t)

	cmd := clarg.NewCommand("app", "")
	grp := clarg.NewArgumentGroup("mode").SetExclusive()
	g.Expect(cmd.AddGroup(grp)).To(Succeed())

	fast := clarg.NewArgument[bool](argtype.NewBool(), "fast")
	slow := clarg.NewArgument[bool](argtype.NewBool(), "slow")
	g.Expect(cmd.GroupArgument(grp, fast)).To(Succeed())
	g.Expect(cmd.GroupArgument(grp, slow)).To(Succeed())

	res, err := cmd.Parse([]string{"--fast"})
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(res.HasExitErrors()).To(BeFalse())
}

func TestExclusiveGroupCheckIncludesNestedSubGroups(t *testing.T) {
	g := NewWithT(t)

	cmd := clarg.NewCommand("app", "")
	outer := clarg.NewArgumentGroup("mode").SetExclusive()
	inner := clarg.NewArgumentGroup("advanced")
	outer.AddSubGroup(inner)
	g.Expect(cmd.AddGroup(outer)).To(Succeed())

	fast := clarg.NewArgument[bool](argtype.NewBool(), "fast")
	g.Expect(cmd.GroupArgument(outer, fast)).To(Succeed())

	slow := clarg.NewArgument[bool](argtype.NewBool(), "slow")
	g.Expect(cmd.GroupArgument(inner, slow)).To(Succeed())

	res, err := cmd.Parse([]string{"--fast", "--slow"})
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(res.HasExitErrors()).To(BeTrue())
}

func TestExclusiveSubGroupIsCheckedEvenWhenOuterGroupIsNotExclusive(t *testing.T) {
	g := NewWithT(t)

	cmd := clarg.NewCommand("app", "")
	outer := clarg.NewArgumentGroup("outer")
	inner := clarg.NewArgumentGroup("advanced").SetExclusive()
	outer.AddSubGroup(inner)
	g.Expect(cmd.AddGroup(outer)).To(Succeed())

	fast := clarg.NewArgument[bool](argtype.NewBool(), "fast")
	slow := clarg.NewArgument[bool](argtype.NewBool(), "slow")
	g.Expect(cmd.GroupArgument(inner, fast)).To(Succeed())
	g.Expect(cmd.GroupArgument(inner, slow)).To(Succeed())

	// inner is never registered directly via AddGroup — only outer is —
	// but inner's own SetExclusive() must still be enforced.
	res, err := cmd.Parse([]string{"--fast", "--slow"})
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(res.HasExitErrors()).To(BeTrue())
}

func TestChildGroupsReturnsDirectSubGroups(t *testing.T) {
	g := NewWithT(t)

	parent := clarg.NewArgumentGroup("outer")
	child := clarg.NewArgumentGroup("inner")
	parent.AddSubGroup(child)

	g.Expect(parent.ChildGroups()).To(Equal([]*clarg.ArgumentGroup{child}))
}
