package clarg_test

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/danhart/clarg"
	"github.com/danhart/clarg/argtype"
)

func TestNewArgumentPanicsWithoutNames(t *testing.T) {
	g := NewWithT(t)

	g.Expect(func() {
		clarg.NewArgument[string](argtype.NewString())
	}).To(Panic())
}

func TestArgumentBuilderFluentSetters(t *testing.T) {
	g := NewWithT(t)

	arg := clarg.NewArgument[string](argtype.NewString(), "name", "n").
		SetDescription("a name").
		SetRequired().
		SetPositional().
		SetAllowUnique().
		SetMaxUsage(2)

	g.Expect(arg.CanonicalName()).To(Equal("name"))
	g.Expect(arg.Names()).To(Equal([]string{"name", "n"}))
	g.Expect(arg.Description()).To(Equal("a name"))
	g.Expect(arg.Required()).To(BeTrue())
	g.Expect(arg.Positional()).To(BeTrue())
	g.Expect(arg.AllowUnique()).To(BeTrue())
	g.Expect(arg.MaxUsage()).To(Equal(2))
}

func TestArgumentValueBeforeParseHasNoValue(t *testing.T) {
	g := NewWithT(t)

	arg := clarg.NewArgument[string](argtype.NewString(), "name")

	_, ok := arg.Value()
	g.Expect(ok).To(BeFalse())
}

func TestArgumentOnOkFiresAfterCommandParse(t *testing.T) {
	g := NewWithT(t)

	var got string

	cmd := clarg.NewCommand("app", "")
	arg := clarg.NewArgument[string](argtype.NewString(), "name").OnOk(func(v string) { got = v })
	g.Expect(cmd.AddArgument(arg)).To(Succeed())

	_, err := cmd.Parse([]string{"--name", "bob"})
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(got).To(Equal("bob"))
}

func TestArgumentOnErrFiresInsteadOfOnOkWhenExitErrorsPresent(t *testing.T) {
	g := NewWithT(t)

	okCalled, errCalled := false, false

	cmd := clarg.NewCommand("app", "")
	arg := clarg.NewArgument[string](argtype.NewString(), "name").
		SetRequired().
		OnOk(func(string) { okCalled = true }).
		OnErr(func() { errCalled = true })
	g.Expect(cmd.AddArgument(arg)).To(Succeed())

	_, err := cmd.Parse([]string{})
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(okCalled).To(BeFalse())
	g.Expect(errCalled).To(BeTrue())
}

func TestArgumentOnOkStillFiresWhenAnotherArgumentFailsExitChecks(t *testing.T) {
	g := NewWithT(t)

	var got string
	aOkCalled, aErrCalled := false, false
	bErrCalled := false

	cmd := clarg.NewCommand("app", "")
	argA := clarg.NewArgument[string](argtype.NewString(), "a").
		SetRequired().
		OnOk(func(v string) { got = v; aOkCalled = true }).
		OnErr(func() { aErrCalled = true })
	argB := clarg.NewArgument[string](argtype.NewString(), "b").
		SetRequired().
		OnErr(func() { bErrCalled = true })
	g.Expect(cmd.AddArgument(argA)).To(Succeed())
	g.Expect(cmd.AddArgument(argB)).To(Succeed())

	// "b" is missing, so the command as a whole has exit-level
	// diagnostics — but "a" parsed cleanly on its own and its OnOk must
	// still fire; only "b"'s OnErr should.
	res, err := cmd.Parse([]string{"--a", "hello"})
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(res.HasExitErrors()).To(BeTrue())

	g.Expect(aOkCalled).To(BeTrue())
	g.Expect(got).To(Equal("hello"))
	g.Expect(aErrCalled).To(BeFalse())
	g.Expect(bErrCalled).To(BeTrue())
}
