package clarg_test

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/danhart/clarg"
)

func TestBaseTypeDefaultSurvivesResetState(t *testing.T) {
	g := NewWithT(t)

	b := clarg.NewBaseType[int](clarg.Exactly(1))
	b.SetDefault(7)
	b.SetValue(3)

	v, ok := b.GetFinalValue()
	g.Expect(ok).To(BeTrue())
	g.Expect(v).To(Equal(3))

	b.ResetState()

	v, ok = b.GetFinalValue()
	g.Expect(ok).To(BeTrue())
	g.Expect(v).To(Equal(7))
}

func TestBaseTypeNoValueNoDefault(t *testing.T) {
	g := NewWithT(t)

	b := clarg.NewBaseType[int](clarg.Exactly(1))

	_, ok := b.GetFinalValue()
	g.Expect(ok).To(BeFalse())
	g.Expect(b.HasDefault()).To(BeFalse())
}

func TestAddErrorKindRecordsLengthZeroForWholeArgumentDiagnostics(t *testing.T) {
	g := NewWithT(t)

	b := clarg.NewBaseType[int](clarg.Exactly(1))
	b.AddErrorKind(clarg.KindCustom, "bad", -1, clarg.LevelError)

	diags := b.Diagnostics()
	g.Expect(diags).To(HaveLen(1))
	g.Expect(diags[0].Length).To(Equal(0))
	g.Expect(diags[0].TokenIndex).To(Equal(-1))
}

func TestCheckTupleArityPassesThroughNonTupleTokens(t *testing.T) {
	g := NewWithT(t)

	b := clarg.NewBaseType[int](clarg.Exactly(1))
	ok := b.CheckTupleArity([]clarg.Token{clarg.Token{Kind: clarg.TokenArgumentValue, Text: "5"}})

	g.Expect(ok).To(BeTrue())
	g.Expect(b.Diagnostics()).To(BeEmpty())
}

func TestCheckTupleArityFlagsMismatchedTupleCount(t *testing.T) {
	g := NewWithT(t)

	b := clarg.NewBaseType[int](clarg.Exactly(2))
	tokens := []clarg.Token{
		{Kind: clarg.TokenArgumentValueTupled, Text: "1"},
	}

	ok := b.CheckTupleArity(tokens)

	g.Expect(ok).To(BeFalse())
	g.Expect(b.Diagnostics()).To(HaveLen(1))
	g.Expect(b.Diagnostics()[0].Kind).To(Equal(clarg.KindTupleArityMismatch))
}
