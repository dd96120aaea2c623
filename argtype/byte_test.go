package argtype_test

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/danhart/clarg"
	"github.com/danhart/clarg/argtype"
)

func TestByteParsesValidValue(t *testing.T) {
	g := NewWithT(t)

	b := argtype.NewByte()
	b.ParseArgValues([]clarg.Token{valueToken("200")})

	v, ok := b.GetFinalValue()
	g.Expect(ok).To(BeTrue())
	g.Expect(v).To(Equal(byte(200)))
}

func TestByteRejectsOutOfRange(t *testing.T) {
	g := NewWithT(t)

	b := argtype.NewByte()
	b.ParseArgValues([]clarg.Token{valueToken("256")})

	_, ok := b.GetFinalValue()
	g.Expect(ok).To(BeFalse())
	g.Expect(b.Diagnostics()[0].Kind).To(Equal(clarg.KindNumericOutOfRange))
}

func TestByteRejectsNegative(t *testing.T) {
	g := NewWithT(t)

	b := argtype.NewByte()
	b.ParseArgValues([]clarg.Token{valueToken("-1")})

	_, ok := b.GetFinalValue()
	g.Expect(ok).To(BeFalse())
}
