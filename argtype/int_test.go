package argtype_test

import (
	"strconv"
	"testing"

	. "github.com/onsi/gomega"
	"pgregory.net/rapid"

	"github.com/danhart/clarg"
	"github.com/danhart/clarg/argtype"
)

func TestIntParsesValidInteger(t *testing.T) {
	g := NewWithT(t)

	i := argtype.NewInt()
	i.ParseArgValues([]clarg.Token{valueToken("-42")})

	v, ok := i.GetFinalValue()
	g.Expect(ok).To(BeTrue())
	g.Expect(v).To(Equal(-42))
}

func TestIntRejectsNonNumeric(t *testing.T) {
	g := NewWithT(t)

	i := argtype.NewInt()
	i.ParseArgValues([]clarg.Token{valueToken("banana")})

	_, ok := i.GetFinalValue()
	g.Expect(ok).To(BeFalse())
	g.Expect(i.Diagnostics()).To(HaveLen(1))
	g.Expect(i.Diagnostics()[0].Kind).To(Equal(clarg.KindCustom))
}

func TestIntRejectsOutOfRange(t *testing.T) {
	g := NewWithT(t)

	i := argtype.NewInt()
	i.ParseArgValues([]clarg.Token{valueToken("99999999999999999999999999999999")})

	_, ok := i.GetFinalValue()
	g.Expect(ok).To(BeFalse())
	g.Expect(i.Diagnostics()[0].Kind).To(Equal(clarg.KindNumericOutOfRange))
}

func TestIntRoundTripsAnyValidInteger(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(rt)

		n := rapid.Int().Draw(rt, "n")

		i := argtype.NewInt()
		i.ParseArgValues([]clarg.Token{valueToken(strconv.Itoa(n))})

		v, ok := i.GetFinalValue()
		g.Expect(ok).To(BeTrue())
		g.Expect(v).To(Equal(n))
	})
}
