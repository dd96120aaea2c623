package argtype_test

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/danhart/clarg"
	"github.com/danhart/clarg/argtype"
)

func valueToken(text string) clarg.Token {
	return clarg.Token{Kind: clarg.TokenArgumentValue, Text: text}
}

func TestStringParsesVerbatim(t *testing.T) {
	g := NewWithT(t)

	s := argtype.NewString()
	s.ParseArgValues([]clarg.Token{valueToken("hello world")})

	v, ok := s.GetFinalValue()
	g.Expect(ok).To(BeTrue())
	g.Expect(v).To(Equal("hello world"))
}
