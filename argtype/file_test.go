package argtype_test

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/danhart/clarg"
	"github.com/danhart/clarg/argtype"
)

func TestFileWithoutMustExistAcceptsAnyPath(t *testing.T) {
	g := NewWithT(t)

	f := argtype.NewFile()
	f.ParseArgValues([]clarg.Token{valueToken("/does/not/exist")})

	v, ok := f.GetFinalValue()
	g.Expect(ok).To(BeTrue())
	g.Expect(v).To(Equal("/does/not/exist"))
}

func TestFileMustExistRejectsMissingPath(t *testing.T) {
	g := NewWithT(t)

	f := argtype.NewFile()
	f.MustExist = true
	f.ParseArgValues([]clarg.Token{valueToken("/definitely/not/here/ever")})

	_, ok := f.GetFinalValue()
	g.Expect(ok).To(BeFalse())
	g.Expect(f.Diagnostics()[0].Kind).To(Equal(clarg.KindFileNotFound))
}

func TestFileMustExistAcceptsExistingPath(t *testing.T) {
	g := NewWithT(t)

	f := argtype.NewFile()
	f.MustExist = true
	f.ParseArgValues([]clarg.Token{valueToken("/tmp")})

	v, ok := f.GetFinalValue()
	g.Expect(ok).To(BeTrue())
	g.Expect(v).To(Equal("/tmp"))
}
