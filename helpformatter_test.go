package clarg_test

import (
	"bytes"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/danhart/clarg"
)

type stubFormatter struct {
	rendered string
}

func (s *stubFormatter) FormatHelp(c *clarg.Command) string {
	return s.rendered
}

func TestCustomHelpFormatterIsUsedByPrintHelp(t *testing.T) {
	g := NewWithT(t)

	cmd := clarg.NewCommand("app", "")
	cmd.SetHelpFormatter(&stubFormatter{rendered: "custom help text"})

	var out bytes.Buffer
	cmd.Stdout = &out

	_, err := cmd.Parse([]string{"--help"})
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(out.String()).To(Equal("custom help text"))
}

func TestPrintHelpIsNoOpWithoutFormatter(t *testing.T) {
	g := NewWithT(t)

	cmd := clarg.NewCommand("app", "")

	var out bytes.Buffer
	cmd.Stdout = &out

	_, err := cmd.Parse([]string{"--help"})
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(out.String()).To(BeEmpty())
}
