package help_test

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/danhart/clarg/help"
)

func TestLoopPoolWrapsAround(t *testing.T) {
	g := NewWithT(t)

	p := help.NewLoopPool([]int{1, 2, 3})

	g.Expect(p.Next()).To(Equal(1))
	g.Expect(p.Next()).To(Equal(2))
	g.Expect(p.Next()).To(Equal(3))
	g.Expect(p.Next()).To(Equal(1))
}

func TestLoopPoolEmptyReturnsZeroValue(t *testing.T) {
	g := NewWithT(t)

	p := help.NewLoopPool[string](nil)

	g.Expect(p.Next()).To(Equal(""))
}
