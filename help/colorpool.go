// Package help implements the default [clarg.HelpFormatter]: styled,
// synopsis-and-description rendering of a command tree via lipgloss.
package help

// LoopPool hands out values from a fixed set in round-robin order,
// wrapping back to the start once exhausted. [Default] uses one to
// assign each argument a rotating color for help rendering.
type LoopPool[T any] struct {
	values []T
	idx    int
}

// NewLoopPool builds a LoopPool over values. The first call to Next
// returns values[0].
func NewLoopPool[T any](values []T) *LoopPool[T] {
	return &LoopPool[T]{values: values, idx: -1}
}

// Next advances to (and returns) the next value in the pool, wrapping
// around at the end.
func (p *LoopPool[T]) Next() T {
	if len(p.values) == 0 {
		var zero T
		return zero
	}

	p.idx = (p.idx + 1) % len(p.values)

	return p.values[p.idx]
}
