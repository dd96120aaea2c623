package diag

import "github.com/danhart/clarg/internal/modify"

// Leveled is the minimum a diagnostic type must supply to be
// accumulated in a Container: its own severity.
type Leveled interface {
	DiagLevel() Level
}

// Container accumulates diagnostics in source order and exposes
// hasExitErrors/hasDisplayErrors against two independently
// configurable thresholds. The zero value is not usable; construct
// with NewContainer so the defaults (display = Info, exit = Error)
// are in place.
type Container[D Leveled] struct {
	diagnostics     []D
	minDisplayLevel modify.Record[Level]
	minExitLevel    modify.Record[Level]
}

// NewContainer creates a Container with the spec's default thresholds:
// diagnostics at Info or above are displayed (minDisplay = Info, so
// Debug is not) but only Error-level
// diagnostics affect the exit code (minExit = Error).
func NewContainer[D Leveled]() Container[D] {
	return Container[D]{
		minDisplayLevel: modify.NewRecord(Info),
		minExitLevel:    modify.NewRecord(Error),
	}
}

// Add appends a diagnostic in source order.
func (c *Container[D]) Add(d D) {
	c.diagnostics = append(c.diagnostics, d)
}

// Diagnostics returns all accumulated diagnostics, in source order.
func (c *Container[D]) Diagnostics() []D {
	return c.diagnostics
}

// HasExitErrors reports whether any diagnostic's level meets or exceeds
// the exit threshold.
func (c *Container[D]) HasExitErrors() bool {
	return c.hasAtLeast(c.minExitLevel.Get())
}

// HasDisplayErrors reports whether any diagnostic's level meets or
// exceeds the display threshold.
func (c *Container[D]) HasDisplayErrors() bool {
	return c.hasAtLeast(c.minDisplayLevel.Get())
}

func (c *Container[D]) hasAtLeast(minimum Level) bool {
	for _, d := range c.diagnostics {
		if d.DiagLevel().IsInErrorMinimum(minimum) {
			return true
		}
	}

	return false
}

// MinDisplayLevel returns the record backing the display threshold, for
// callers that need to Set or inherit it.
func (c *Container[D]) MinDisplayLevel() *modify.Record[Level] {
	return &c.minDisplayLevel
}

// MinExitLevel returns the record backing the exit threshold, for
// callers that need to Set or inherit it.
func (c *Container[D]) MinExitLevel() *modify.Record[Level] {
	return &c.minExitLevel
}

// Reset clears accumulated diagnostics. Threshold configuration is left
// untouched.
func (c *Container[D]) Reset() {
	c.diagnostics = nil
}
