// Package modify implements Record, a value wrapper that tracks whether
// it has been explicitly set, so that a child configuration node can
// inherit a parent's value for any slot it never touched.
package modify

// Record wraps a value of type T with a "user modified" flag. Use
// Record[T] fields on configuration structs that need
// inherit-unless-overridden semantics across a tree (Command inherits
// tuple characters, error codes, and error-level thresholds from its
// parent this way).
type Record[T any] struct {
	value    T
	modified bool
}

// NewRecord creates a Record holding a default value that has not been
// user-modified.
func NewRecord[T any](value T) Record[T] {
	return Record[T]{value: value}
}

// Get returns the current value.
func (r Record[T]) Get() T {
	return r.value
}

// Modified reports whether Set has ever been called on this record.
func (r Record[T]) Modified() bool {
	return r.modified
}

// Set assigns a new value and marks the record as user-modified.
func (r *Record[T]) Set(value T) {
	r.value = value
	r.modified = true
}

// SetIfNotModified copies other's value into r, but only if r has not
// already been explicitly set. It is a no-op otherwise. This is how a
// child inherits from a parent without clobbering an explicit override.
func (r *Record[T]) SetIfNotModified(other Record[T]) {
	if r.modified {
		return
	}

	r.value = other.value
}

// SetIfNotModifiedFunc is like SetIfNotModified but computes the
// inherited value lazily: supplier is called only when r has not been
// explicitly set, and its result is stored as is.
func (r *Record[T]) SetIfNotModifiedFunc(supplier func() T) {
	if r.modified {
		return
	}

	r.value = supplier()
}
