// Package options implements a minimal functional-options pattern for
// construction-time configuration of codec and envelope values (stream
// passes envelope options through).
//
// Every option in this module mutates construction-time state that cannot
// fail to apply (an endianness choice, a boolean flag, a buffer size, a
// compression algorithm tag) — unlike a general-purpose options package,
// there is no error-returning option variant here, since nothing in the
// codec/envelope/stream configuration surface has a validation step that
// runs before the value is used.
package options

// Option mutates a configuration value of type T. WithXxx constructors
// in codec and envelope return these directly as closures.
type Option[T any] func(T)

// Apply runs every opt against target in order, letting later options
// override earlier ones.
func Apply[T any](target T, opts ...Option[T]) {
	for _, opt := range opts {
		opt(target)
	}
}
