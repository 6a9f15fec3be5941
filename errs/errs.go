// Package errs defines the sentinel errors returned by the codec, envelope,
// and stream packages. Every error satisfies errors.Is against these
// variables; callers should compare against them rather than parsing
// messages.
package errs

import "errors"

var (
	// ErrCapacityExceeded is returned by a fixed-capacity Encoder
	// (codec.WithFixedCapacity) in secure mode when a write would not fit
	// in its buffer; in fast mode the same condition panics with it.
	ErrCapacityExceeded = errors.New("msgpack: capacity exceeded")

	// ErrIncompleteContainer is returned by Encoder.Reset in secure mode
	// when an array or map is still open. Truncated decoder input is
	// reported as ErrOutOfBounds instead.
	ErrIncompleteContainer = errors.New("msgpack: incomplete container")

	// ErrOddMapCount is returned when EndMap is called after an odd
	// number of Pack calls since the matching StartMap — a map is always
	// key/value pairs.
	ErrOddMapCount = errors.New("msgpack: map closed with an odd element count")

	// ErrSizeOutOfRange is returned when a length or count exceeds the
	// 32-bit wire limit (2^32 - 1), the widest MessagePack header width.
	ErrSizeOutOfRange = errors.New("msgpack: size out of range for wire format")

	// ErrMalformedStream is returned when the decoder encounters a leading
	// byte that classifies as wire.KindInvalid, or other input that cannot
	// be a valid MessagePack stream.
	ErrMalformedStream = errors.New("msgpack: malformed stream")

	// ErrOutOfBounds is returned when a decode operation would read past
	// the end of the input buffer.
	ErrOutOfBounds = errors.New("msgpack: read out of bounds")

	// ErrTypeMismatch is returned when an Unpack call is made against a
	// value whose wire.Kind does not match the requested Go type.
	ErrTypeMismatch = errors.New("msgpack: type mismatch")

	// ErrUnbalancedClose is returned when EndArray or EndMap is called
	// without a matching StartArray or StartMap.
	ErrUnbalancedClose = errors.New("msgpack: unbalanced container close")

	// ErrBadMagic is returned when an envelope or stream header's magic
	// field does not match the expected value, indicating the input is
	// not a framed message produced by this package.
	ErrBadMagic = errors.New("msgpack: bad envelope magic")

	// ErrChecksumMismatch is returned when an unwrapped payload's xxHash64
	// does not match the checksum recorded in its envelope header.
	ErrChecksumMismatch = errors.New("msgpack: checksum mismatch")

	// ErrTruncatedHeader is returned when a buffer is shorter than the
	// fixed envelope header size.
	ErrTruncatedHeader = errors.New("msgpack: truncated envelope header")

	// ErrTruncatedPayload is returned when a buffer's declared payload
	// length exceeds the bytes actually available.
	ErrTruncatedPayload = errors.New("msgpack: truncated envelope payload")

	// ErrIndexOutOfRange is returned by stream.Reader.At when the
	// requested index is outside [0, Len()).
	ErrIndexOutOfRange = errors.New("msgpack: stream index out of range")
)
