package codec

import (
	"github.com/kordwire/msgpack/endian"
	"github.com/kordwire/msgpack/internal/options"
)

// encoderConfig holds the construction-time choices for an Encoder. It is
// mutated by EncoderOption values and then consumed once by NewEncoder.
type encoderConfig struct {
	engine      endian.EndianEngine
	secure      bool
	growable    bool
	initialSize int
	fixedCap    int
}

func newEncoderConfig() *encoderConfig {
	return &encoderConfig{
		engine:      endian.GetBigEndianEngine(),
		secure:      true,
		growable:    true,
		initialSize: defaultEncoderBufferSize,
	}
}

// EncoderOption configures an Encoder at construction time.
type EncoderOption = options.Option[*encoderConfig]

// WithBigEndian selects network byte order (the canonical MessagePack wire
// form). This is the default.
func WithBigEndian() EncoderOption {
	return func(c *encoderConfig) {
		c.engine = endian.GetBigEndianEngine()
	}
}

// WithLocalEndian selects the host's native byte order ("local mode"). Buffers
// produced this way are only safe to decode on a host with the same native
// byte order; use only for same-machine round trips.
func WithLocalEndian() EncoderOption {
	return func(c *encoderConfig) {
		c.engine = endian.GetNativeEngine()
	}
}

// WithSecureMode toggles run-time validation of state transitions and buffer
// bounds. Secure mode is the default. With it disabled the same checks still
// run, but a failed check panics instead of returning an error.
func WithSecureMode(enabled bool) EncoderOption {
	return func(c *encoderConfig) {
		c.secure = enabled
	}
}

// WithInitialCapacity sets the minimum starting capacity of a growable
// encoder's backing buffer; a pooled buffer that is already larger is kept
// as is. It has no effect when combined with WithFixedCapacity.
func WithInitialCapacity(n int) EncoderOption {
	return func(c *encoderConfig) {
		if n > 0 {
			c.initialSize = n
		}
	}
}

// WithFixedCapacity switches the encoder to a caller-sized inline buffer of
// capacity n that never reallocates. Exceeding n raises ErrCapacityExceeded
// in secure mode (undefined behavior in fast mode).
func WithFixedCapacity(n int) EncoderOption {
	return func(c *encoderConfig) {
		c.growable = false
		c.fixedCap = n
	}
}

// decoderConfig holds the construction-time choices for a Decoder.
type decoderConfig struct {
	engine endian.EndianEngine
	secure bool
}

func newDecoderConfig() *decoderConfig {
	return &decoderConfig{
		engine: endian.GetBigEndianEngine(),
		secure: true,
	}
}

// DecoderOption configures a Decoder at construction time.
type DecoderOption = options.Option[*decoderConfig]

// WithDecoderBigEndian selects network byte order. This is the default.
func WithDecoderBigEndian() DecoderOption {
	return func(c *decoderConfig) {
		c.engine = endian.GetBigEndianEngine()
	}
}

// WithDecoderLocalEndian selects the host's native byte order. It must match
// the mode the encoder used to produce the buffer being decoded.
func WithDecoderLocalEndian() DecoderOption {
	return func(c *decoderConfig) {
		c.engine = endian.GetNativeEngine()
	}
}

// WithDecoderSecureMode toggles run-time bounds and type checking. Secure
// mode is the default.
func WithDecoderSecureMode(enabled bool) DecoderOption {
	return func(c *decoderConfig) {
		c.secure = enabled
	}
}
