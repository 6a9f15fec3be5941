package envelope

import (
	"github.com/kordwire/msgpack/format"
	"github.com/kordwire/msgpack/internal/options"
)

// config holds the construction-time choices for Wrap.
type config struct {
	bigEndian   bool
	compression format.CompressionType
}

func newConfig() *config {
	return &config{
		bigEndian:   true,
		compression: format.CompressionNone,
	}
}

// Option configures how Wrap frames a payload.
type Option = options.Option[*config]

// WithCompression applies the given algorithm to the payload before
// framing. The default is format.CompressionNone.
func WithCompression(c format.CompressionType) Option {
	return func(cfg *config) {
		cfg.compression = c
	}
}

// WithLocalEndianPayload records the payload as having been produced in the
// host's native byte order rather than network byte order. This flag is
// informational only: Wrap does not re-encode the payload, it only marks
// Header.Flags so a remote reader knows whether the payload is safe to
// decode on a different host.
func WithLocalEndianPayload() Option {
	return func(cfg *config) {
		cfg.bigEndian = false
	}
}
