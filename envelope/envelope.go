// Package envelope frames a single encoded MessagePack message with a fixed
// 16-byte header carrying a magic number, an endianness flag byte, a
// compression-type byte, the stored payload length, and an xxHash64 checksum of the
// uncompressed payload. Framing lets a message cross a process boundary or
// sit in a file next to other framed messages while still being detectable
// and verifiable before a codec.Decoder ever sees it.
package envelope

import (
	"github.com/kordwire/msgpack/compress"
	"github.com/kordwire/msgpack/errs"
	"github.com/kordwire/msgpack/format"
	"github.com/kordwire/msgpack/internal/hash"
	"github.com/kordwire/msgpack/internal/options"
)

// Wrap frames payload behind a Header, optionally compressing it first. The
// returned slice is HeaderSize+len(stored payload) bytes: the header
// followed directly by the (possibly compressed) payload.
func Wrap(payload []byte, opts ...Option) ([]byte, error) {
	cfg := newConfig()
	options.Apply(cfg, opts...)

	checksum := hash.Checksum(payload)

	body := payload
	if cfg.compression != format.CompressionNone {
		codec, err := compress.GetCodec(cfg.compression)
		if err != nil {
			return nil, err
		}

		compressed, err := codec.Compress(payload)
		if err != nil {
			return nil, err
		}
		body = compressed
	}

	if uint64(len(body)) > uint64(^uint32(0)) {
		return nil, errs.ErrSizeOutOfRange
	}

	var flags uint8
	if cfg.bigEndian {
		flags |= bigEndianFlag
	}

	h := Header{
		Flags:       flags,
		Compression: cfg.compression,
		PayloadLen:  uint32(len(body)),
		Checksum:    checksum,
	}

	out := make([]byte, 0, HeaderSize+len(body))
	out = append(out, h.Bytes()...)
	out = append(out, body...)

	return out, nil
}

// Unwrap validates a framed message's header, decompresses its payload if
// needed, verifies the checksum, and returns the original payload ready to
// feed into codec.NewDecoder.
func Unwrap(framed []byte) ([]byte, error) {
	h, err := ParseHeader(framed)
	if err != nil {
		return nil, err
	}

	body := framed[HeaderSize:]
	if uint64(len(body)) < uint64(h.PayloadLen) {
		return nil, errs.ErrTruncatedPayload
	}
	body = body[:h.PayloadLen]

	payload := body
	if h.Compression != format.CompressionNone {
		codec, err := compress.GetCodec(h.Compression)
		if err != nil {
			return nil, err
		}

		decompressed, err := codec.Decompress(body)
		if err != nil {
			return nil, err
		}
		payload = decompressed
	}

	if hash.Checksum(payload) != h.Checksum {
		return nil, errs.ErrChecksumMismatch
	}

	return payload, nil
}
