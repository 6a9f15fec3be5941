package envelope

import (
	"encoding/binary"

	"github.com/kordwire/msgpack/errs"
	"github.com/kordwire/msgpack/format"
)

// Magic identifies the envelope format and version. It is the first two
// bytes of every framed message and lets Unwrap reject obviously-foreign
// input before it inspects anything else.
const Magic uint16 = 0xEA3C

// HeaderSize is the fixed byte length of an envelope header, always
// preceding the (possibly compressed) payload.
const HeaderSize = 16

const bigEndianFlag uint8 = 1 << 0

// Header is the fixed-size framing section at the start of an envelope.
// It always uses network byte order for its own fields, independent of the
// endianness recorded for the payload in Flags.
type Header struct {
	// Flags holds per-message bits. Bit 0 records whether the payload was
	// produced in big-endian (network) or local-endian mode.
	Flags uint8
	// Compression is the algorithm applied to the payload, or
	// format.CompressionNone if the payload is stored as-is.
	Compression format.CompressionType
	// PayloadLen is the byte length of the payload as stored (after
	// compression, if any).
	PayloadLen uint32
	// Checksum is the xxHash64 of the uncompressed payload.
	Checksum uint64
}

// IsBigEndian reports whether the wrapped payload was encoded in network
// byte order. Callers decoding the unwrapped payload on a different host
// should use this to pick the matching codec.DecoderOption.
func (h Header) IsBigEndian() bool {
	return h.Flags&bigEndianFlag != 0
}

// ParseHeader reads a Header from the first HeaderSize bytes of data
// without touching the payload that follows.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrTruncatedHeader
	}

	if binary.BigEndian.Uint16(data[0:2]) != Magic {
		return Header{}, errs.ErrBadMagic
	}

	h := Header{
		Flags:       data[2],
		Compression: format.CompressionType(data[3]),
		PayloadLen:  binary.BigEndian.Uint32(data[4:8]),
		Checksum:    binary.BigEndian.Uint64(data[8:16]),
	}

	return h, nil
}

// Bytes serializes the Header into a HeaderSize-byte slice.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	binary.BigEndian.PutUint16(b[0:2], Magic)
	b[2] = h.Flags
	b[3] = uint8(h.Compression)
	binary.BigEndian.PutUint32(b[4:8], h.PayloadLen)
	binary.BigEndian.PutUint64(b[8:16], h.Checksum)

	return b
}
