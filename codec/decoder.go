package codec

import (
	"math"

	"github.com/kordwire/msgpack/endian"
	"github.com/kordwire/msgpack/errs"
	"github.com/kordwire/msgpack/internal/options"
	"github.com/kordwire/msgpack/wire"
)

// Decoder reads a sequence of typed values out of a borrowed MessagePack
// byte buffer. A Decoder is not safe for concurrent use.
type Decoder struct {
	buf    []byte
	pos    int
	engine endian.EndianEngine
	secure bool
}

// NewDecoder constructs a Decoder over buf. The buffer is borrowed, not
// copied: it must remain valid and unmodified for the lifetime of the
// Decoder and of any binary/ext payloads it has handed out.
func NewDecoder(buf []byte, opts ...DecoderOption) *Decoder {
	cfg := newDecoderConfig()
	options.Apply(cfg, opts...)

	return &Decoder{
		buf:    buf,
		engine: cfg.engine,
		secure: cfg.secure,
	}
}

// Len returns the total length of the borrowed buffer.
func (d *Decoder) Len() int {
	return len(d.buf)
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int {
	return len(d.buf) - d.pos
}

// Reset returns the cursor to the start of the buffer, allowing the same
// bytes to be decoded again.
func (d *Decoder) Reset() {
	d.pos = 0
}

// PeekKind classifies the byte at the current cursor without advancing it.
// It returns wire.KindInvalid if the cursor is at or past the end of the
// buffer, or if the byte is a reserved/unknown marker.
func (d *Decoder) PeekKind() wire.Kind {
	if d.pos >= len(d.buf) {
		return wire.KindInvalid
	}

	return wire.Classify(d.buf[d.pos])
}

func (d *Decoder) peekByte() (byte, error) {
	if d.pos >= len(d.buf) {
		if d.secure {
			return 0, errs.ErrOutOfBounds
		}
		panic(errs.ErrOutOfBounds)
	}

	return d.buf[d.pos], nil
}

// readBytes returns the next n bytes and advances the cursor past them.
func (d *Decoder) readBytes(n int) ([]byte, error) {
	if d.pos+n > len(d.buf) {
		if d.secure {
			return nil, errs.ErrOutOfBounds
		}
		panic(errs.ErrOutOfBounds)
	}

	b := d.buf[d.pos : d.pos+n]
	d.pos += n

	return b, nil
}

// typeMismatch reports why the byte at the cursor didn't satisfy the calling
// Unpack method: ErrMalformedStream for the reserved 0xC1 marker (never a
// valid wire byte), ErrTypeMismatch for any other kind of marker.
func (d *Decoder) typeMismatch(b byte) error {
	err := errs.ErrTypeMismatch
	if b == wire.NeverUsed {
		err = errs.ErrMalformedStream
	}

	if d.secure {
		return err
	}
	panic(err)
}

// UnpackNil consumes the nil marker.
func (d *Decoder) UnpackNil() error {
	b, err := d.peekByte()
	if err != nil {
		return err
	}

	if b != wire.Nil {
		return d.typeMismatch(b)
	}

	d.pos++

	return nil
}

// UnpackBool consumes a bool marker.
func (d *Decoder) UnpackBool() (bool, error) {
	b, err := d.peekByte()
	if err != nil {
		return false, err
	}

	switch b {
	case wire.True:
		d.pos++
		return true, nil
	case wire.False:
		d.pos++
		return false, nil
	default:
		return false, d.typeMismatch(b)
	}
}

// UnpackUint consumes any wire form PackUint could have produced and widens
// the result to uint64.
func (d *Decoder) UnpackUint() (uint64, error) {
	b, err := d.peekByte()
	if err != nil {
		return 0, err
	}

	if b <= wire.PositiveFixIntMax {
		d.pos++
		return uint64(b), nil
	}

	switch b {
	case wire.Uint8:
		d.pos++
		payload, err := d.readBytes(1)
		if err != nil {
			return 0, err
		}
		return uint64(payload[0]), nil
	case wire.Uint16:
		d.pos++
		payload, err := d.readBytes(2)
		if err != nil {
			return 0, err
		}
		return uint64(d.engine.Uint16(payload)), nil
	case wire.Uint32:
		d.pos++
		payload, err := d.readBytes(4)
		if err != nil {
			return 0, err
		}
		return uint64(d.engine.Uint32(payload)), nil
	case wire.Uint64:
		d.pos++
		payload, err := d.readBytes(8)
		if err != nil {
			return 0, err
		}
		return d.engine.Uint64(payload), nil
	default:
		return 0, d.typeMismatch(b)
	}
}

// UnpackInt consumes any wire form PackInt (or PackUint, for non-negative
// values) could have produced and widens the result to int64.
func (d *Decoder) UnpackInt() (int64, error) {
	b, err := d.peekByte()
	if err != nil {
		return 0, err
	}

	if b <= wire.PositiveFixIntMax {
		d.pos++
		return int64(b), nil
	}

	if b >= wire.NegativeFixIntMin {
		d.pos++
		return int64(b&wire.FixIntSignMask) - 32, nil
	}

	switch b {
	case wire.Uint8, wire.Int8:
		d.pos++
		payload, err := d.readBytes(1)
		if err != nil {
			return 0, err
		}
		if b == wire.Int8 {
			return int64(int8(payload[0])), nil
		}
		return int64(payload[0]), nil
	case wire.Uint16, wire.Int16:
		d.pos++
		payload, err := d.readBytes(2)
		if err != nil {
			return 0, err
		}
		v := d.engine.Uint16(payload)
		if b == wire.Int16 {
			return int64(int16(v)), nil
		}
		return int64(v), nil
	case wire.Uint32, wire.Int32:
		d.pos++
		payload, err := d.readBytes(4)
		if err != nil {
			return 0, err
		}
		v := d.engine.Uint32(payload)
		if b == wire.Int32 {
			return int64(int32(v)), nil
		}
		return int64(v), nil
	case wire.Uint64, wire.Int64:
		d.pos++
		payload, err := d.readBytes(8)
		if err != nil {
			return 0, err
		}
		v := d.engine.Uint64(payload)
		if b == wire.Int64 {
			return int64(v), nil
		}
		return int64(v), nil
	default:
		return 0, d.typeMismatch(b)
	}
}

// UnpackFloat32 consumes a float32 marker and bit-casts the payload back to
// an IEEE-754 binary32 value.
func (d *Decoder) UnpackFloat32() (float32, error) {
	b, err := d.peekByte()
	if err != nil {
		return 0, err
	}

	if b != wire.Float32 {
		return 0, d.typeMismatch(b)
	}

	d.pos++
	payload, err := d.readBytes(4)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(d.engine.Uint32(payload)), nil
}

// UnpackFloat64 consumes a float64 marker and bit-casts the payload back to
// an IEEE-754 binary64 value.
func (d *Decoder) UnpackFloat64() (float64, error) {
	b, err := d.peekByte()
	if err != nil {
		return 0, err
	}

	if b != wire.Float64 {
		return 0, d.typeMismatch(b)
	}

	d.pos++
	payload, err := d.readBytes(8)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(d.engine.Uint64(payload)), nil
}

// UnpackString consumes a length-prefixed string and returns an owned copy.
func (d *Decoder) UnpackString() (string, error) {
	payload, err := d.unpackStringOrBinary(true)
	if err != nil {
		return "", err
	}

	return string(payload), nil
}

// UnpackBinary consumes an opaque blob and returns a zero-copy subslice of
// the decoder's input buffer. The returned slice is valid only as long as
// the caller keeps the original input alive.
func (d *Decoder) UnpackBinary() ([]byte, error) {
	return d.unpackStringOrBinary(false)
}

func (d *Decoder) unpackStringOrBinary(wantString bool) ([]byte, error) {
	b, err := d.peekByte()
	if err != nil {
		return nil, err
	}

	var length int

	switch {
	case wantString && b >= wire.FixStrMin && b <= wire.FixStrMax:
		length = int(b & wire.FixStrLenMask)
		d.pos++
	case wantString && b == wire.Str8, !wantString && b == wire.Bin8:
		d.pos++
		lp, err := d.readBytes(1)
		if err != nil {
			return nil, err
		}
		length = int(lp[0])
	case wantString && b == wire.Str16, !wantString && b == wire.Bin16:
		d.pos++
		lp, err := d.readBytes(2)
		if err != nil {
			return nil, err
		}
		length = int(d.engine.Uint16(lp))
	case wantString && b == wire.Str32, !wantString && b == wire.Bin32:
		d.pos++
		lp, err := d.readBytes(4)
		if err != nil {
			return nil, err
		}
		length = int(d.engine.Uint32(lp))
	default:
		return nil, d.typeMismatch(b)
	}

	return d.readBytes(length)
}

// UnpackExt consumes a typed extension record and returns its signed type
// tag and a zero-copy subslice of the payload.
func (d *Decoder) UnpackExt() (int8, []byte, error) {
	b, err := d.peekByte()
	if err != nil {
		return 0, nil, err
	}

	var length int
	switch b {
	case wire.FixExt1, wire.FixExt2, wire.FixExt4, wire.FixExt8, wire.FixExt16:
		length, _ = wire.FixExtLen(b)
		d.pos++
	case wire.Ext8:
		d.pos++
		lp, err := d.readBytes(1)
		if err != nil {
			return 0, nil, err
		}
		length = int(lp[0])
	case wire.Ext16:
		d.pos++
		lp, err := d.readBytes(2)
		if err != nil {
			return 0, nil, err
		}
		length = int(d.engine.Uint16(lp))
	case wire.Ext32:
		d.pos++
		lp, err := d.readBytes(4)
		if err != nil {
			return 0, nil, err
		}
		length = int(d.engine.Uint32(lp))
	default:
		return 0, nil, d.typeMismatch(b)
	}

	typeByte, err := d.readBytes(1)
	if err != nil {
		return 0, nil, err
	}

	payload, err := d.readBytes(length)
	if err != nil {
		return 0, nil, err
	}

	return int8(typeByte[0]), payload, nil
}

// UnpackArray consumes an array header and returns its element count.
func (d *Decoder) UnpackArray() (int, error) {
	return d.unpackContainerHeader(false)
}

// UnpackMap consumes a map header and returns its pair count.
func (d *Decoder) UnpackMap() (int, error) {
	return d.unpackContainerHeader(true)
}

func (d *Decoder) unpackContainerHeader(isMap bool) (int, error) {
	b, err := d.peekByte()
	if err != nil {
		return 0, err
	}

	if isMap && b >= wire.FixMapMin && b <= wire.FixMapMax {
		d.pos++
		return int(b & wire.FixMapCountMask), nil
	}
	if !isMap && b >= wire.FixArrayMin && b <= wire.FixArrayMax {
		d.pos++
		return int(b & wire.FixArrayCountMask), nil
	}

	var width16, width32 byte
	if isMap {
		width16, width32 = wire.Map16, wire.Map32
	} else {
		width16, width32 = wire.Array16, wire.Array32
	}

	switch b {
	case width16:
		d.pos++
		lp, err := d.readBytes(2)
		if err != nil {
			return 0, err
		}
		return int(d.engine.Uint16(lp)), nil
	case width32:
		d.pos++
		lp, err := d.readBytes(4)
		if err != nil {
			return 0, err
		}
		return int(d.engine.Uint32(lp)), nil
	default:
		return 0, d.typeMismatch(b)
	}
}
