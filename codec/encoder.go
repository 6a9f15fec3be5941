package codec

import (
	"math"

	"github.com/kordwire/msgpack/endian"
	"github.com/kordwire/msgpack/errs"
	"github.com/kordwire/msgpack/internal/options"
	"github.com/kordwire/msgpack/internal/pool"
	"github.com/kordwire/msgpack/wire"
)

// defaultEncoderBufferSize is the starting capacity for a fresh growable
// Encoder, matching the pool's own default so acquiring a pooled buffer
// never triggers an immediate reallocation for a typical small message.
const defaultEncoderBufferSize = pool.EncoderBufferDefaultSize

// frame tracks one open array or map: the absolute offset of its reserved
// header byte and the number of child wire values appended since it opened.
type frame struct {
	offset int
	count  int
	isMap  bool
}

// Encoder assembles a MessagePack byte stream from a sequence of typed Pack
// calls. An Encoder is not safe for concurrent use; each goroutine should own
// its own instance.
type Encoder struct {
	buf    *pool.ByteBuffer
	pooled bool
	fixed  bool
	engine endian.EndianEngine
	secure bool
	frames []frame
}

// NewEncoder constructs an Encoder. By default it uses network byte order,
// secure-mode validation, and a growable pooled buffer; pass options to
// change any of these.
func NewEncoder(opts ...EncoderOption) *Encoder {
	cfg := newEncoderConfig()
	options.Apply(cfg, opts...)

	e := &Encoder{
		engine: cfg.engine,
		secure: cfg.secure,
	}

	if cfg.growable {
		e.buf = pool.GetMessageBuffer()
		e.pooled = true
		if cfg.initialSize > e.buf.Cap() {
			e.buf.Grow(cfg.initialSize - e.buf.Len())
		}
	} else {
		e.buf = pool.NewByteBuffer(cfg.fixedCap)
		e.fixed = true
	}

	return e
}

// Len returns the number of bytes written so far.
func (e *Encoder) Len() int {
	return e.buf.Len()
}

// Bytes returns a borrow of the encoded byte range. The returned slice is
// valid until the next mutating call or Reset.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// IsBigEndian reports whether the encoder is writing multi-byte values in
// network byte order, as opposed to the host's native order under
// WithLocalEndian.
func (e *Encoder) IsBigEndian() bool {
	return e.engine == endian.GetBigEndianEngine()
}

// Reset returns the encoder to empty. For a pooled growable encoder, the
// backing buffer is returned to the pool and a fresh one is acquired. In
// secure mode, Reset with open container frames returns
// ErrIncompleteContainer without discarding the buffered bytes; in fast
// mode the open frames are discarded along with the bytes, without error.
func (e *Encoder) Reset() error {
	if e.secure && len(e.frames) > 0 {
		return errs.ErrIncompleteContainer
	}

	e.frames = e.frames[:0]

	if e.pooled {
		pool.PutMessageBuffer(e.buf)
		e.buf = pool.GetMessageBuffer()
	} else {
		e.buf.Reset()
	}

	return nil
}

// grow reserves n more bytes of capacity, honoring fixed-vs-growable mode.
func (e *Encoder) grow(n int) error {
	if e.fixed {
		if e.buf.Cap()-e.buf.Len() < n {
			if e.secure {
				return errs.ErrCapacityExceeded
			}
			panic(errs.ErrCapacityExceeded)
		}

		return nil
	}

	e.buf.Grow(n)

	return nil
}

// appendByte appends a single byte, bumping the current frame's child count.
func (e *Encoder) appendByte(b byte) error {
	if err := e.grow(1); err != nil {
		return err
	}

	e.buf.B = append(e.buf.B, b)
	e.touchFrame()

	return nil
}

// touchFrame increments the innermost open frame's item count, if any.
func (e *Encoder) touchFrame() {
	if n := len(e.frames); n > 0 {
		e.frames[n-1].count++
	}
}

// PackNil writes the nil marker.
func (e *Encoder) PackNil() error {
	return e.appendByte(wire.Nil)
}

// PackBool writes the true or false marker.
func (e *Encoder) PackBool(b bool) error {
	if b {
		return e.appendByte(wire.True)
	}

	return e.appendByte(wire.False)
}

// PackUint writes v using the narrowest admissible unsigned wire form.
func (e *Encoder) PackUint(v uint64) error {
	switch {
	case v <= 0x7f:
		return e.appendByte(byte(v))
	case v <= 0xff:
		return e.appendHeaderAndBytes(wire.Uint8, []byte{byte(v)})
	case v <= 0xffff:
		return e.appendWidth(wire.Uint16, v, 2)
	case v <= 0xffffffff:
		return e.appendWidth(wire.Uint32, v, 4)
	default:
		return e.appendWidth(wire.Uint64, v, 8)
	}
}

// PackInt writes v using the narrowest admissible signed wire form. Unlike
// PackUint, a non-negative v never takes the positive-fixint shortcut here:
// only -32 ≤ v < 0 gets a fixint; every other value, positive or negative,
// is classified purely by which signed width it fits (int8/16/32/64).
func (e *Encoder) PackInt(v int64) error {
	switch {
	case v >= -32 && v < 0:
		// 5-bit negative fixint: top 3 bits 111, low 5 bits the two's
		// complement value.
		return e.appendByte(byte(0xe0 | (v & 0x1f)))
	case v >= math.MinInt8 && v <= math.MaxInt8:
		return e.appendHeaderAndBytes(wire.Int8, []byte{byte(int8(v))})
	case v >= math.MinInt16 && v <= math.MaxInt16:
		return e.appendWidth(wire.Int16, uint64(uint16(int16(v))), 2)
	case v >= math.MinInt32 && v <= math.MaxInt32:
		return e.appendWidth(wire.Int32, uint64(uint32(int32(v))), 4)
	default:
		return e.appendWidth(wire.Int64, uint64(v), 8)
	}
}

// PackFloat32 writes v as an IEEE-754 binary32, bit-cast (never arithmetically
// converted).
func (e *Encoder) PackFloat32(v float32) error {
	return e.appendWidth(wire.Float32, uint64(math.Float32bits(v)), 4)
}

// PackFloat64 writes v as an IEEE-754 binary64, bit-cast.
func (e *Encoder) PackFloat64(v float64) error {
	return e.appendWidth(wire.Float64, math.Float64bits(v), 8)
}

// appendHeaderAndBytes appends a marker byte followed by a fixed payload.
func (e *Encoder) appendHeaderAndBytes(marker byte, payload []byte) error {
	if err := e.grow(1 + len(payload)); err != nil {
		return err
	}

	e.buf.B = append(e.buf.B, marker)
	e.buf.B = append(e.buf.B, payload...)
	e.touchFrame()

	return nil
}

// appendWidth appends marker followed by the low width bytes of v in the
// encoder's configured byte order.
func (e *Encoder) appendWidth(marker byte, v uint64, width int) error {
	if err := e.grow(1 + width); err != nil {
		return err
	}

	e.buf.B = append(e.buf.B, marker)

	start := e.buf.Len()
	e.buf.B = e.buf.B[:start+width]

	switch width {
	case 2:
		e.engine.PutUint16(e.buf.B[start:start+2], uint16(v))
	case 4:
		e.engine.PutUint32(e.buf.B[start:start+4], uint32(v))
	case 8:
		e.engine.PutUint64(e.buf.B[start:start+8], v)
	}

	e.touchFrame()

	return nil
}

// PackString writes s using the narrowest admissible length-prefixed form.
// The length written is len(s) exactly; the payload is never NUL-terminated.
func (e *Encoder) PackString(s string) error {
	n := len(s)

	var err error
	switch {
	case n <= 31:
		err = e.appendHeaderAndBytes(0xa0|byte(n), []byte(s))
	case n <= 0xff:
		err = e.appendLengthPrefixed(wire.Str8, uint64(n), 1, []byte(s))
	case n <= 0xffff:
		err = e.appendLengthPrefixed(wire.Str16, uint64(n), 2, []byte(s))
	case uint64(n) <= 0xffffffff:
		err = e.appendLengthPrefixed(wire.Str32, uint64(n), 4, []byte(s))
	default:
		return errs.ErrSizeOutOfRange
	}

	return err
}

// PackBinary writes b as an opaque blob using the narrowest bin form.
func (e *Encoder) PackBinary(b []byte) error {
	n := len(b)

	switch {
	case n <= 0xff:
		return e.appendLengthPrefixed(wire.Bin8, uint64(n), 1, b)
	case n <= 0xffff:
		return e.appendLengthPrefixed(wire.Bin16, uint64(n), 2, b)
	case uint64(n) <= 0xffffffff:
		return e.appendLengthPrefixed(wire.Bin32, uint64(n), 4, b)
	default:
		return errs.ErrSizeOutOfRange
	}
}

// PackExt writes a typed extension record: typ is the signed 8-bit ext type
// tag defined by the canonical MessagePack spec, data is the opaque payload.
func (e *Encoder) PackExt(typ int8, data []byte) error {
	n := len(data)

	switch n {
	case 1:
		return e.appendExtHeaderAndBytes(wire.FixExt1, typ, data)
	case 2:
		return e.appendExtHeaderAndBytes(wire.FixExt2, typ, data)
	case 4:
		return e.appendExtHeaderAndBytes(wire.FixExt4, typ, data)
	case 8:
		return e.appendExtHeaderAndBytes(wire.FixExt8, typ, data)
	case 16:
		return e.appendExtHeaderAndBytes(wire.FixExt16, typ, data)
	}

	switch {
	case n <= 0xff:
		return e.appendExtLengthPrefixed(wire.Ext8, uint64(n), 1, typ, data)
	case n <= 0xffff:
		return e.appendExtLengthPrefixed(wire.Ext16, uint64(n), 2, typ, data)
	case uint64(n) <= 0xffffffff:
		return e.appendExtLengthPrefixed(wire.Ext32, uint64(n), 4, typ, data)
	default:
		return errs.ErrSizeOutOfRange
	}
}

func (e *Encoder) appendExtHeaderAndBytes(marker byte, typ int8, data []byte) error {
	if err := e.grow(2 + len(data)); err != nil {
		return err
	}

	e.buf.B = append(e.buf.B, marker, byte(typ))
	e.buf.B = append(e.buf.B, data...)
	e.touchFrame()

	return nil
}

func (e *Encoder) appendExtLengthPrefixed(marker byte, length uint64, width int, typ int8, data []byte) error {
	if err := e.grow(1 + width + 1 + len(data)); err != nil {
		return err
	}

	e.buf.B = append(e.buf.B, marker)

	start := e.buf.Len()
	e.buf.B = e.buf.B[:start+width]
	putWidth(e.engine, e.buf.B[start:start+width], length, width)

	e.buf.B = append(e.buf.B, byte(typ))
	e.buf.B = append(e.buf.B, data...)
	e.touchFrame()

	return nil
}

// appendLengthPrefixed writes marker, a width-byte big/local-endian length,
// then payload.
func (e *Encoder) appendLengthPrefixed(marker byte, length uint64, width int, payload []byte) error {
	if err := e.grow(1 + width + len(payload)); err != nil {
		return err
	}

	e.buf.B = append(e.buf.B, marker)

	start := e.buf.Len()
	e.buf.B = e.buf.B[:start+width]
	putWidth(e.engine, e.buf.B[start:start+width], length, width)

	e.buf.B = append(e.buf.B, payload...)
	e.touchFrame()

	return nil
}

func putWidth(engine endian.EndianEngine, dst []byte, v uint64, width int) {
	switch width {
	case 1:
		dst[0] = byte(v)
	case 2:
		engine.PutUint16(dst, uint16(v))
	case 4:
		engine.PutUint32(dst, uint32(v))
	}
}

// StartArray opens a new array container, reserving a one-byte placeholder
// header at the current cursor.
func (e *Encoder) StartArray() error {
	return e.startContainer(false)
}

// StartMap opens a new map container.
func (e *Encoder) StartMap() error {
	return e.startContainer(true)
}

func (e *Encoder) startContainer(isMap bool) error {
	if err := e.grow(1); err != nil {
		return err
	}

	offset := e.buf.Len()
	e.buf.B = append(e.buf.B, 0) // placeholder, overwritten by EndArray/EndMap

	e.touchFrame()
	e.frames = append(e.frames, frame{offset: offset, isMap: isMap})

	return nil
}

// EndArray closes the most recently opened array, splicing in the final
// header form chosen by its child count.
func (e *Encoder) EndArray() error {
	return e.endContainer(false)
}

// EndMap closes the most recently opened map. The frame's child count must be
// even (each pair contributes a key and a value); the wire element count is
// count/2.
func (e *Encoder) EndMap() error {
	return e.endContainer(true)
}

func (e *Encoder) endContainer(isMap bool) error {
	if len(e.frames) == 0 {
		if e.secure {
			return errs.ErrUnbalancedClose
		}
		panic(errs.ErrUnbalancedClose)
	}

	top := e.frames[len(e.frames)-1]
	if top.isMap != isMap {
		if e.secure {
			return errs.ErrUnbalancedClose
		}
		panic(errs.ErrUnbalancedClose)
	}

	e.frames = e.frames[:len(e.frames)-1]

	count := top.count
	if isMap {
		if count%2 != 0 {
			if e.secure {
				return errs.ErrOddMapCount
			}
			panic(errs.ErrOddMapCount)
		}
		count /= 2
	}

	return e.writeContainerHeader(top.offset, count, isMap)
}

// writeContainerHeader selects the narrowest header form for count and
// splices it into the single placeholder byte reserved at offset. Splicing
// beyond one byte physically inserts the extra bytes and shifts every byte
// after offset, then corrects every outer open frame whose offset lies past
// the insertion point.
func (e *Encoder) writeContainerHeader(offset int, count int, isMap bool) error {
	var marker byte
	var extra int // additional bytes beyond the one already reserved

	switch {
	case isMap && count <= 0x0f:
		marker = 0x80 | byte(count)
	case !isMap && count <= 0x0f:
		marker = 0x90 | byte(count)
	case count <= 0xffff:
		if isMap {
			marker = wire.Map16
		} else {
			marker = wire.Array16
		}
		extra = 2
	case uint64(count) <= 0xffffffff:
		if isMap {
			marker = wire.Map32
		} else {
			marker = wire.Array32
		}
		extra = 4
	default:
		return errs.ErrSizeOutOfRange
	}

	if extra > 0 {
		if err := e.spliceInsert(offset+1, extra); err != nil {
			return err
		}
	}

	e.buf.B[offset] = marker

	if extra > 0 {
		widthBytes := e.buf.B[offset+1 : offset+1+extra]
		putWidth(e.engine, widthBytes, uint64(count), extra)
	}

	return nil
}

// spliceInsert grows the buffer by n bytes and shifts every byte at or after
// at to the right by n, making room for a wider header. It then fixes up
// every still-open outer frame whose offset is past the insertion point.
func (e *Encoder) spliceInsert(at int, n int) error {
	if err := e.grow(n); err != nil {
		return err
	}

	oldLen := e.buf.Len()
	e.buf.B = e.buf.B[:oldLen+n]
	copy(e.buf.B[at+n:oldLen+n], e.buf.B[at:oldLen])

	for i := range e.frames {
		if e.frames[i].offset >= at {
			e.frames[i].offset += n
		}
	}

	return nil
}
