package wire

// Marker is a single MessagePack leading byte. Fixed-form markers (positive
// fixint, fixmap, fixarray, fixstr, negative fixint) occupy a range of values
// rather than a single byte; see the Min/Max constants below and Classify.
type Marker = byte

// Singleton marker bytes, in the order MessagePack assigns them.
const (
	Nil       Marker = 0xc0
	NeverUsed Marker = 0xc1 // reserved; always malformed
	False     Marker = 0xc2
	True      Marker = 0xc3

	Bin8  Marker = 0xc4
	Bin16 Marker = 0xc5
	Bin32 Marker = 0xc6

	Ext8  Marker = 0xc7
	Ext16 Marker = 0xc8
	Ext32 Marker = 0xc9

	Float32 Marker = 0xca
	Float64 Marker = 0xcb

	Uint8  Marker = 0xcc
	Uint16 Marker = 0xcd
	Uint32 Marker = 0xce
	Uint64 Marker = 0xcf

	Int8  Marker = 0xd0
	Int16 Marker = 0xd1
	Int32 Marker = 0xd2
	Int64 Marker = 0xd3

	FixExt1  Marker = 0xd4
	FixExt2  Marker = 0xd5
	FixExt4  Marker = 0xd6
	FixExt8  Marker = 0xd7
	FixExt16 Marker = 0xd8

	Str8  Marker = 0xd9
	Str16 Marker = 0xda
	Str32 Marker = 0xdb

	Array16 Marker = 0xdc
	Array32 Marker = 0xdd

	Map16 Marker = 0xde
	Map32 Marker = 0xdf
)

// Fixed-form bit ranges: the low bits of the marker byte itself carry the
// payload (a count, a length, or a small signed/unsigned value).
const (
	PositiveFixIntMin Marker = 0x00
	PositiveFixIntMax Marker = 0x7f

	FixMapMin Marker = 0x80
	FixMapMax Marker = 0x8f

	FixArrayMin Marker = 0x90
	FixArrayMax Marker = 0x9f

	FixStrMin Marker = 0xa0
	FixStrMax Marker = 0xbf

	NegativeFixIntMin Marker = 0xe0
	NegativeFixIntMax Marker = 0xff
)

// Canonical MessagePack spec masks (see SPEC_FULL.md §9 — the distilled spec's
// C++ reference used a looser OR/AND-NOT bit-twiddling idiom that produced the
// same numeric result for lengths/counts but did not correctly express the
// negative-fixint sign extension; these masks are used directly instead).
const (
	FixStrLenMask   = 0x1f // b & FixStrLenMask -> fixstr payload length
	FixMapCountMask = 0x0f // b & FixMapCountMask -> fixmap pair count
	FixArrayCountMask = 0x0f // b & FixArrayCountMask -> fixarray element count
	FixIntSignMask  = 0x1f // low 5 bits of a negative fixint, before sign extension
)

// FixExtLen returns the payload length implied by a fixext marker, or 0, false
// if m is not one of the five fixext markers.
func FixExtLen(m Marker) (int, bool) {
	switch m {
	case FixExt1:
		return 1, true
	case FixExt2:
		return 2, true
	case FixExt4:
		return 4, true
	case FixExt8:
		return 8, true
	case FixExt16:
		return 16, true
	default:
		return 0, false
	}
}
