package wire

// Kind is the canonical value kind a marker byte classifies to. Several
// markers can share a Kind (e.g. Uint8..Uint64 all classify as KindUint);
// the wire width actually present is resolved by the codec package, not here.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindNil
	KindBool
	KindUint
	KindInt
	KindFloat32
	KindFloat64
	KindString
	KindBinary
	KindExt
	KindArray
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindUint:
		return "uint"
	case KindInt:
		return "int"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindString:
		return "string"
	case KindBinary:
		return "binary"
	case KindExt:
		return "ext"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	default:
		return "invalid"
	}
}

// Classify maps a leading byte to its Kind. Fixed-range forms are checked
// first, then the exact-match singleton table; an unrecognized byte (only
// NeverUsed, 0xc1, in a correctly-generated stream) classifies as KindInvalid.
func Classify(b byte) Kind {
	switch {
	case b >= PositiveFixIntMin && b <= PositiveFixIntMax:
		return KindUint
	case b >= FixMapMin && b <= FixMapMax:
		return KindMap
	case b >= FixArrayMin && b <= FixArrayMax:
		return KindArray
	case b >= FixStrMin && b <= FixStrMax:
		return KindString
	case b >= NegativeFixIntMin && b <= NegativeFixIntMax:
		return KindInt
	}

	switch b {
	case Nil:
		return KindNil
	case False, True:
		return KindBool
	case Bin8, Bin16, Bin32:
		return KindBinary
	case Ext8, Ext16, Ext32, FixExt1, FixExt2, FixExt4, FixExt8, FixExt16:
		return KindExt
	case Float32:
		return KindFloat32
	case Float64:
		return KindFloat64
	case Uint8, Uint16, Uint32, Uint64:
		return KindUint
	case Int8, Int16, Int32, Int64:
		return KindInt
	case Str8, Str16, Str32:
		return KindString
	case Array16, Array32:
		return KindArray
	case Map16, Map32:
		return KindMap
	default:
		return KindInvalid
	}
}
