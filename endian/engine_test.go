package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	require := require.New(t)

	result := CheckEndianness()

	var testValue uint16 = 0x0102
	testBytes := (*[2]byte)(unsafe.Pointer(&testValue))

	switch testBytes[0] {
	case 0x01:
		require.Equal(binary.BigEndian, result, "CheckEndianness() should return BigEndian")
	case 0x02:
		require.Equal(binary.LittleEndian, result, "CheckEndianness() should return LittleEndian")
	default:
		require.Failf("Unexpected byte value", "got: %v", testBytes[0])
	}
}

func TestCheckEndiannessConsistency(t *testing.T) {
	first := CheckEndianness()
	for i := range 100 {
		result := CheckEndianness()
		if result != first {
			t.Errorf("CheckEndianness() returned inconsistent results: first=%v, iteration %d=%v", first, i, result)
		}
	}
}

func TestIsNativeBigEndian(t *testing.T) {
	result := IsNativeBigEndian()
	expected := CheckEndianness() == binary.BigEndian
	require.Equal(t, expected, result)

	for range 10 {
		require.Equal(t, result, IsNativeBigEndian())
	}
}

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()

	require.Implements(t, (*EndianEngine)(nil), engine)
	require.Equal(t, binary.BigEndian, engine)

	var testValue uint16 = 0x0102
	bytes := make([]byte, 2)
	engine.PutUint16(bytes, testValue)
	require.Equal(t, byte(0x01), bytes[0], "Big endian should put MSB first")
	require.Equal(t, byte(0x02), bytes[1], "Big endian should put LSB second")

	require.Equal(t, testValue, engine.Uint16(bytes))
}

func TestGetNativeEngine(t *testing.T) {
	engine := GetNativeEngine()

	require.Implements(t, (*EndianEngine)(nil), engine)
	if IsNativeBigEndian() {
		require.Equal(t, binary.BigEndian, engine)
	} else {
		require.Equal(t, binary.LittleEndian, engine)
	}
}

func TestEndianEngineAppend(t *testing.T) {
	engine := GetBigEndianEngine()

	var testUint64 uint64 = 0x0102030405060708
	buf := engine.AppendUint64(nil, testUint64)
	require.Len(t, buf, 8)
	require.Equal(t, testUint64, engine.Uint64(buf))
	require.Equal(t, byte(0x01), buf[0])
	require.Equal(t, byte(0x08), buf[7])
}
