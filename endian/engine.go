// Package endian provides the byte-order engine used by the encoder and decoder.
//
// It extends Go's standard encoding/binary package by combining ByteOrder and
// AppendByteOrder into a single EndianEngine interface, matching the codec
// package's need to both read (decode) and append (encode) multi-byte
// integers, floats, and length prefixes.
//
// # Network vs. local mode
//
// MessagePack's canonical wire form is big-endian ("network order"):
//
//	engine := endian.GetBigEndianEngine()
//
// An encoder/decoder pair that never leaves the producing machine may instead
// use the host's native order:
//
//	engine := endian.GetNativeEngine()
//
// This is an interoperability hazard: a local-mode buffer decoded on a
// different-endian host will misread every multi-byte value. Local mode exists
// purely as a same-host optimisation and is documented as non-interoperable.
//
// # Performance
//
// Using EndianEngine (which includes AppendByteOrder) avoids an intermediate
// allocation compared to ByteOrder alone:
//
//	// Using EndianEngine (recommended)
//	buf = engine.AppendUint64(buf, value)
//
//	// Using ByteOrder only
//	tmp := make([]byte, 8)
//	engine.PutUint64(tmp, value)
//	buf = append(buf, tmp...) // extra allocation
//
// # Thread safety
//
// All functions in this package are safe for concurrent use. The returned
// EndianEngine values are immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface. binary.BigEndian and
// binary.LittleEndian both satisfy it without modification.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	// For a big-endian system, the MSB (0x01) is first.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeBigEndian reports whether the running host is big-endian.
func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// GetBigEndianEngine returns the canonical, interoperable MessagePack byte
// order: network order. Every encoder/decoder should use this unless it has
// an explicit, documented reason for local mode.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetNativeEngine returns the host's native byte order ("local mode").
// Buffers produced with it are only safe to decode on a host with the same
// native order.
func GetNativeEngine() EndianEngine {
	if IsNativeBigEndian() {
		return binary.BigEndian
	}

	return binary.LittleEndian
}
