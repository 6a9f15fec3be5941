// Package msgpack provides a streaming MessagePack encoder and decoder, plus
// optional framing for sending or storing encoded messages outside a single
// in-memory round trip.
//
// # Core Features
//
//   - Full MessagePack coverage: nil, bool, integers, floats, strings,
//     binary, typed extensions, arrays, and maps
//   - Narrowest-form encoding chosen automatically for every value
//   - Deferred container headers: array/map length never needs to be known
//     up front
//   - Network (big-endian) or local (host-native) byte order per encoder/
//     decoder instance
//   - Secure mode (validated errors) or fast mode (panics, for
//     release-trusted-input builds)
//   - Optional single-message framing (package envelope) and multi-message
//     streams with O(1) random access (package stream)
//
// # Basic Usage
//
// Encoding a value:
//
//	import "github.com/kordwire/msgpack"
//
//	enc := msgpack.NewEncoder()
//	enc.StartMap()
//	enc.PackString("name")
//	enc.PackString("gopher")
//	enc.PackString("age")
//	enc.PackUint(11)
//	enc.EndMap()
//	data := enc.Bytes()
//
// Decoding it back:
//
//	dec := msgpack.NewDecoder(data)
//	n, _ := dec.UnpackMap()
//	for i := 0; i < n; i++ {
//	    key, _ := dec.UnpackString()
//	    switch key {
//	    case "name":
//	        name, _ := dec.UnpackString()
//	    case "age":
//	        age, _ := dec.UnpackUint()
//	    }
//	}
//
// # Package Structure
//
// This package re-exports the most commonly used constructors from codec,
// so typical callers never need to import it directly. For advanced
// configuration (fixed-capacity buffers, fast mode, local endianness) use
// the codec package's options directly. The envelope and stream packages
// build on top of codec for message framing and multi-message storage.
package msgpack

import "github.com/kordwire/msgpack/codec"

// Encoder is an alias for codec.Encoder, re-exported for convenience.
type Encoder = codec.Encoder

// Decoder is an alias for codec.Decoder, re-exported for convenience.
type Decoder = codec.Decoder

// EncoderOption is an alias for codec.EncoderOption.
type EncoderOption = codec.EncoderOption

// DecoderOption is an alias for codec.DecoderOption.
type DecoderOption = codec.DecoderOption

// NewEncoder creates an Encoder with network byte order and secure mode by
// default; see codec.EncoderOption for customization.
func NewEncoder(opts ...EncoderOption) *Encoder {
	return codec.NewEncoder(opts...)
}

// NewDecoder creates a Decoder over buf with network byte order and secure
// mode by default; see codec.DecoderOption for customization.
func NewDecoder(buf []byte, opts ...DecoderOption) *Decoder {
	return codec.NewDecoder(buf, opts...)
}
