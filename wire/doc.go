// Package wire defines the closed set of MessagePack marker bytes, the bit-range
// tables for the fixed-form markers, and the Kind classification derived from them.
//
// Nothing in this package allocates or touches a buffer; it is a pure constant
// table plus the one-byte classification function both the encoder and the
// decoder key off of. See https://github.com/msgpack/msgpack/blob/master/spec.md
// for the format this package mirrors.
package wire
