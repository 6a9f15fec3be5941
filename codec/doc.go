// Package codec implements the MessagePack streaming encoder and decoder:
// the pair of state machines that turn a linear sequence of typed Pack calls
// into the canonical MessagePack byte form, and back.
//
// Neither side materializes a self-describing tree. The caller drives the
// shape of the data by the sequence and nesting of calls it makes; the codec
// only assigns each value to its narrowest admissible wire encoding and
// tracks open container frames.
//
// See https://github.com/msgpack/msgpack/blob/master/spec.md for the format.
package codec
