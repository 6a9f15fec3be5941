package stream

import (
	"iter"

	"github.com/kordwire/msgpack/envelope"
	"github.com/kordwire/msgpack/errs"
)

// Reader provides O(1) random access to the messages in a buffer produced
// by Writer (or any equivalent concatenation of envelope-framed messages).
// It parses each message's header once, up front, to build an offset index,
// and never copies or decompresses a payload it isn't asked for.
type Reader struct {
	buf     []byte
	offsets []int
}

// NewReader walks buf once, recording the starting offset of each
// envelope-framed message, and returns a Reader ready for random access.
func NewReader(buf []byte) (*Reader, error) {
	var offsets []int

	pos := 0
	for pos < len(buf) {
		h, err := envelope.ParseHeader(buf[pos:])
		if err != nil {
			return nil, err
		}

		offsets = append(offsets, pos)
		pos += envelope.HeaderSize + int(h.PayloadLen)
	}

	return &Reader{buf: buf, offsets: offsets}, nil
}

// Len returns the number of messages in the stream.
func (r *Reader) Len() int {
	return len(r.offsets)
}

// At returns the i'th message's payload, unwrapped and, if applicable,
// decompressed and checksum-verified. It runs in O(1): no preceding message
// is decoded or skipped over.
func (r *Reader) At(i int) ([]byte, error) {
	if i < 0 || i >= len(r.offsets) {
		return nil, errs.ErrIndexOutOfRange
	}

	return envelope.Unwrap(r.buf[r.offsets[i]:])
}

// All returns a sequential iterator over the stream's messages in append
// order, yielding each index paired with its unwrapped payload.
func (r *Reader) All() iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		for i := range r.offsets {
			payload, err := r.At(i)
			if err != nil {
				return
			}
			if !yield(i, payload) {
				return
			}
		}
	}
}
