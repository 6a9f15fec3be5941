// Package stream appends independently-produced MessagePack messages
// back-to-back, each framed by the envelope package, and provides random
// access to them by index without re-scanning the whole buffer on every
// read.
package stream

import "github.com/kordwire/msgpack/envelope"

// Writer appends envelope-framed messages to an in-memory buffer.
type Writer struct {
	buf     []byte
	offsets []int
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Append frames payload with envelope.Wrap and appends it to the stream,
// recording its starting byte offset.
func (w *Writer) Append(payload []byte, opts ...envelope.Option) error {
	framed, err := envelope.Wrap(payload, opts...)
	if err != nil {
		return err
	}

	w.offsets = append(w.offsets, len(w.buf))
	w.buf = append(w.buf, framed...)

	return nil
}

// Len returns the number of messages appended so far.
func (w *Writer) Len() int {
	return len(w.offsets)
}

// Bytes returns a borrow of the accumulated stream bytes. The returned
// slice is valid until the next call to Append.
func (w *Writer) Bytes() []byte {
	return w.buf
}
