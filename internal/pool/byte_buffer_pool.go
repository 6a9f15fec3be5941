// Package pool provides the pooled, amortized-growth byte buffer backing a
// growable codec.Encoder. Only the operations an Encoder actually performs
// are exposed: appending to the end via the exported B field, querying
// length/capacity, pre-growing, and resetting for pool reuse. An Encoder's
// buffer is a short-lived, per-encode scratch object acquired and released
// many times over a process's lifetime, which is exactly the access pattern
// sync.Pool amortizes; a stream's accumulated byte range, by contrast, is
// owned by the caller for as long as the stream exists, so it is never
// returned and pooling it would never pay off — stream.Writer grows its own
// slice directly instead of borrowing from this pool.
package pool

import "sync"

// EncoderBufferDefaultSize is the default capacity of a freshly pooled
// Encoder buffer, sized for a single typical encoded message.
// EncoderBufferMaxThreshold is the capacity above which a returned buffer is
// discarded instead of pooled, so one outsized message doesn't pin down
// megabytes of memory for every future Encoder that happens to draw it from
// the pool.
const (
	EncoderBufferDefaultSize  = 1024 * 16  // 16KiB
	EncoderBufferMaxThreshold = 1024 * 128 // 128KiB
)

// ByteBuffer is a reusable growable byte slice.
type ByteBuffer struct {
	// B is the underlying byte slice; callers append to it directly.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the given starting capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the buffer's current contents. The slice is a borrow: it is
// invalidated by the next Grow-triggered reallocation or Reset.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but retains its backing array for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the number of bytes currently held.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the buffer's current capacity.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Grow ensures the buffer can accept requiredBytes more bytes without a
// further reallocation. If there's already enough spare capacity, Grow does
// nothing.
//
// Growth strategy: buffers under 4x the default size grow by exactly
// EncoderBufferDefaultSize, absorbing the next several Pack calls in one
// reallocation; beyond that, growth is 25% of current capacity, trading
// fewer reallocations against not over-committing memory to one oversized
// message.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := EncoderBufferDefaultSize
	if cap(bb.B) > 4*EncoderBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool is a sync.Pool of ByteBuffers, with a capacity ceiling above
// which a returned buffer is discarded rather than retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose fresh buffers start at defaultSize;
// a returned buffer whose capacity exceeds maxThreshold is dropped instead
// of pooled. maxThreshold of 0 means no ceiling.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool, allocating a fresh one if empty.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put resets bb and returns it to the pool, unless its capacity exceeds
// maxThreshold, in which case it is discarded to bound memory growth.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var encoderBufferPool = NewByteBufferPool(EncoderBufferDefaultSize, EncoderBufferMaxThreshold)

// GetMessageBuffer retrieves a ByteBuffer from the default Encoder pool.
func GetMessageBuffer() *ByteBuffer {
	return encoderBufferPool.Get()
}

// PutMessageBuffer returns a ByteBuffer to the default Encoder pool.
func PutMessageBuffer(bb *ByteBuffer) {
	encoderBufferPool.Put(bb)
}
