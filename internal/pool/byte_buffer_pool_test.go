package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 1024, bb.Cap())
}

func TestByteBuffer_BytesIsSameBackingArray(t *testing.T) {
	bb := NewByteBuffer(EncoderBufferDefaultSize)
	bb.B = append(bb.B, "hello"...)

	got := bb.Bytes()
	assert.Equal(t, []byte("hello"), got)
	assert.True(t, &bb.B[0] == &got[0])
}

func TestByteBuffer_ResetPreservesCapacity(t *testing.T) {
	bb := NewByteBuffer(EncoderBufferDefaultSize)
	bb.B = append(bb.B, "some data"...)
	originalCap := bb.Cap()

	bb.Reset()

	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, originalCap, bb.Cap())
}

func TestByteBuffer_Grow_SufficientCapacityIsNoop(t *testing.T) {
	bb := NewByteBuffer(EncoderBufferDefaultSize)
	originalCap := bb.Cap()

	bb.Grow(100)

	assert.Equal(t, originalCap, bb.Cap())
}

func TestByteBuffer_Grow_SmallBufferGrowsByDefaultStep(t *testing.T) {
	bb := NewByteBuffer(EncoderBufferDefaultSize)
	bb.B = bb.B[:EncoderBufferDefaultSize]

	bb.Grow(1024)

	assert.GreaterOrEqual(t, bb.Cap(), EncoderBufferDefaultSize+1024)
	assert.Equal(t, EncoderBufferDefaultSize, bb.Len(), "Grow must not change the logical length")
}

func TestByteBuffer_Grow_LargeBufferGrowsByQuarter(t *testing.T) {
	bb := NewByteBuffer(EncoderBufferDefaultSize)
	largeSize := 4*EncoderBufferDefaultSize + 1024
	bb.B = make([]byte, largeSize)

	bb.Grow(2048)

	assert.GreaterOrEqual(t, bb.Cap(), largeSize+2048)
}

func TestByteBuffer_Grow_RequestLargerThanDefaultStep(t *testing.T) {
	bb := NewByteBuffer(EncoderBufferDefaultSize)
	bb.B = bb.B[:EncoderBufferDefaultSize]

	huge := EncoderBufferDefaultSize * 10
	bb.Grow(huge)

	assert.GreaterOrEqual(t, bb.Cap(), EncoderBufferDefaultSize+huge)
}

func TestByteBuffer_Grow_PreservesExistingData(t *testing.T) {
	bb := NewByteBuffer(EncoderBufferDefaultSize)
	testData := []byte("important data that must be preserved")
	bb.B = append(bb.B, testData...)

	bb.Grow(EncoderBufferDefaultSize * 2)

	assert.Equal(t, testData, bb.B)
}

func TestGetMessageBuffer_StartsEmptyAtDefaultCapacity(t *testing.T) {
	bb := GetMessageBuffer()

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.GreaterOrEqual(t, bb.Cap(), EncoderBufferDefaultSize)
}

func TestPutMessageBuffer_NilIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		PutMessageBuffer(nil)
	})
}

func TestPutMessageBuffer_ResetsBeforeReuse(t *testing.T) {
	bb := GetMessageBuffer()
	bb.B = append(bb.B, "sensitive data"...)

	PutMessageBuffer(bb)

	assert.Equal(t, 0, bb.Len(), "PutMessageBuffer must reset before returning to the pool")
}

func TestByteBufferPool_DiscardsOversizedBuffers(t *testing.T) {
	p := NewByteBufferPool(1024, 4096)

	bb := p.Get()
	bb.Grow(10000)
	require.Greater(t, bb.Cap(), 4096)

	p.Put(bb)

	bb2 := p.Get()
	assert.LessOrEqual(t, bb2.Cap(), 4096*2, "an oversized buffer must not be handed back out")
}

func TestByteBufferPool_ZeroThresholdMeansNoCeiling(t *testing.T) {
	p := NewByteBufferPool(1024, 0)

	bb := p.Get()
	bb.Grow(1024 * 1024)
	p.Put(bb)

	bb2 := p.Get()
	require.NotNil(t, bb2)
}

func TestByteBufferPool_ConcurrentGetPut(t *testing.T) {
	const goroutines = 50
	const iterations = 200

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for range goroutines {
		go func() {
			defer wg.Done()
			for range iterations {
				bb := GetMessageBuffer()
				bb.B = append(bb.B, "data"...)
				assert.Equal(t, 4, bb.Len())
				PutMessageBuffer(bb)
			}
		}()
	}

	wg.Wait()
}
