// Package pool provides reusable scratch buffers for the allocating encode path.
package pool

import "sync"

const (
	// StreamBufferDefaultSize covers the worst-case bound of a ~400 bucket
	// 64-bit histogram without growing.
	StreamBufferDefaultSize = 1024 * 4 // 4KiB
	// StreamBufferMaxThreshold is the largest buffer returned to the pool.
	// Worst-case bounds grow with (word size + 1) per bucket, so very wide
	// histograms get a one-off buffer instead of pinning memory in the pool.
	StreamBufferMaxThreshold = 1024 * 256 // 256KiB
)

// ByteBuffer is a growable byte slice handed out by ByteBufferPool.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates an empty ByteBuffer with the given capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the buffer contents.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset truncates the buffer to zero length, keeping its capacity.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Grow ensures at least requiredBytes of spare capacity past the current length.
//
// Small buffers grow by StreamBufferDefaultSize; larger ones by a quarter of
// their capacity, or by exactly requiredBytes when that is more.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := StreamBufferDefaultSize
	if cap(bb.B) > 4*StreamBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Resize sets the buffer length to n, growing the capacity when needed.
// Bytes past the previous length are not cleared.
func (bb *ByteBuffer) Resize(n int) {
	if n < 0 {
		panic("Resize: negative length")
	}

	if n > cap(bb.B) {
		bb.Grow(n - len(bb.B))
	}

	bb.B = bb.B[:n]
}

// ByteBufferPool is a sync.Pool of ByteBuffers with an optional size cap.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose new buffers start at defaultSize.
// Buffers grown beyond maxThreshold are dropped on Put; zero disables the cap.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
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

var streamDefaultPool = NewByteBufferPool(StreamBufferDefaultSize, StreamBufferMaxThreshold)

// GetStreamBuffer retrieves a scratch buffer for encoding a counts stream.
func GetStreamBuffer() *ByteBuffer {
	return streamDefaultPool.Get()
}

// PutStreamBuffer returns a scratch buffer to the default stream pool.
func PutStreamBuffer(bb *ByteBuffer) {
	streamDefaultPool.Put(bb)
}
