// Package pool provides pooled byte buffers for the per-line working
// storage of the delta encoder and decoder.
package pool

import "sync"

const (
	// LineBufferDefaultSize is the initial capacity of a pooled line buffer.
	// Most log lines are well under 4KiB.
	LineBufferDefaultSize = 4 * 1024

	// LineBufferMaxThreshold is the largest buffer capacity the pool will
	// retain. Buffers grown past this (by pathological lines) are dropped
	// instead of pinned in memory.
	LineBufferMaxThreshold = 2 * 1024 * 1024
)

// ByteBuffer is a growable byte buffer with explicit capacity management.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, retaining the allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// AppendByte appends a single byte to the buffer.
func (bb *ByteBuffer) AppendByte(b byte) {
	bb.B = append(bb.B, b)
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating. Growth is amortized: small buffers grow by the default
// size, larger ones by 25% of current capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := LineBufferDefaultSize
	if cap(bb.B) > 4*LineBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// It uses sync.Pool internally. A maximum size threshold avoids retaining
// overly large buffers that would bloat memory across pack operations.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the
// specified default capacity and retention threshold.
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

var lineDefaultPool = NewByteBufferPool(LineBufferDefaultSize, LineBufferMaxThreshold)

// GetLineBuffer retrieves a ByteBuffer from the default line pool.
func GetLineBuffer() *ByteBuffer {
	return lineDefaultPool.Get()
}

// PutLineBuffer returns a ByteBuffer to the default line pool.
func PutLineBuffer(bb *ByteBuffer) {
	lineDefaultPool.Put(bb)
}
