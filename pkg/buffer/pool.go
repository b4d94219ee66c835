// Package buffer provides a size-classed byte buffer pool for the
// serialization scratch space used on the record persistence path.
package buffer

import (
	"math/bits"
	"sync"
)

// Pool hands out reusable byte buffers bucketed by power-of-two size
// classes. Requests above the largest class fall back to plain
// allocation.
type Pool struct {
	pools map[int]*sync.Pool
}

var globalPool = NewPool()

// NewPool creates a pool with classes from 64 bytes to 4 KiB, sized for
// account records and instruction payloads.
func NewPool() *Pool {
	p := &Pool{
		pools: make(map[int]*sync.Pool),
	}

	for _, size := range []int{64, 128, 256, 1024, 4 * 1024} {
		poolSize := size
		p.pools[size] = &sync.Pool{
			New: func() interface{} {
				buf := make([]byte, poolSize)
				return &buf
			},
		}
	}

	return p
}

// Get returns a buffer of exactly size bytes, backed by the smallest
// class that fits.
func (p *Pool) Get(size int) []byte {
	if size <= 0 {
		return nil
	}

	poolSize := nextPowerOfTwo(size)
	pool, ok := p.pools[poolSize]
	if !ok {
		return make([]byte, size)
	}

	bufPtr := pool.Get().(*[]byte)
	buf := *bufPtr
	return buf[:size]
}

// Put zeroes the buffer and returns it to its class. Buffers that did
// not come from a class are dropped.
func (p *Pool) Put(buf []byte) {
	if buf == nil || cap(buf) == 0 {
		return
	}

	pool, ok := p.pools[cap(buf)]
	if !ok {
		return
	}

	buf = buf[:cap(buf)]
	for i := range buf {
		buf[i] = 0
	}

	pool.Put(&buf)
}

func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 0
	}
	if n&(n-1) == 0 {
		return n
	}
	return 1 << bits.Len(uint(n))
}

// GetBuffer returns a buffer from the shared pool.
func GetBuffer(size int) []byte {
	return globalPool.Get(size)
}

// PutBuffer returns a buffer to the shared pool.
func PutBuffer(buf []byte) {
	globalPool.Put(buf)
}
