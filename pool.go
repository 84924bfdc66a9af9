package cjknorm

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// lineBuffer holds the scratch space for normalizing a single line.
// Normalization passes append into one slice while reading from another,
// therefore we need three of them: the current state of the line and two
// slices to alternate between during a round.
type lineBuffer struct {
	cur, x, y []rune
}

// Buffers larger than this are not returned into the pool.
const maxPooledRunes = 4096

// Line buffers are short-lived objects. To avoid multiple allocation of
// rune slices we will pool them.
type bufferPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalBufferPool *bufferPool

func init() {
	globalBufferPool = &bufferPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			buf := &lineBuffer{
				cur: make([]rune, 0, 128),
				x:   make([]rune, 0, 128),
				y:   make([]rune, 0, 128),
			}
			return buf, nil
		})
	globalBufferPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalBufferPool.opool = pool.NewObjectPool(globalBufferPool.ctx, factory, config)
}

// borrowBuffer returns a line buffer from the pool.
func borrowBuffer() *lineBuffer {
	o, err := globalBufferPool.opool.BorrowObject(globalBufferPool.ctx)
	if err != nil {
		CT().Errorf("cannot borrow line buffer: %v", err)
		return &lineBuffer{}
	}
	return o.(*lineBuffer)
}

// release clears the buffer and puts it back into the pool.
func (buf *lineBuffer) release() {
	if cap(buf.cur)+cap(buf.x)+cap(buf.y) > 3*maxPooledRunes {
		_ = globalBufferPool.opool.InvalidateObject(globalBufferPool.ctx, buf)
		return
	}
	buf.cur, buf.x, buf.y = buf.cur[:0], buf.x[:0], buf.y[:0]
	_ = globalBufferPool.opool.ReturnObject(globalBufferPool.ctx, buf)
}
