package hgpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinaryHeapOrdersByKey(t *testing.T) {
	h := newBinaryHeap()
	h.insert(1, 5)
	h.insert(2, 1)
	h.insert(3, 3)

	var order []int64
	for !h.isEmpty() {
		order = append(order, h.remove())
	}
	assert.Equal(t, []int64{2, 3, 1}, order)
}

func TestBinaryHeapDecreaseKeyReorders(t *testing.T) {
	h := newBinaryHeap()
	h.insert(1, 10)
	h.insert(2, 20)
	h.update(2, 1)

	assert.Equal(t, int64(2), h.remove())
	assert.Equal(t, int64(1), h.remove())
}

func TestBinaryHeapUpdateUnknownPanics(t *testing.T) {
	h := newBinaryHeap()
	assert.Panics(t, func() { h.update(1, 0) })
}

func TestBinaryHeapUpdateIncreasePanics(t *testing.T) {
	h := newBinaryHeap()
	h.insert(1, 1)
	assert.Panics(t, func() { h.update(1, 5) })
}

func TestBinaryHeapInsertDuplicatePanics(t *testing.T) {
	h := newBinaryHeap()
	h.insert(1, 1)
	assert.Panics(t, func() { h.insert(1, 2) })
}

func TestBinaryHeapHas(t *testing.T) {
	h := newBinaryHeap()
	h.insert(1, 1)
	assert.True(t, h.has(1))
	assert.False(t, h.has(2))
	h.remove()
	assert.False(t, h.has(1))
}

func TestFIFOQueueOrdersByInsertion(t *testing.T) {
	q := &fifoQueue{}
	q.insert(1)
	q.insert(2)
	q.insert(3)

	assert.Equal(t, int64(1), q.remove())
	assert.Equal(t, int64(2), q.remove())
	assert.False(t, q.isEmpty())
	assert.Equal(t, int64(3), q.remove())
	assert.True(t, q.isEmpty())
}
