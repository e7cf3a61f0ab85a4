// Package hgpath implements the shortest-path substrate shared by every
// traversal algorithm in this module: a decrease-key priority queue for
// Dijkstra, a FIFO variant for unweighted BFS, and the single-source
// shortest-path tree (distance, path count, predecessors, settled order)
// both expose. It is modeled on the teacher's container/heap-based
// graph/path/dijkstra.go, generalized from a "push duplicates, skip
// stale pops" queue to an explicit decrease-key contract, per this
// module's priority-queue protocol.
package hgpath

import "container/heap"

// item is one entry in the weighted priority queue.
type item struct {
	id    int64
	key   float64
	index int // position in the heap slice, maintained by heap.Interface
}

// binaryHeap is a decrease-key-capable min-heap keyed by a float64 key,
// indexed by int64 vertex ID. It satisfies the weighted half of the
// priority-queue protocol: insert, update (decrease-key), remove,
// isEmpty.
type binaryHeap struct {
	items []*item
	index map[int64]*item
}

func newBinaryHeap() *binaryHeap {
	return &binaryHeap{index: make(map[int64]*item)}
}

func (h *binaryHeap) isEmpty() bool { return len(h.items) == 0 }

// insert adds id with the given key. It panics if id is already present;
// callers must use update for an existing element.
func (h *binaryHeap) insert(id int64, key float64) {
	if _, ok := h.index[id]; ok {
		panic("hgpath: insert of element already in the queue")
	}
	it := &item{id: id, key: key}
	h.index[id] = it
	heap.Push(h, it)
}

// update decreases the key of id to key. It panics if id is not present
// in the queue or if key is greater than the element's current key: the
// protocol only supports decrease-key, per spec.
func (h *binaryHeap) update(id int64, key float64) {
	it, ok := h.index[id]
	if !ok {
		panic("hgpath: update of element not in the queue")
	}
	if key > it.key {
		panic("hgpath: update must not increase the key")
	}
	it.key = key
	heap.Fix(h, it.index)
}

// remove extracts and returns the ID with the smallest key. Ties break
// arbitrarily.
func (h *binaryHeap) remove() int64 {
	it := heap.Pop(h).(*item)
	delete(h.index, it.id)
	return it.id
}

func (h *binaryHeap) has(id int64) bool {
	_, ok := h.index[id]
	return ok
}

// heap.Interface plumbing.
func (h *binaryHeap) Len() int            { return len(h.items) }
func (h *binaryHeap) Less(i, j int) bool  { return h.items[i].key < h.items[j].key }
func (h *binaryHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].index = i
	h.items[j].index = j
}
func (h *binaryHeap) Push(x interface{}) {
	it := x.(*item)
	it.index = len(h.items)
	h.items = append(h.items, it)
}
func (h *binaryHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	h.items = old[:n-1]
	return it
}

// fifoQueue is the unweighted variant of the priority-queue protocol: a
// plain queue where insert/remove degrade to enqueue/dequeue and there is
// no update, giving unweighted Brandes and BFS an O(V+E) forward phase
// instead of O((V+E) log V).
type fifoQueue struct {
	items []int64
	head  int
}

func (q *fifoQueue) isEmpty() bool { return q.head >= len(q.items) }
func (q *fifoQueue) insert(id int64) {
	q.items = append(q.items, id)
}
func (q *fifoQueue) remove() int64 {
	id := q.items[q.head]
	q.head++
	return id
}
