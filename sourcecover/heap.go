package sourcecover

import "container/heap"

// heapItem is one entry in the priority queue: a vertex id and its current
// coverage-count priority, plus the index container/heap needs internally
// to support Fix and Remove in O(log n).
type heapItem struct {
	id    int
	key   int
	index int
}

// itemHeap implements container/heap.Interface as a max-heap over key,
// shaped the same way as dijkstra's nodePQ and prim_kruskal's edgePQ
// (Len/Less/Swap/Push/Pop backing a container/heap.Interface), but inverted
// to a max-heap and carrying an index field on each item so a caller can
// Fix or Remove an arbitrary entry in place of those packages' lazy
// decrease-key (push-a-duplicate, ignore-the-stale-entry) idiom.
type itemHeap []*heapItem

func (h itemHeap) Len() int { return len(h) }

func (h itemHeap) Less(i, j int) bool { return h[i].key > h[j].key }

func (h itemHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

// Push appends x (a *heapItem) to the heap. Called by heap.Push.
func (h *itemHeap) Push(x any) {
	item := x.(*heapItem)
	item.index = len(*h)
	*h = append(*h, item)
}

// Pop removes and returns the last element of the heap slice. Called by
// heap.Pop, which first swaps the target element into that last position.
func (h *itemHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]

	return item
}

// indexedMaxHeap is a max-heap over integer vertex ids keyed by an integer
// priority (current coverage count), supporting O(log n) decrease-key and
// delete-by-id by driving container/heap's Fix and Remove off each item's
// tracked index.
type indexedMaxHeap struct {
	h   itemHeap
	pos map[int]*heapItem
}

func newIndexedMaxHeap() *indexedMaxHeap {
	return &indexedMaxHeap{pos: make(map[int]*heapItem)}
}

func (h *indexedMaxHeap) Len() int { return h.h.Len() }

func (h *indexedMaxHeap) Contains(id int) bool {
	_, ok := h.pos[id]
	return ok
}

// Push inserts id with priority k. id must not already be in the heap.
func (h *indexedMaxHeap) Push(id, k int) {
	item := &heapItem{id: id, key: k}
	h.pos[id] = item
	heap.Push(&h.h, item)
}

// PopMax removes and returns the id with the largest priority, along with
// that priority.
func (h *indexedMaxHeap) PopMax() (id, key int) {
	item := heap.Pop(&h.h).(*heapItem)
	delete(h.pos, item.id)

	return item.id, item.key
}

// DecreaseKey lowers id's priority to newKey. No-op if id is absent.
func (h *indexedMaxHeap) DecreaseKey(id, newKey int) {
	item, ok := h.pos[id]
	if !ok {
		return
	}
	item.key = newKey
	heap.Fix(&h.h, item.index)
}

// Delete removes id from the heap entirely. No-op if id is absent.
func (h *indexedMaxHeap) Delete(id int) {
	item, ok := h.pos[id]
	if !ok {
		return
	}
	heap.Remove(&h.h, item.index)
	delete(h.pos, id)
}
