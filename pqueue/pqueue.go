package pqueue

import "container/heap"

// Priority is the guess selector's tie-break tuple: lower Probability
// wins; ties break on lower DistanceSquared (closer to board center),
// then lower X, then lower Y.
type Priority struct {
	Probability     float64
	DistanceSquared float64
	X, Y            int
}

// Less reports whether p sorts before other (p has strictly higher
// selection priority).
func (p Priority) Less(other Priority) bool {
	if p.Probability != other.Probability {
		return p.Probability < other.Probability
	}
	if p.DistanceSquared != other.DistanceSquared {
		return p.DistanceSquared < other.DistanceSquared
	}
	if p.X != other.X {
		return p.X < other.X
	}
	return p.Y < other.Y
}

// item pairs a caller-supplied value with its Priority, the same shape
// as dijkstra.nodeItem generalized to an arbitrary payload type.
type item[T any] struct {
	value    T
	priority Priority
}

// innerHeap implements container/heap.Interface over []*item[T].
type innerHeap[T any] []*item[T]

func (h innerHeap[T]) Len() int            { return len(h) }
func (h innerHeap[T]) Less(i, j int) bool  { return h[i].priority.Less(h[j].priority) }
func (h innerHeap[T]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *innerHeap[T]) Push(x interface{}) { *h = append(*h, x.(*item[T])) }
func (h *innerHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	popped := old[n-1]
	*h = old[:n-1]
	return popped
}

// Queue is a min-heap priority queue: Pop always returns the item with
// the lowest Priority currently enqueued.
type Queue[T any] struct {
	h innerHeap[T]
}

// New returns an empty Queue.
func New[T any]() *Queue[T] {
	q := &Queue[T]{}
	heap.Init(&q.h)
	return q
}

// Push inserts value with the given priority.
func (q *Queue[T]) Push(value T, priority Priority) {
	heap.Push(&q.h, &item[T]{value: value, priority: priority})
}

// Pop removes and returns the value with the lowest priority and true,
// or the zero value and false if the queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	if q.h.Len() == 0 {
		var zero T
		return zero, false
	}
	popped := heap.Pop(&q.h).(*item[T])
	return popped.value, true
}

// Peek returns the value with the lowest priority without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if q.h.Len() == 0 {
		var zero T
		return zero, false
	}
	return q.h[0].value, true
}

// Len returns the number of items currently queued.
func (q *Queue[T]) Len() int { return q.h.Len() }

// IsEmpty reports whether the queue has no items.
func (q *Queue[T]) IsEmpty() bool { return q.h.Len() == 0 }
