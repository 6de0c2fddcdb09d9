package queues

import (
	"github.com/huynhanx03/go-queues/pkg/utils"
)

const (
	// minQueueCap is the capacity of a Queue's first allocation.
	minQueueCap = 8

	// compactThreshold is the minimum dead prefix (slots consumed by
	// Remove) before a full Queue slides live elements back to the front
	// of its storage instead of reallocating.
	compactThreshold = 32
)

var _ FIFO[int] = (*Queue[int])(nil)

// Queue is an unbounded FIFO queue backed by a growable slice.
// It is NOT thread-safe.
//
// Live elements occupy items[head:]; Remove advances head instead of
// shifting, so Add and Remove are amortized O(1).
type Queue[T any] struct {
	items []T
	head  int // index of the oldest element
}

// NewQueue creates a new, empty Queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Add appends v as the newest element.
// It always succeeds and never reports an eviction.
func (q *Queue[T]) Add(v T) (T, bool, error) {
	var zero T
	if len(q.items) == cap(q.items) {
		q.grow()
	}
	q.items = append(q.items, v)
	return zero, false, nil
}

// Remove removes and returns the oldest element.
// Returns ErrEmpty if the queue holds no elements.
func (q *Queue[T]) Remove() (T, error) {
	var zero T
	if q.Size() == 0 {
		return zero, ErrEmpty
	}
	v := q.items[q.head]
	q.items[q.head] = zero // release the slot
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return v, nil
}

// Peek returns the oldest element without removing it.
// Returns ErrEmpty if the queue holds no elements.
func (q *Queue[T]) Peek() (T, error) {
	if q.Size() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return q.items[q.head], nil
}

// Size returns the number of elements currently queued.
func (q *Queue[T]) Size() int {
	return len(q.items) - q.head
}

// grow makes room for at least one more element, either by reclaiming the
// dead prefix left behind by Remove or by reallocating to the next
// power-of-two capacity.
func (q *Queue[T]) grow() {
	size := q.Size()
	if q.head >= compactThreshold && q.head >= size {
		// The dead prefix is at least half the storage: reuse it.
		n := copy(q.items, q.items[q.head:])
		var zero T
		for i := n; i < len(q.items); i++ {
			q.items[i] = zero
		}
		q.items = q.items[:n]
		q.head = 0
		return
	}

	newCap := minQueueCap
	if cap(q.items) > 0 {
		newCap = utils.CeilToPowerOfTwo(cap(q.items) + 1)
	}
	next := make([]T, size, newCap)
	copy(next, q.items[q.head:])
	q.items = next
	q.head = 0
}
