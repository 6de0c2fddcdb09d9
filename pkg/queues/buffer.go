package queues

import (
	"github.com/pkg/errors"
)

var _ Bounded[int] = (*Buffer[int])(nil)

// Buffer is a bounded FIFO queue that rejects additions once it reaches
// its capacity. It is NOT thread-safe.
//
// The slots form a fixed ring addressed by an oldest index and a length
// counter, so Add, Remove and Peek are all O(1) with no element movement.
type Buffer[T any] struct {
	slots  []T
	oldest int // slot index of the next element due for removal
	length int
}

// NewBuffer creates an empty Buffer that holds up to capacity elements.
// Returns ErrInvalidCapacity if capacity is not positive.
func NewBuffer[T any](capacity int) (*Buffer[T], error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "got %d", capacity)
	}
	return &Buffer[T]{slots: make([]T, capacity)}, nil
}

// NewBufferWithDefault creates a Buffer with every slot pre-filled with a
// copy of def, so Size starts equal to capacity. The pre-filled entries
// are ordinary queued elements, returned by Remove like any other.
//
// The copies are made by assignment: element types holding pointers will
// share their referents across slots.
func NewBufferWithDefault[T any](capacity int, def T) (*Buffer[T], error) {
	b, err := NewBuffer[T](capacity)
	if err != nil {
		return nil, err
	}
	for i := range b.slots {
		b.slots[i] = def
	}
	b.length = capacity
	return b, nil
}

// Add appends v as the newest element. Returns ErrFull when the buffer is
// at capacity, leaving it unchanged. Add never evicts.
func (b *Buffer[T]) Add(v T) (T, bool, error) {
	var zero T
	if b.length == len(b.slots) {
		return zero, false, ErrFull
	}
	b.slots[b.wrap(b.oldest+b.length)] = v
	b.length++
	return zero, false, nil
}

// Remove removes and returns the oldest element.
// Returns ErrEmpty if the buffer holds no elements.
func (b *Buffer[T]) Remove() (T, error) {
	var zero T
	if b.length == 0 {
		return zero, ErrEmpty
	}
	v := b.slots[b.oldest]
	b.slots[b.oldest] = zero // release the slot
	b.oldest = b.wrap(b.oldest + 1)
	b.length--
	return v, nil
}

// Peek returns the oldest element without removing it.
// Returns ErrEmpty if the buffer holds no elements.
func (b *Buffer[T]) Peek() (T, error) {
	if b.length == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return b.slots[b.oldest], nil
}

// Size returns the number of elements currently buffered.
func (b *Buffer[T]) Size() int {
	return b.length
}

// Capacity returns the maximum number of elements the buffer may hold.
func (b *Buffer[T]) Capacity() int {
	return len(b.slots)
}

// wrap returns the slot index wrapped within the buffer's capacity.
func (b *Buffer[T]) wrap(idx int) int {
	return idx % len(b.slots)
}
