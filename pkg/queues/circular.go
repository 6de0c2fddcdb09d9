package queues

import (
	"github.com/pkg/errors"
)

var _ Bounded[int] = (*CircularBuffer[int])(nil)

// CircularBuffer is a bounded FIFO queue that overwrites its oldest
// element instead of rejecting additions once it reaches capacity.
// It is NOT thread-safe.
//
// A full buffer never returns ErrFull: Add reports the displaced element
// so the caller may observe or dispose of it. The relative order of the
// surviving elements is unchanged by an eviction.
//
// The slots form a fixed ring addressed by an oldest index and a length
// counter; Add writes slot (oldest+length) mod capacity when there is
// room, or overwrites slot oldest and advances it when full. All
// operations are O(1) worst case with no element movement.
type CircularBuffer[T any] struct {
	slots  []T
	oldest int // slot index of the next element due for removal
	length int

	// defaultVal, when set, is re-enqueued by Remove so the buffer stays
	// permanently full.
	defaultVal *T
}

// NewCircularBuffer creates an empty CircularBuffer that holds up to
// capacity elements. Returns ErrInvalidCapacity if capacity is not
// positive.
func NewCircularBuffer[T any](capacity int) (*CircularBuffer[T], error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "got %d", capacity)
	}
	return &CircularBuffer[T]{slots: make([]T, capacity)}, nil
}

// NewCircularBufferWithDefault creates a CircularBuffer with every slot
// pre-filled with a copy of def, so Size starts equal to capacity and
// every Add reports an eviction. Remove re-enqueues a fresh copy of def
// as the newest element, so the buffer never shrinks below capacity.
//
// The copies are made by assignment: element types holding pointers will
// share their referents across slots.
func NewCircularBufferWithDefault[T any](capacity int, def T) (*CircularBuffer[T], error) {
	c, err := NewCircularBuffer[T](capacity)
	if err != nil {
		return nil, err
	}
	for i := range c.slots {
		c.slots[i] = def
	}
	c.length = capacity
	c.defaultVal = &def
	return c, nil
}

// Add appends v as the newest element. When the buffer is full the oldest
// element is evicted to make room and returned with didEvict set to true.
// Add never fails due to fullness.
func (c *CircularBuffer[T]) Add(v T) (T, bool, error) {
	var zero T
	if c.length < len(c.slots) {
		c.slots[c.wrap(c.oldest+c.length)] = v
		c.length++
		return zero, false, nil
	}

	// Full: overwrite the oldest slot in place and advance past it.
	evicted := c.slots[c.oldest]
	c.slots[c.oldest] = v
	c.oldest = c.wrap(c.oldest + 1)
	return evicted, true, nil
}

// Remove removes and returns the oldest element. On a buffer constructed
// with a default value, a fresh copy of the default is enqueued in the
// same step. Returns ErrEmpty if the buffer holds no elements.
func (c *CircularBuffer[T]) Remove() (T, error) {
	var zero T
	if c.length == 0 {
		return zero, ErrEmpty
	}
	v := c.slots[c.oldest]
	c.slots[c.oldest] = zero // release the slot
	c.oldest = c.wrap(c.oldest + 1)
	c.length--

	if c.defaultVal != nil {
		c.slots[c.wrap(c.oldest+c.length)] = *c.defaultVal
		c.length++
	}
	return v, nil
}

// Peek returns the oldest element without removing it.
// Returns ErrEmpty if the buffer holds no elements.
func (c *CircularBuffer[T]) Peek() (T, error) {
	if c.length == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return c.slots[c.oldest], nil
}

// Size returns the number of elements currently buffered.
func (c *CircularBuffer[T]) Size() int {
	return c.length
}

// Capacity returns the maximum number of elements the buffer may hold.
func (c *CircularBuffer[T]) Capacity() int {
	return len(c.slots)
}

// wrap returns the slot index wrapped within the buffer's capacity.
func (c *CircularBuffer[T]) wrap(idx int) int {
	return idx % len(c.slots)
}
