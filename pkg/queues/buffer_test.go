package queues

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Interface compliance check
var _ Bounded[string] = (*Buffer[string])(nil)

// =============================================================================
// Method: NewBuffer() / NewBufferWithDefault()
// =============================================================================

func TestBuffer_NewInvalidCapacity(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
	}{
		{"zero", 0},
		{"negative", -1},
		{"large_negative", -1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBuffer[int](tt.capacity)
			assert.Nil(t, b)
			assert.ErrorIs(t, err, ErrInvalidCapacity)

			bd, err := NewBufferWithDefault(tt.capacity, 0)
			assert.Nil(t, bd)
			assert.ErrorIs(t, err, ErrInvalidCapacity)
		})
	}
}

func TestBuffer_New(t *testing.T) {
	b, err := NewBuffer[int](3)
	assert.NoError(t, err)
	assert.Equal(t, 0, b.Size())
	assert.Equal(t, 3, b.Capacity())

	_, err = b.Peek()
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = b.Remove()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestBuffer_NewWithDefault(t *testing.T) {
	b, err := NewBufferWithDefault(4, "d")
	assert.NoError(t, err)
	assert.Equal(t, 4, b.Size())
	assert.Equal(t, 4, b.Capacity())

	// The pre-filled entries are real queued elements.
	v, err := b.Remove()
	assert.NoError(t, err)
	assert.Equal(t, "d", v)
	assert.Equal(t, 3, b.Size())
}

// =============================================================================
// Method: Add()
// =============================================================================

func TestBuffer_AddUntilFull(t *testing.T) {
	const capacity = 3
	b, err := NewBuffer[int](capacity)
	assert.NoError(t, err)

	for i := 1; i <= capacity; i++ {
		evicted, didEvict, err := b.Add(i)
		assert.NoError(t, err)
		assert.False(t, didEvict)
		assert.Zero(t, evicted)
	}
	assert.Equal(t, capacity, b.Size())

	// The (C+1)-th add is rejected and the buffer is left unchanged.
	_, _, err = b.Add(99)
	assert.ErrorIs(t, err, ErrFull)
	assert.Equal(t, capacity, b.Size())

	v, err := b.Peek()
	assert.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestBuffer_AddWithDefaultStartsFull(t *testing.T) {
	b, err := NewBufferWithDefault(2, 7)
	assert.NoError(t, err)

	_, _, err = b.Add(1)
	assert.ErrorIs(t, err, ErrFull)

	// Removing a default entry frees a slot for a real one.
	v, err := b.Remove()
	assert.NoError(t, err)
	assert.Equal(t, 7, v)

	_, _, err = b.Add(1)
	assert.NoError(t, err)
	assert.Equal(t, 2, b.Size())
}

// =============================================================================
// FIFO order across slot wraparound
// =============================================================================

func TestBuffer_OrderAcrossWrap(t *testing.T) {
	b, err := NewBuffer[int](4)
	assert.NoError(t, err)

	// Fill, drain half, refill: the write position laps the slot array.
	for i := 1; i <= 4; i++ {
		_, _, err := b.Add(i)
		assert.NoError(t, err)
	}
	for _, want := range []int{1, 2} {
		v, err := b.Remove()
		assert.NoError(t, err)
		assert.Equal(t, want, v)
	}
	for i := 5; i <= 6; i++ {
		_, _, err := b.Add(i)
		assert.NoError(t, err)
	}

	for _, want := range []int{3, 4, 5, 6} {
		v, err := b.Remove()
		assert.NoError(t, err)
		assert.Equal(t, want, v)
	}
	assert.Equal(t, 0, b.Size())
}

// =============================================================================
// Method: Peek()
// =============================================================================

func TestBuffer_PeekIdempotent(t *testing.T) {
	b, err := NewBuffer[int](3)
	assert.NoError(t, err)
	_, _, _ = b.Add(42)

	for i := 0; i < 5; i++ {
		v, err := b.Peek()
		assert.NoError(t, err)
		assert.Equal(t, 42, v)
		assert.Equal(t, 1, b.Size())
	}
}
