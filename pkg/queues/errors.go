package queues

import "github.com/pkg/errors"

var (
	// ErrEmpty is returned when removing or peeking from an empty container.
	ErrEmpty = errors.New("queues: container is empty")

	// ErrFull is returned when adding to a Buffer that is at capacity.
	// CircularBuffer never returns it; a full circular buffer evicts.
	ErrFull = errors.New("queues: buffer is full")

	// ErrInvalidCapacity is returned by constructors given a capacity <= 0.
	ErrInvalidCapacity = errors.New("queues: capacity must be positive")
)
