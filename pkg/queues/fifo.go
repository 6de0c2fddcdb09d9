// Package queues provides a small family of FIFO container types: an
// unbounded Queue, a bounded Buffer that rejects additions once full, and
// a bounded CircularBuffer that evicts its oldest element instead.
//
// The three variants differ only in their fullness policy; they share one
// contract (FIFO) so callers can pick between backpressure and best-effort
// retention without changing the surrounding code.
//
// None of the containers are thread-safe. Each instance assumes a single
// owner; callers sharing an instance across goroutines must provide their
// own synchronization.
package queues

// FIFO is the contract shared by all queue variants.
type FIFO[T any] interface {
	// Add appends v as the newest element. If the addition displaced an
	// existing element (as on a full CircularBuffer), the displaced
	// element is returned with didEvict set to true.
	Add(v T) (evicted T, didEvict bool, err error)

	// Remove removes and returns the oldest element.
	// Returns ErrEmpty if the container holds no elements.
	Remove() (T, error)

	// Peek returns the oldest element without removing it.
	// Returns ErrEmpty if the container holds no elements.
	Peek() (T, error)

	// Size returns the number of elements currently held.
	Size() int
}

// Bounded is a FIFO with a fixed maximum size.
type Bounded[T any] interface {
	FIFO[T]

	// Capacity returns the maximum number of elements the container may
	// hold at once. It never changes after construction.
	Capacity() int
}
