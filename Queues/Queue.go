package Queues

// Queue is a FIFO sequence with a single owner. Pop and Peek report
// whether the returned value is defined; on an empty Queue they return
// (zero value, false).
type Queue[T any] interface {
	// Push appends item to the back.
	Push(item T)
	// Pop removes and returns the item at the front.
	Pop() (T, bool)
	// Peek returns the item at the front without removing it.
	Peek() (T, bool)
	Empty() bool
	Size() int
}

// Drain pops every item of q into a slice, leaving q empty.
func Drain[T any](q Queue[T]) []T {
	r := make([]T, 0, q.Size())
	for v, ok := q.Pop(); ok; v, ok = q.Pop() {
		r = append(r, v)
	}
	return r
}
