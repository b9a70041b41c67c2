package Queues

// ArrayQueue is a Queue backed by a growable circular array.
type ArrayQueue[T any] struct {
	sz, head, tail int
	content        []T
}

func NewArrayQueue[T any](initCap int) *ArrayQueue[T] {
	return &ArrayQueue[T]{content: make([]T, max(initCap, 1))}
}

func (u *ArrayQueue[T]) Empty() bool {
	return u.sz == 0
}

func (u *ArrayQueue[T]) resize(newLen int) {
	nc := make([]T, newLen)
	if u.head < u.tail {
		copy(nc, u.content[u.head:u.tail])
	} else if u.sz > 0 {
		copy(nc, u.content[u.head:])
		copy(nc[len(u.content)-u.head:], u.content[:u.tail])
	}
	u.head, u.tail = 0, u.sz%newLen
	u.content = nc
}

// Shrink the underlying array to the current size.
func (u *ArrayQueue[T]) Shrink() {
	u.resize(u.sz | 1)
}

func (u *ArrayQueue[T]) Clear() {
	clear(u.content)
	u.tail, u.head, u.sz = 0, 0, 0
}

func (u *ArrayQueue[T]) Size() int {
	return u.sz
}

func (u *ArrayQueue[T]) Push(item T) {
	if u.sz == len(u.content) {
		u.resize(u.sz*3/2 + 1)
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % len(u.content)
	u.sz++
}

func (u *ArrayQueue[T]) Pop() (item T, ok bool) {
	if u.Empty() {
		return
	}
	item = u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % len(u.content)
	u.sz--
	return item, true
}

func (u *ArrayQueue[T]) Peek() (item T, ok bool) {
	if u.Empty() {
		return
	}
	return u.content[u.head], true
}
