package Queues

// link is one cell of a LinkedQueue. next is the index of the following
// cell in LinkedQueue.links, or -1 at the tail.
type link[T any] struct {
	v    T
	next int
}

// LinkedQueue is a singly linked Queue whose cells live in one slice
// owned by the queue. Cells are addressed by index, so there are no
// pointers between cells and nothing outside the queue can hold one.
// Cells are appended in push order, so the live chain is always
// links[head:]. Once more than half of the slice is popped cells, the live
// cells are moved to the front; once the queue drains the whole slice is
// truncated and reused.
// The zero value is not usable, create it with NewLinkedQueue.
type LinkedQueue[T any] struct {
	links      []link[T]
	head, tail int // -1 when empty.
	sz         int
}

func NewLinkedQueue[T any]() *LinkedQueue[T] {
	return &LinkedQueue[T]{head: -1, tail: -1}
}

// Push appends item after the current tail.
// Time: amortized O(1).
func (u *LinkedQueue[T]) Push(item T) {
	i := len(u.links)
	u.links = append(u.links, link[T]{item, -1})
	if u.tail < 0 {
		u.head = i
	} else {
		u.links[u.tail].next = i
	}
	u.tail = i
	u.sz++
}

// Pop unlinks the head cell and returns its value.
// Time: O(1).
func (u *LinkedQueue[T]) Pop() (item T, ok bool) {
	if u.head < 0 {
		return
	}
	c := &u.links[u.head]
	item, c.v = c.v, *new(T)
	if u.head = c.next; u.head < 0 {
		u.tail = -1
		u.links = u.links[:0]
	} else if u.head > len(u.links)/2 {
		u.compact()
	}
	u.sz--
	return item, true
}

// compact moves the live cells links[head:] to the front of links.
// Time: O(size), amortized O(1) per Pop.
func (u *LinkedQueue[T]) compact() {
	n := copy(u.links, u.links[u.head:])
	clear(u.links[n:])
	u.links = u.links[:n]
	for i := range u.links {
		if u.links[i].next >= 0 {
			u.links[i].next -= u.head
		}
	}
	u.tail -= u.head
	u.head = 0
}

func (u *LinkedQueue[T]) Peek() (item T, ok bool) {
	if u.head < 0 {
		return
	}
	return u.links[u.head].v, true
}

func (u *LinkedQueue[T]) Empty() bool {
	return u.head < 0
}

func (u *LinkedQueue[T]) Size() int {
	return u.sz
}

// Range calls f on every value from front to back without removing
// anything. Iteration stops when f returns false.
func (u *LinkedQueue[T]) Range(f func(T) bool) {
	for i := u.head; i >= 0; i = u.links[i].next {
		if !f(u.links[i].v) {
			return
		}
	}
}
