package Trees

import (
	"cmp"
	"iter"

	"github.com/g-m-twostay/go-bst/Queues"
)

// BSTree is a binary search tree with no repeated values and no balancing.
// Every node is owned by exactly one parent, or by the tree itself for
// the root; there are no parent pointers.
// The zero value is an empty tree ready to use.
type BSTree[T cmp.Ordered] struct {
	root *node[T]
	sz   int
}

func New[T cmp.Ordered]() *BSTree[T] {
	return &BSTree[T]{}
}

// Build a tree of minimal height from sli, which must be strictly
// ascending. Otherwise, an *InvalidSliceError describing the first pair out
// of order is returned. sli isn't retained.
// Time: O(n).
func Build[T cmp.Ordered](sli []T) (*BSTree[T], error) {
	if err := checkAscending(sli, cmp.Compare[T]); err != nil {
		return nil, err
	}
	return &BSTree[T]{build(sli), len(sli)}, nil
}

// Insert [Tree.Insert]. Recursive.
// Time: O(D)
func (u *BSTree[T]) Insert(v T) bool {
	if insert(&u.root, v) {
		u.sz++
		return true
	}
	return false
}

// Remove [Tree.Remove]. Recursive.
// Time: O(D)
func (u *BSTree[T]) Remove(v T) bool {
	if u.root == nil {
		return false
	}
	var ok bool
	if u.root, ok = remove(take(&u.root), v); ok {
		u.sz--
	}
	return ok
}

// Contains [Tree.Contains]. Recursive.
// Time: O(D)
func (u *BSTree[T]) Contains(v T) bool {
	return contains(u.root, v)
}

// Min [Tree.Min]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Min() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return leftmost(u.root).v, true
}

// Max [Tree.Max]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Max() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return rightmost(u.root).v, true
}

// Height [Tree.Height]. Recursive.
// Time: O(n)
func (u *BSTree[T]) Height() int {
	return height(u.root)
}

func (u *BSTree[T]) Size() int {
	return u.sz
}

// Walk [Tree.Walk]. Recursive. Panics with an *InvariantViolation if
// it reaches more nodes than the tree holds.
// Time: O(n)
func (u *BSTree[T]) Walk(o Order, f func(T) bool) {
	w := walker[T]{f, u.sz, u.sz}
	w.walk(u.root, o)
}

func (u *BSTree[T]) Values(o Order) iter.Seq[T] {
	return func(yield func(T) bool) {
		u.Walk(o, yield)
	}
}

func (u *BSTree[T]) Traverse(o Order) []T {
	s := make([]T, 0, u.sz)
	u.Walk(o, func(v T) bool {
		s = append(s, v)
		return true
	})
	return s
}

func (u *BSTree[T]) TraverseInto(o Order, q Queues.Queue[T]) {
	u.Walk(o, func(v T) bool {
		q.Push(v)
		return true
	})
}

func (u *BSTree[T]) Corrupt() bool {
	return corrupt(u.root, nil, nil)
}

func (u *BSTree[T]) Clear() {
	u.root, u.sz = nil, 0
}

func (u *BSTree[T]) Render() string {
	return render(u.root, func(n *node[T]) (T, *node[T], *node[T]) {
		return n.v, n.l, n.r
	}, (*node[T])(nil))
}
