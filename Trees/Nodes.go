package Trees

import "cmp"

// A node in the BSTree. A node exclusively owns both of its subtrees;
// an absent subtree is nil.
type node[T cmp.Ordered] struct {
	v    T
	l, r *node[T]
}

// take detaches the subtree in slot and returns it, leaving the slot empty.
// A subtree taken out of a slot has exactly one owner, the caller, until it
// is written back somewhere.
func take[T cmp.Ordered](slot **node[T]) *node[T] {
	n := *slot
	*slot = nil
	return n
}

// insert the value v into the subtree rooting at *curPtr recursively. A new
// leaf is placed in the first empty slot reached. Returns false if v is
// already present, in which case nothing changes.
// Time: O(D)
func insert[T cmp.Ordered](curPtr **node[T], v T) bool {
	cur := *curPtr
	if cur == nil {
		*curPtr = &node[T]{v: v}
		return true
	}
	switch c := cmp.Compare(v, cur.v); {
	case c < 0:
		return insert(&cur.l, v)
	case c > 0:
		return insert(&cur.r, v)
	}
	return false
}

// remove consumes the subtree cur and returns the subtree that replaces it
// after v is removed, together with whether v was found. cur must not be nil.
// When v is in a node with two children, that node takes the value of its
// in-order successor, and the successor's value is then removed from the
// right subtree only. The successor has no left child, so that second
// removal always ends in the zero or one child case.
// Time: O(D)
func remove[T cmp.Ordered](cur *node[T], v T) (*node[T], bool) {
	c := cmp.Compare(v, cur.v)
	if c < 0 && cur.l != nil {
		var ok bool
		cur.l, ok = remove(take(&cur.l), v)
		return cur, ok
	} else if c > 0 && cur.r != nil {
		var ok bool
		cur.r, ok = remove(take(&cur.r), v)
		return cur, ok
	} else if c != 0 {
		return cur, false
	}

	if cur.l == nil {
		return take(&cur.r), true
	} else if cur.r == nil {
		return take(&cur.l), true
	}
	cur.v = leftmost(cur.r).v
	cur.r, _ = remove(take(&cur.r), cur.v)
	return cur, true
}

func leftmost[T cmp.Ordered](cur *node[T]) *node[T] {
	for cur.l != nil {
		cur = cur.l
	}
	return cur
}

func rightmost[T cmp.Ordered](cur *node[T]) *node[T] {
	for cur.r != nil {
		cur = cur.r
	}
	return cur
}

func contains[T cmp.Ordered](cur *node[T], v T) bool {
	if cur == nil {
		return false
	}
	switch c := cmp.Compare(v, cur.v); {
	case c < 0:
		return contains(cur.l, v)
	case c > 0:
		return contains(cur.r, v)
	}
	return true
}

func height[T cmp.Ordered](cur *node[T]) int {
	if cur == nil {
		return 0
	}
	return 1 + max(height(cur.l), height(cur.r))
}

// corrupt reports whether any value in the subtree lies outside (lo, hi).
// A nil bound is unbounded.
func corrupt[T cmp.Ordered](cur *node[T], lo, hi *T) bool {
	if cur == nil {
		return false
	}
	if lo != nil && cmp.Compare(cur.v, *lo) <= 0 || hi != nil && cmp.Compare(cur.v, *hi) >= 0 {
		return true
	}
	return corrupt(cur.l, lo, &cur.v) || corrupt(cur.r, &cur.v, hi)
}

// build a tree of minimal height from the ascending slice s.
func build[T cmp.Ordered](s []T) *node[T] {
	if len(s) == 0 {
		return nil
	}
	mid := len(s) >> 1
	return &node[T]{s[mid], build(s[:mid]), build(s[mid+1:])}
}

// walker visits nodes in one Order. budget is the number of nodes it may
// still visit; going below zero means the structure has a cycle.
type walker[T cmp.Ordered] struct {
	f            func(T) bool
	budget, size int
}

// walk the subtree cur in order o. Returns false once f asked to stop.
func (w *walker[T]) walk(cur *node[T], o Order) bool {
	if cur == nil {
		return true
	}
	if w.budget--; w.budget < 0 {
		violated(w.size-w.budget, w.size)
	}
	switch o {
	case PreOrder:
		return w.f(cur.v) && w.walk(cur.l, o) && w.walk(cur.r, o)
	case PostOrder:
		return w.walk(cur.l, o) && w.walk(cur.r, o) && w.f(cur.v)
	}
	return w.walk(cur.l, o) && w.f(cur.v) && w.walk(cur.r, o)
}
