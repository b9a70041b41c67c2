package Trees

import (
	"cmp"
	"iter"

	"github.com/g-m-twostay/go-bst/Queues"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// ArrTree is a BSTree whose nodes are stored in an arena and refer to their
// children by index instead of by pointer. Indexes of removed nodes are
// kept in a free list and handed out again before the arena grows.
// S is the type of the indexes; it must be able to count every node that is
// ever live at once; Insert panics with an *IndexOverflowError otherwise.
// The zero value is not usable, create it with NewArrTree.
type ArrTree[T cmp.Ordered, S constraints.Unsigned] struct {
	arena[T, S]
	root, sz S
}

// NewArrTree returns an empty tree with room for hint elements before the
// arena grows.
func NewArrTree[T cmp.Ordered, S constraints.Unsigned](hint S) *ArrTree[T, S] {
	return &ArrTree[T, S]{arena: makeArena[T](hint)}
}

// FromSorted builds a tree of minimal height directly on top of vs, which
// must be strictly ascending. The array is handed to the tree and it mustn't
// be modified by the caller later. Otherwise, an *InvalidSliceError is
// returned and vs is left alone. An *IndexOverflowError is returned when
// len(vs) doesn't fit in S.
// Time: O(n).
func FromSorted[T cmp.Ordered, S constraints.Unsigned](vs []T) (*ArrTree[T, S], error) {
	if err := checkAscending(vs, cmp.Compare[T]); err != nil {
		return nil, err
	}
	if uint64(len(vs)) > uint64(^S(0)) {
		return nil, errors.WithStack(&IndexOverflowError{uint64(len(vs)), uint64(^S(0))})
	}
	root, ifs := buildIfs(S(len(vs)))
	return &ArrTree[T, S]{arena[T, S]{ifs: ifs, vs: vs}, root, S(len(vs))}, nil
}

// insert v to the subtree at curI. Returns the index replacing curI.
func (u *ArrTree[T, S]) insert(curI S, v T) (S, bool) {
	if curI == 0 {
		return u.alloc(v), true
	}
	switch c := cmp.Compare(v, u.vs[curI-1]); {
	case c < 0:
		l, ok := u.insert(u.ifs[curI].l, v)
		u.ifs[curI].l = l
		return curI, ok
	case c > 0:
		r, ok := u.insert(u.ifs[curI].r, v)
		u.ifs[curI].r = r
		return curI, ok
	}
	return curI, false
}

// Insert [Tree.Insert]. Recursive.
// Time: O(D)
func (u *ArrTree[T, S]) Insert(v T) bool {
	root, ok := u.insert(u.root, v)
	if u.root = root; ok {
		u.sz++
	}
	return ok
}

// remove v from the subtree at curI, which mustn't be 0. Returns the index
// replacing curI. Same algorithm as the BSTree one.
func (u *ArrTree[T, S]) remove(curI S, v T) (S, bool) {
	cur := u.ifs[curI]
	c := cmp.Compare(v, u.vs[curI-1])
	if c < 0 && cur.l != 0 {
		l, ok := u.remove(cur.l, v)
		u.ifs[curI].l = l
		return curI, ok
	} else if c > 0 && cur.r != 0 {
		r, ok := u.remove(cur.r, v)
		u.ifs[curI].r = r
		return curI, ok
	} else if c != 0 {
		return curI, false
	}

	if cur.l == 0 {
		u.addFree(curI)
		return cur.r, true
	} else if cur.r == 0 {
		u.addFree(curI)
		return cur.l, true
	}
	si := cur.r
	for u.ifs[si].l != 0 {
		si = u.ifs[si].l
	}
	u.vs[curI-1] = u.vs[si-1]
	r, _ := u.remove(cur.r, u.vs[curI-1])
	u.ifs[curI].r = r
	return curI, true
}

// Remove [Tree.Remove]. Recursive.
// Time: O(D)
func (u *ArrTree[T, S]) Remove(v T) bool {
	if u.root == 0 {
		return false
	}
	root, ok := u.remove(u.root, v)
	if u.root = root; ok {
		u.sz--
	}
	return ok
}

// Contains [Tree.Contains]
// Time: O(D); Space: O(1)
func (u *ArrTree[T, S]) Contains(v T) bool {
	for curI := u.root; curI != 0; {
		switch c := cmp.Compare(v, u.vs[curI-1]); {
		case c < 0:
			curI = u.ifs[curI].l
		case c > 0:
			curI = u.ifs[curI].r
		default:
			return true
		}
	}
	return false
}

// Min [Tree.Min]
// Time: O(D); Space: O(1)
func (u *ArrTree[T, S]) Min() (T, bool) {
	if u.root == 0 {
		return *new(T), false
	}
	curI := u.root
	for u.ifs[curI].l != 0 {
		curI = u.ifs[curI].l
	}
	return u.vs[curI-1], true
}

// Max [Tree.Max]
// Time: O(D); Space: O(1)
func (u *ArrTree[T, S]) Max() (T, bool) {
	if u.root == 0 {
		return *new(T), false
	}
	curI := u.root
	for u.ifs[curI].r != 0 {
		curI = u.ifs[curI].r
	}
	return u.vs[curI-1], true
}

func (u *ArrTree[T, S]) height(curI S) int {
	if curI == 0 {
		return 0
	}
	return 1 + max(u.height(u.ifs[curI].l), u.height(u.ifs[curI].r))
}

// Height [Tree.Height]. Recursive.
// Time: O(n)
func (u *ArrTree[T, S]) Height() int {
	return u.height(u.root)
}

func (u *ArrTree[T, S]) Size() int {
	return int(u.sz)
}

// walk the subtree at curI in order o, budget bounding the number of nodes
// visited. Returns false once f asked to stop.
func (u *ArrTree[T, S]) walk(curI S, o Order, f func(T) bool, budget *int) bool {
	if curI == 0 {
		return true
	}
	if *budget--; *budget < 0 {
		violated(int(u.sz)-*budget, int(u.sz))
	}
	cur := u.ifs[curI]
	switch o {
	case PreOrder:
		return f(u.vs[curI-1]) && u.walk(cur.l, o, f, budget) && u.walk(cur.r, o, f, budget)
	case PostOrder:
		return u.walk(cur.l, o, f, budget) && u.walk(cur.r, o, f, budget) && f(u.vs[curI-1])
	}
	return u.walk(cur.l, o, f, budget) && f(u.vs[curI-1]) && u.walk(cur.r, o, f, budget)
}

// Walk [Tree.Walk]. Recursive. Panics with an *InvariantViolation if
// it reaches more nodes than the tree holds.
// Time: O(n)
func (u *ArrTree[T, S]) Walk(o Order, f func(T) bool) {
	budget := int(u.sz)
	u.walk(u.root, o, f, &budget)
}

func (u *ArrTree[T, S]) Values(o Order) iter.Seq[T] {
	return func(yield func(T) bool) {
		u.Walk(o, yield)
	}
}

func (u *ArrTree[T, S]) Traverse(o Order) []T {
	s := make([]T, 0, u.sz)
	u.Walk(o, func(v T) bool {
		s = append(s, v)
		return true
	})
	return s
}

func (u *ArrTree[T, S]) TraverseInto(o Order, q Queues.Queue[T]) {
	u.Walk(o, func(v T) bool {
		q.Push(v)
		return true
	})
}

// corrupt reports whether any value under curI lies outside (lo, hi);
// 0 as a bound is unbounded.
func (u *ArrTree[T, S]) corrupt(curI, lo, hi S) bool {
	if curI == 0 {
		return false
	}
	v := u.vs[curI-1]
	if lo != 0 && cmp.Compare(v, u.vs[lo-1]) <= 0 || hi != 0 && cmp.Compare(v, u.vs[hi-1]) >= 0 {
		return true
	}
	return u.corrupt(u.ifs[curI].l, lo, curI) || u.corrupt(u.ifs[curI].r, curI, hi)
}

func (u *ArrTree[T, S]) Corrupt() bool {
	return u.corrupt(u.root, 0, 0)
}

// Clear the tree. The arena keeps its memory.
// Time: O(size)
func (u *ArrTree[T, S]) Clear() {
	u.reset()
	u.root, u.sz = 0, 0
}

// Compact moves all live nodes to the front of a new arena that fits them
// exactly, so that there are no free indexes left. The shape of the tree is
// kept; the nodes are laid out in pre-order.
// Time: O(size)
func (u *ArrTree[T, S]) Compact() {
	ifs := make([]info[S], 1, uint(u.sz)+1)
	vs := make([]T, 0, u.sz)
	var move func(S) S
	move = func(curI S) S {
		if curI == 0 {
			return 0
		}
		vs = append(vs, u.vs[curI-1])
		ifs = append(ifs, info[S]{})
		i := S(len(vs))
		l := move(u.ifs[curI].l)
		r := move(u.ifs[curI].r)
		ifs[i] = info[S]{l, r}
		return i
	}
	u.root = move(u.root)
	u.arena = arena[T, S]{ifs: ifs, vs: vs}
}

func (u *ArrTree[T, S]) Render() string {
	return render(u.root, func(i S) (T, S, S) {
		return u.vs[i-1], u.ifs[i].l, u.ifs[i].r
	}, S(0))
}
