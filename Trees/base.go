package Trees

import (
	"math/bits"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// A node in the arena. l and r are indexes into the arena; 0 is the absent node.
// The zero value is meaningful.
type info[S constraints.Unsigned] struct {
	l, r S
}

// arena of nodes addressed by index. ifs[0] is the absent node and is never
// written. The value of node i is vs[i-1].
type arena[T any, S constraints.Unsigned] struct {
	free S // free is the beginning of the linked list that contains all the free indexes; info[S]::l represents next.
	ifs  []info[S]
	vs   []T
}

func makeArena[T any, S constraints.Unsigned](hint S) arena[T, S] {
	return arena[T, S]{ifs: make([]info[S], 1, uint(hint)+1), vs: make([]T, 0, hint)}
}

// addFree index once.
func (u *arena[T, S]) addFree(a S) {
	u.ifs[a] = info[S]{l: u.free}
	u.vs[a-1] = *new(T)
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *arena[T, S]) popFree() S {
	b := u.free
	if b != 0 {
		u.free = u.ifs[b].l
		u.ifs[b].l = 0
	}
	return b
}

// alloc a leaf holding v. Holes are filled first before appending to the underlying arrays.
// Appending may move the arrays, so no pointer into them may be held across a call.
// Panics with an *IndexOverflowError when the new node's index doesn't fit in S.
func (u *arena[T, S]) alloc(v T) S {
	if i := u.popFree(); i != 0 {
		u.vs[i-1] = v
		return i
	}
	if uint64(len(u.vs)) >= uint64(^S(0)) {
		panic(errors.WithStack(&IndexOverflowError{uint64(len(u.vs)) + 1, uint64(^S(0))}))
	}
	u.ifs = append(u.ifs, info[S]{})
	u.vs = append(u.vs, v)
	return S(len(u.vs))
}

// reset the arena to only hold the absent node. Keeps the allocated memory.
func (u *arena[T, S]) reset() {
	clear(u.vs)
	u.ifs, u.vs, u.free = u.ifs[:1], u.vs[:0], 0
}

// buildIfs array of size vsLen to represent a binary tree of minimal height,
// choosing the same middle element as build.
// Node i takes vs[i-1], so an ascending vs gives a binary search tree.
func buildIfs[S constraints.Unsigned](vsLen S) (root S, ifs []info[S]) {
	ifs = make([]info[S], uint(vsLen)+1)
	if vsLen == 0 {
		return
	}
	st := make([][3]S, 0, bits.Len64(uint64(vsLen))) //[left,right,mid]
	root = 1 + vsLen>>1
	st = append(st, [3]S{1, vsLen, root})
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if top[0] < top[2] {
			nr := top[2] - 1
			ifs[top[2]].l = top[0] + (nr-top[0]+1)>>1
			st = append(st, [3]S{top[0], nr, ifs[top[2]].l})
		}
		if top[2] < top[1] {
			nl := top[2] + 1
			ifs[top[2]].r = nl + (top[1]-nl+1)>>1
			st = append(st, [3]S{nl, top[1], ifs[top[2]].r})
		}
	}
	return
}
