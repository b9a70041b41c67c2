package Trees

import (
	"iter"
	"strconv"

	"github.com/g-m-twostay/go-bst/Queues"
)

// Tree is an ordered set of values kept in an unbalanced binary search tree.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, calling Min on an
// empty tree returns (x T, false), and x is the zero value of T.
// No receiver returns a pointer into the tree; values are always copied out.
// Methods implemented recursively recurse as deep as the tree is high, which is
// the number of elements in the worst case since there's no balancing.
// Read only receivers can be called concurrently with each other, but not
// concurrently with Insert, Remove, or Clear.
type Tree[T any] interface {
	//Insert v to the Tree. Returns false if v was already present, in which
	//case the tree is unchanged.
	Insert(v T) bool
	//Remove v from the Tree. Returns false if v wasn't present, in which
	//case the tree is unchanged.
	Remove(v T) bool
	//Contains reports whether v is in the tree.
	Contains(v T) bool
	//Min element of the tree.
	Min() (T, bool)
	//Max element of the tree.
	Max() (T, bool)
	//Height of the tree. An empty tree has height 0, a single node has height 1.
	Height() int
	//Size of the tree.
	Size() int
	//Traverse returns a new slice holding all values in order o.
	Traverse(o Order) []T
	//TraverseInto pushes all values in order o to q.
	TraverseInto(o Order, q Queues.Queue[T])
	//Walk calls f on the values in order o until f returns false.
	//The tree must not be modified during the walk.
	Walk(o Order, f func(T) bool)
	//Values is Walk as an iterator.
	Values(o Order) iter.Seq[T]
	//Corrupt returns whether some node violates the ordering of a binary
	//search tree. A healthy tree always returns false.
	Corrupt() bool
	//Render draws the shape of the tree, one value per line.
	Render() string
	//Clear removes all elements.
	Clear()
}

// Order of a depth first traversal.
type Order byte

const (
	// InOrder visits the left subtree, the node, then the right subtree.
	// Values come out in ascending order.
	InOrder Order = iota
	// PreOrder visits the node, the left subtree, then the right subtree.
	PreOrder
	// PostOrder visits the left subtree, the right subtree, then the node.
	PostOrder
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "in-order"
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	}
	return "Order(" + strconv.Itoa(int(o)) + ")"
}
