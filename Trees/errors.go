package Trees

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvalidSliceError is returned when a slice handed to a bulk constructor
// isn't strictly ascending. Prev and Next are the first adjacent pair
// out of order, Next being at index At.
type InvalidSliceError struct {
	Prev, Next any
	At         int
}

func (e *InvalidSliceError) Error() string {
	return fmt.Sprintf("slice isn't strictly ascending: %v at %d follows %v", e.Next, e.At, e.Prev)
}

// InvariantViolation is the panic value raised when a tree is found to
// contain a cycle, meaning a node became its own descendant. This can't be
// caused by misuse of the API and isn't recoverable.
type InvariantViolation struct {
	Visited, Size int
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("tree invariant violated: visited %d nodes in a tree of %d", e.Visited, e.Size)
}

// IndexOverflowError is reported when an ArrTree would hold more nodes than
// its index type can address. FromSorted returns it; Insert panics with it.
type IndexOverflowError struct {
	Len, Max uint64
}

func (e *IndexOverflowError) Error() string {
	return fmt.Sprintf("%d nodes don't fit indexes up to %d", e.Len, e.Max)
}

// checkAscending returns an *InvalidSliceError for the first pair of s
// that isn't strictly increasing.
func checkAscending[T any](s []T, cmp func(T, T) int) error {
	for i := 1; i < len(s); i++ {
		if cmp(s[i-1], s[i]) >= 0 {
			return errors.WithStack(&InvalidSliceError{s[i-1], s[i], i})
		}
	}
	return nil
}

func violated(visited, size int) {
	panic(errors.WithStack(&InvariantViolation{visited, size}))
}
