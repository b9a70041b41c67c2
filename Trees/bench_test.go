package Trees

import (
	"math/rand"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const (
	bAddN = 1 << 16
	bQryN = bAddN / 2
)

// compares lookups of both trees with the balanced trees of
// https://github.com/google/btree, https://github.com/petar/GoLLRB and
// https://github.com/emirpasic/gods, and with the hash maps of
// https://github.com/alphadose/haxmap and https://github.com/cornelk/hashmap.
// Values are inserted in random order, so the trees are reasonably shallow.
func benchValues(b *testing.B) ([]int, []int) {
	b.Helper()
	r := rand.New(rand.NewSource(0))
	return r.Perm(bAddN), r.Perm(bAddN * 2)[:bQryN]
}

var sideEff bool

func BenchmarkBSTree_Contains(b *testing.B) {
	all, qry := benchValues(b)
	tree := New[int]()
	for _, v := range all {
		tree.Insert(v)
	}
	b.ResetTimer()
	for range b.N {
		for _, v := range qry {
			sideEff = tree.Contains(v)
		}
	}
}

func BenchmarkArrTree_Contains(b *testing.B) {
	all, qry := benchValues(b)
	tree := NewArrTree[int, uint32](bAddN)
	for _, v := range all {
		tree.Insert(v)
	}
	b.ResetTimer()
	for range b.N {
		for _, v := range qry {
			sideEff = tree.Contains(v)
		}
	}
}

func BenchmarkBTree_Has(b *testing.B) {
	all, qry := benchValues(b)
	tree := btree.NewOrderedG[int](32)
	for _, v := range all {
		tree.ReplaceOrInsert(v)
	}
	b.ResetTimer()
	for range b.N {
		for _, v := range qry {
			sideEff = tree.Has(v)
		}
	}
}

func BenchmarkLLRB_Has(b *testing.B) {
	all, qry := benchValues(b)
	tree := llrb.New()
	for _, v := range all {
		tree.ReplaceOrInsert(llrb.Int(v))
	}
	b.ResetTimer()
	for range b.N {
		for _, v := range qry {
			sideEff = tree.Has(llrb.Int(v))
		}
	}
}

func BenchmarkRedBlackTree_Get(b *testing.B) {
	all, qry := benchValues(b)
	tree := redblacktree.NewWithIntComparator()
	for _, v := range all {
		tree.Put(v, struct{}{})
	}
	b.ResetTimer()
	for range b.N {
		for _, v := range qry {
			_, sideEff = tree.Get(v)
		}
	}
}

func BenchmarkHaxMap_Get(b *testing.B) {
	all, qry := benchValues(b)
	m := haxmap.New[int, struct{}](bAddN)
	for _, v := range all {
		m.Set(v, struct{}{})
	}
	b.ResetTimer()
	for range b.N {
		for _, v := range qry {
			_, sideEff = m.Get(v)
		}
	}
}

func BenchmarkHashMap_Get(b *testing.B) {
	all, qry := benchValues(b)
	m := hashmap.NewSized[int, struct{}](bAddN)
	for _, v := range all {
		m.Set(v, struct{}{})
	}
	b.ResetTimer()
	for range b.N {
		for _, v := range qry {
			_, sideEff = m.Get(v)
		}
	}
}

func BenchmarkBSTree_InsertRemove(b *testing.B) {
	all, _ := benchValues(b)
	for range b.N {
		tree := New[int]()
		for _, v := range all {
			tree.Insert(v)
		}
		for _, v := range all {
			tree.Remove(v)
		}
	}
}

func BenchmarkArrTree_InsertRemove(b *testing.B) {
	all, _ := benchValues(b)
	tree := NewArrTree[int, uint32](bAddN)
	for range b.N {
		for _, v := range all {
			tree.Insert(v)
		}
		for _, v := range all {
			tree.Remove(v)
		}
	}
}
