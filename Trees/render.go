package Trees

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/list"
)

// render draws the tree rooting at root. expand returns the value and the
// children of a node; none is the absent node. Children are prefixed by
// "L: " or "R: ".
func render[T any, N comparable](root N, expand func(N) (T, N, N), none N) string {
	if root == none {
		return ""
	}
	w := list.NewWriter()
	w.SetStyle(list.StyleConnectedLight)
	var add func(N, string)
	add = func(cur N, prefix string) {
		v, l, r := expand(cur)
		w.AppendItem(prefix + fmt.Sprint(v))
		if l == none && r == none {
			return
		}
		w.Indent()
		if l != none {
			add(l, "L: ")
		}
		if r != none {
			add(r, "R: ")
		}
		w.UnIndent()
	}
	add(root, "")
	return w.Render()
}
