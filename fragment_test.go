package fragmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwissDictBasics(t *testing.T) {
	d := newSwissDict[string, int]()
	_, ok := d.Get("a")
	assert.False(t, ok)

	d.Put("a", 1)
	v, ok := d.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, d.Len())

	d.Delete("a")
	_, ok = d.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, d.Len())
}

func TestSwissDictRangeCanStopEarly(t *testing.T) {
	d := newSwissDict[int, int]()
	for i := 0; i < 10; i++ {
		d.Put(i, i*i)
	}
	visited := 0
	d.Range(func(k, v int) bool {
		visited++
		return visited < 3
	})
	assert.Equal(t, 3, visited)
}

func TestBranchFragmentInheritsParentSize(t *testing.T) {
	root := newRootFragment[string, int]()
	root.entries.Put("a", 1)
	root.size = 1

	leaf := branchFragment(root)
	assert.Equal(t, 1, leaf.size)
	assert.Same(t, root, leaf.parent)
}

func TestVisibleInAncestors(t *testing.T) {
	root := newRootFragment[string, int]()
	root.entries.Put("a", 1)
	root.size = 1

	mid := branchFragment(root)
	leaf := branchFragment(mid)

	assert.True(t, visibleInAncestors(leaf, "a"))
	assert.False(t, visibleInAncestors(leaf, "b"))

	mid.tomb.Put("a", struct{}{})
	assert.False(t, visibleInAncestors(leaf, "a"))
}
