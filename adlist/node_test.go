package adlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeAccessors(t *testing.T) {
	l, err := FromSlice([]int{1, 2, 3})
	require.NoError(t, err)

	n := l.First()
	require.Equal(t, 1, n.NodeValue())
	require.Equal(t, 2, n.Next().NodeValue())
	require.Nil(t, n.Prev())
	require.Same(t, n, n.Next().Prev())
	require.Equal(t, "Node(1)", n.String())

	n.SetNodeValue(9)
	require.Equal(t, 9, l.head.value)

	var nilNode *Node[int]
	require.Equal(t, 0, nilNode.NodeValue())
	require.Nil(t, nilNode.Next())
	require.Nil(t, nilNode.Prev())
}

func collect[T comparable](iter *ListIter[T]) []T {
	out := []T{}
	for n := iter.Next(); n != nil; n = iter.Next() {
		out = append(out, n.NodeValue())
	}
	return out
}

func TestIterator(t *testing.T) {
	l, err := FromSlice([]int{1, 2, 3})
	require.NoError(t, err)

	require.Equal(t, []int{1, 2, 3}, collect(l.Iterator(AlStartHead)))
	require.Equal(t, []int{3, 2, 1}, collect(l.Iterator(AlStartTail)))

	// iteration does not mutate the list
	checkList(t, l, []int{1, 2, 3})

	// a fresh call restarts from the boundary
	iter := l.Iterator(AlStartHead)
	require.Equal(t, 1, iter.Next().NodeValue())
	require.Equal(t, []int{1, 2, 3}, collect(l.Iterator(AlStartHead)))

	// an exhausted iterator stays exhausted
	require.Equal(t, []int{2, 3}, collect(iter))
	require.Nil(t, iter.Next())
	require.Nil(t, iter.Next())
}

func TestIteratorEmpty(t *testing.T) {
	l := Create[int]()
	require.Equal(t, []int{}, collect(l.Iterator(AlStartHead)))
	require.Equal(t, []int{}, collect(l.Iterator(AlStartTail)))
}
