package adlist

import "fmt"

// Node is a single unit of the chain. It holds one value and non-owning
// links to its neighbours; only the owning List mutates the links.
type Node[T comparable] struct {
	prev  *Node[T]
	next  *Node[T]
	value T
}

func (n *Node[T]) NodeValue() T {
	if n == nil {
		var zero T
		return zero
	}
	return n.value
}

func (n *Node[T]) SetNodeValue(value T) {
	n.value = value
}

func (n *Node[T]) Next() *Node[T] {
	if n == nil {
		return nil
	}
	return n.next
}

func (n *Node[T]) Prev() *Node[T] {
	if n == nil {
		return nil
	}
	return n.prev
}

func (n *Node[T]) String() string {
	return fmt.Sprintf("Node(%v)", n.NodeValue())
}

const (
	AlStartHead = 0
	AlStartTail = 1
)

// ListIter walks the chain in one direction. Every call to List.Iterator
// returns a fresh iterator, so iteration is restartable and never mutates
// the list.
type ListIter[T comparable] struct {
	next      *Node[T]
	direction int
}

func (iter *ListIter[T]) Next() *Node[T] {
	cur := iter.next
	if cur != nil {
		if iter.direction == AlStartHead {
			iter.next = cur.next
		} else {
			iter.next = cur.prev
		}
	}
	return cur
}
