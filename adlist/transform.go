package adlist

import (
	"sort"

	"github.com/pengdafu/dlist-golang/util"
)

// Reverse inverts the chain in place: every node swaps its links, then head
// and tail trade places. O(n) time, no allocation.
func (l *List[T]) Reverse() error {
	if l.len == 0 {
		return ErrEmptyList
	}
	// after the swap, prev holds the old next
	for n := l.head; n != nil; n = n.prev {
		n.next, n.prev = n.prev, n.next
	}
	l.head, l.tail = l.tail, l.head
	return nil
}

// Clone returns an independent list holding the same values in the same
// order. No nodes are shared; mutating either list never touches the other.
func (l *List[T]) Clone() *List[T] {
	clone := Create[T]()
	for n := l.head; n != nil; n = n.next {
		clone.pushTail(n.value)
	}
	return clone
}

// Sort orders the values ascending, or descending when asked. Values are
// extracted, ordered with a stable sort, and reinserted. It fails with
// ErrEmptyList on an empty list and ErrIncomparable when the values share
// no total order; on failure the list is untouched.
func (l *List[T]) Sort(descending bool) error {
	if l.len == 0 {
		return ErrEmptyList
	}
	values := l.ToSlice()
	for i := 1; i < len(values); i++ {
		if _, ok := util.Compare(values[0], values[i]); !ok {
			return ErrIncomparable
		}
	}
	sort.SliceStable(values, func(i, j int) bool {
		c, _ := util.Compare(values[i], values[j])
		if descending {
			return c > 0
		}
		return c < 0
	})
	l.Clear()
	for _, v := range values {
		l.pushTail(v)
	}
	return nil
}

// RemoveDuplicates keeps the first occurrence of each distinct value,
// preserving order, and rebuilds the chain from the survivors.
func (l *List[T]) RemoveDuplicates() error {
	if l.len == 0 {
		return ErrEmptyList
	}
	seen := make(map[T]struct{}, l.len)
	kept := make([]T, 0, l.len)
	for n := l.head; n != nil; n = n.next {
		if _, dup := seen[n.value]; dup {
			continue
		}
		seen[n.value] = struct{}{}
		kept = append(kept, n.value)
	}
	l.Clear()
	for _, v := range kept {
		l.pushTail(v)
	}
	return nil
}
