// Package adlist implements a generic doubly linked list with positional,
// value-based and dual-ended (stack/queue) access.
package adlist

import (
	"fmt"
	"strings"

	"github.com/pengdafu/dlist-golang/util"
)

// List chains nodes between head and tail with nil boundary links. It owns
// every node it links; after every exported operation returns, head, tail
// and len agree with the chain in both directions.
type List[T comparable] struct {
	head, tail *Node[T]
	len        int
}

func Create[T comparable]() *List[T] {
	return new(List[T])
}

// FromSlice builds a list holding the values of s in order. It fails with
// ErrInvalidValue on the first nil value and returns no list.
func FromSlice[T comparable](s []T) (*List[T], error) {
	l := Create[T]()
	for _, v := range s {
		if err := l.AddNodeTail(v); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (l *List[T]) Len() int {
	return l.len
}

func (l *List[T]) Empty() bool {
	return l.len == 0
}

func (l *List[T]) First() *Node[T] {
	return l.head
}

func (l *List[T]) Last() *Node[T] {
	return l.tail
}

// Clear resets the list to empty. Unlinked nodes are left to the collector.
func (l *List[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.len = 0
}

// validateValue rejects the "no value" sentinel: a nil interface or a typed
// nil held in an interface-kinded T. Link fields are the only place nil is
// meaningful; it is never a payload.
func validateValue[T comparable](value T) error {
	if util.IsNil(value) {
		return ErrInvalidValue
	}
	return nil
}

func (l *List[T]) AddNodeHead(value T) error {
	if err := validateValue(value); err != nil {
		return err
	}
	node := &Node[T]{value: value}
	if l.len == 0 {
		l.head = node
		l.tail = node
	} else {
		node.next = l.head
		l.head.prev = node
		l.head = node
	}
	l.len++
	return nil
}

func (l *List[T]) AddNodeTail(value T) error {
	if err := validateValue(value); err != nil {
		return err
	}
	l.pushTail(value)
	return nil
}

// pushTail appends without validation; callers reinserting values that are
// already in the list (Clone, Sort, RemoveDuplicates) go through here.
func (l *List[T]) pushTail(value T) {
	node := &Node[T]{value: value}
	if l.len == 0 {
		l.head = node
		l.tail = node
	} else {
		node.prev = l.tail
		l.tail.next = node
		l.tail = node
	}
	l.len++
}

// search returns the first node holding value, scanning from head.
func (l *List[T]) search(value T) *Node[T] {
	for n := l.head; n != nil; n = n.next {
		if n.value == value {
			return n
		}
	}
	return nil
}

// InsertAfter splices a node holding value right after the first node that
// holds target. It fails with ErrTargetNotFound when target is absent and
// with ErrInvalidValue when either value is nil.
func (l *List[T]) InsertAfter(target, value T) error {
	if err := validateValue(target); err != nil {
		return err
	}
	if err := validateValue(value); err != nil {
		return err
	}
	at := l.search(target)
	if at == nil {
		return fmt.Errorf("%w: %v", ErrTargetNotFound, target)
	}
	node := &Node[T]{value: value}
	if at.next == nil {
		node.prev = at
		at.next = node
		l.tail = node
	} else {
		node.next = at.next
		node.prev = at
		at.next.prev = node
		at.next = node
	}
	l.len++
	return nil
}

// InsertBefore is the mirror of InsertAfter.
func (l *List[T]) InsertBefore(target, value T) error {
	if err := validateValue(target); err != nil {
		return err
	}
	if err := validateValue(value); err != nil {
		return err
	}
	at := l.search(target)
	if at == nil {
		return fmt.Errorf("%w: %v", ErrTargetNotFound, target)
	}
	node := &Node[T]{value: value}
	if at.prev == nil {
		node.next = at
		at.prev = node
		l.head = node
	} else {
		node.prev = at.prev
		node.next = at
		at.prev.next = node
		at.prev = node
	}
	l.len++
	return nil
}

func (l *List[T]) DelNodeHead() error {
	if l.len == 0 {
		return ErrEmptyList
	}
	l.delHead()
	return nil
}

func (l *List[T]) DelNodeTail() error {
	if l.len == 0 {
		return ErrEmptyList
	}
	l.delTail()
	return nil
}

func (l *List[T]) delHead() {
	node := l.head
	if l.len == 1 {
		l.head = nil
		l.tail = nil
	} else {
		l.head = node.next
		l.head.prev = nil
	}
	node.prev = nil
	node.next = nil
	l.len--
}

func (l *List[T]) delTail() {
	node := l.tail
	if l.len == 1 {
		l.head = nil
		l.tail = nil
	} else {
		l.tail = node.prev
		l.tail.next = nil
	}
	node.prev = nil
	node.next = nil
	l.len--
}

// unlink removes a node known to be on the chain. Boundary nodes go through
// the head/tail paths, interior nodes are spliced out directly.
func (l *List[T]) unlink(node *Node[T]) {
	switch {
	case node.prev == nil:
		l.delHead()
	case node.next == nil:
		l.delTail()
	default:
		node.prev.next = node.next
		node.next.prev = node.prev
		node.prev = nil
		node.next = nil
		l.len--
	}
}

// DelValue removes the first node holding value, scanning from head. It
// fails with ErrEmptyList on an empty list and ErrValueNotFound when no
// node matches.
func (l *List[T]) DelValue(value T) error {
	if err := validateValue(value); err != nil {
		return err
	}
	if l.len == 0 {
		return ErrEmptyList
	}
	node := l.search(value)
	if node == nil {
		return fmt.Errorf("%w: %v", ErrValueNotFound, value)
	}
	l.unlink(node)
	return nil
}

// DelAt removes the node at a zero-based position.
func (l *List[T]) DelAt(position int) error {
	if l.len == 0 {
		return ErrEmptyList
	}
	node, err := l.nodeAt(position)
	if err != nil {
		return err
	}
	l.unlink(node)
	return nil
}

// nodeAt resolves a zero-based position, walking from whichever end is
// closer so a lookup never crosses more than half the chain.
func (l *List[T]) nodeAt(position int) (*Node[T], error) {
	if position < 0 || position >= l.len {
		return nil, fmt.Errorf("%w: position %d, size %d", ErrOutOfRange, position, l.len)
	}
	var n *Node[T]
	if position > l.len/2 {
		n = l.tail
		for i := l.len - 1; i > position; i-- {
			n = n.prev
		}
	} else {
		n = l.head
		for i := 0; i < position; i++ {
			n = n.next
		}
	}
	return n, nil
}

// Index returns the node at the given index. Negative indices count from
// the tail, -1 being the last node.
func (l *List[T]) Index(index int) (*Node[T], error) {
	pos := index
	if pos < 0 {
		pos += l.len
	}
	if pos < 0 || pos >= l.len {
		return nil, fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, index, l.len)
	}
	return l.nodeAt(pos)
}

func (l *List[T]) Get(index int) (T, error) {
	node, err := l.Index(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return node.value, nil
}

func (l *List[T]) Set(index int, value T) error {
	if err := validateValue(value); err != nil {
		return err
	}
	node, err := l.Index(index)
	if err != nil {
		return err
	}
	node.value = value
	return nil
}

func (l *List[T]) Contains(value T) (bool, error) {
	if err := validateValue(value); err != nil {
		return false, err
	}
	return l.search(value) != nil, nil
}

// ToSlice materializes the values in forward order. An empty list yields an
// empty slice, never nil.
func (l *List[T]) ToSlice() []T {
	s := make([]T, 0, l.len)
	for n := l.head; n != nil; n = n.next {
		s = append(s, n.value)
	}
	return s
}

// Equal reports whether both lists hold pairwise-equal values in the same
// order. A nil other is never equal.
func (l *List[T]) Equal(other *List[T]) bool {
	if other == nil || l.len != other.len {
		return false
	}
	a, b := l.head, other.head
	for a != nil {
		if a.value != b.value {
			return false
		}
		a, b = a.next, b.next
	}
	return true
}

func (l *List[T]) Iterator(direction int) *ListIter[T] {
	iter := &ListIter[T]{direction: direction}
	if direction == AlStartHead {
		iter.next = l.head
	} else {
		iter.next = l.tail
	}
	return iter
}

// String renders the values in forward order, e.g. [1, 2, 3].
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", n.value)
	}
	b.WriteByte(']')
	return b.String()
}

// GoString is the debug form: type plus current size.
func (l *List[T]) GoString() string {
	return fmt.Sprintf("List(size=%d)", l.len)
}
