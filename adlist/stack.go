package adlist

// LIFO facade over the tail end.

func (l *List[T]) Push(value T) error {
	return l.AddNodeTail(value)
}

// Pop removes and returns the tail value.
func (l *List[T]) Pop() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, ErrEmptyStack
	}
	value := l.tail.value
	l.delTail()
	return value, nil
}

// Peek returns the tail value without removing it.
func (l *List[T]) Peek() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, ErrEmptyStack
	}
	return l.tail.value, nil
}
