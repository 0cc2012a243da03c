package adlist

// FIFO facade: enqueue at the tail, dequeue at the head.

func (l *List[T]) Enqueue(value T) error {
	return l.AddNodeTail(value)
}

// Dequeue removes and returns the head value.
func (l *List[T]) Dequeue() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	value := l.head.value
	l.delHead()
	return value, nil
}

// PeekFront returns the head value without removing it.
func (l *List[T]) PeekFront() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return l.head.value, nil
}

// PeekRear returns the tail value without removing it.
func (l *List[T]) PeekRear() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return l.tail.value, nil
}
