package adlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStackScenario(t *testing.T) {
	s := Create[string]()
	require.NoError(t, s.Push("A"))
	require.NoError(t, s.Push("B"))
	require.NoError(t, s.Push("C"))

	top, err := s.Peek()
	require.NoError(t, err)
	require.Equal(t, "C", top)
	require.Equal(t, 3, s.Len())

	for _, want := range []string{"C", "B", "A"} {
		v, err := s.Pop()
		require.NoError(t, err)
		require.Equal(t, want, v)
	}

	_, err = s.Pop()
	require.ErrorIs(t, err, ErrEmptyStack)
	_, err = s.Peek()
	require.ErrorIs(t, err, ErrEmptyStack)
	checkList(t, s, nil)
}

func TestQueueScenario(t *testing.T) {
	q := Create[string]()
	require.NoError(t, q.Enqueue("First"))
	require.NoError(t, q.Enqueue("Second"))
	require.NoError(t, q.Enqueue("Third"))

	front, err := q.PeekFront()
	require.NoError(t, err)
	require.Equal(t, "First", front)
	rear, err := q.PeekRear()
	require.NoError(t, err)
	require.Equal(t, "Third", rear)

	for _, want := range []string{"First", "Second", "Third"} {
		v, err := q.Dequeue()
		require.NoError(t, err)
		require.Equal(t, want, v)
	}

	_, err = q.Dequeue()
	require.ErrorIs(t, err, ErrEmptyQueue)
	_, err = q.PeekFront()
	require.ErrorIs(t, err, ErrEmptyQueue)
	_, err = q.PeekRear()
	require.ErrorIs(t, err, ErrEmptyQueue)
	checkList(t, q, nil)
}

func TestFacadesShareTheList(t *testing.T) {
	// both facades drive the same chain: push then dequeue is FIFO,
	// push then pop is LIFO
	l := Create[int]()
	require.NoError(t, l.Push(1))
	require.NoError(t, l.Enqueue(2))

	v, err := l.Dequeue()
	require.NoError(t, err)
	require.Equal(t, 1, v)

	v, err = l.Pop()
	require.NoError(t, err)
	require.Equal(t, 2, v)
	checkList(t, l, nil)
}
