package queue

import "github.com/pkg/errors"

var ErrQueueEmpty = errors.New("queue is empty")

// Queue is an unbounded FIFO. It is not safe for concurrent use.
type Queue[T any] struct {
	items []T
}

func New[T any](initialCap uint) *Queue[T] {
	return &Queue[T]{items: make([]T, 0, initialCap)}
}

func (q *Queue[T]) Enqueue(v T) {
	q.items = append(q.items, v)
}

func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if q.Len() == 0 {
		return zero, ErrQueueEmpty
	}

	v := q.items[0]
	// Drop the reference so the slot can be collected.
	q.items[0] = zero
	q.items = q.items[1:]

	return v, nil
}

// Drain removes and returns every queued element in FIFO order.
func (q *Queue[T]) Drain() []T {
	out := q.items
	q.items = nil
	return out
}

func (q *Queue[T]) Len() uint {
	return uint(len(q.items))
}
