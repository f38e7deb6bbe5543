package queue

import (
	"context"
	"errors"
)

var ErrQueueFull = errors.New("queue is full")

// Queue is a bounded FIFO safe for use by many producers and consumers.
type Queue[T any] struct {
	data chan T
}

func NewQueue[T any](size int) *Queue[T] {
	return &Queue[T]{data: make(chan T, size)}
}

// Enqueue never blocks; it fails with ErrQueueFull when there is no room.
func (q *Queue[T]) Enqueue(value T) error {
	select {
	case q.data <- value:
		return nil
	default:
		return ErrQueueFull
	}
}

// Dequeue waits for a value until ctx is done.
func (q *Queue[T]) Dequeue(ctx context.Context) (T, error) {
	var res T
	select {
	case res = <-q.data:
		return res, nil
	case <-ctx.Done():
		return res, ctx.Err()
	}
}

func (q *Queue[T]) Len() int {
	return len(q.data)
}

func (q *Queue[T]) Cap() int {
	return cap(q.data)
}
