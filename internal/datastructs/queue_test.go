package queue_test

import (
	"context"
	"testing"
	"time"

	datastructs "github.com/XJIeI5/infixcalc/internal/datastructs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueOrder(t *testing.T) {
	q := datastructs.NewQueue[int](3)
	for i := 1; i <= 3; i++ {
		require.NoError(t, q.Enqueue(i))
	}
	assert.Equal(t, 3, q.Len())

	for i := 1; i <= 3; i++ {
		v, err := q.Dequeue(context.Background())
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
	assert.Equal(t, 0, q.Len())
}

func TestQueueFull(t *testing.T) {
	q := datastructs.NewQueue[string](1)
	require.NoError(t, q.Enqueue("a"))
	assert.ErrorIs(t, q.Enqueue("b"), datastructs.ErrQueueFull)
	assert.Equal(t, 1, q.Cap())
}

func TestDequeueCancelled(t *testing.T) {
	q := datastructs.NewQueue[int](1)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := q.Dequeue(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDequeueWaitsForValue(t *testing.T) {
	q := datastructs.NewQueue[int](1)
	go func() {
		time.Sleep(5 * time.Millisecond)
		_ = q.Enqueue(42)
	}()

	v, err := q.Dequeue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}
