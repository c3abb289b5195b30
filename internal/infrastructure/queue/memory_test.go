package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navdb-service/pkg/logger"
)

func TestMemoryQueue_DeliversInOrder(t *testing.T) {
	q := NewMemoryFileQueue(8, logger.NewNop())
	defer q.Close()

	var mu sync.Mutex
	var got []uint
	done := make(chan struct{})

	require.NoError(t, q.Start(context.Background(), func(ctx context.Context, fileID uint) error {
		mu.Lock()
		got = append(got, fileID)
		n := len(got)
		mu.Unlock()
		if n == 3 {
			close(done)
		}
		return nil
	}))

	ctx := context.Background()
	require.NoError(t, q.Enqueue(ctx, 1))
	require.NoError(t, q.Enqueue(ctx, 2))
	require.NoError(t, q.Enqueue(ctx, 3))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("jobs not delivered")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []uint{1, 2, 3}, got)
}

func TestMemoryQueue_HandlerErrorDoesNotStopWorker(t *testing.T) {
	q := NewMemoryFileQueue(8, logger.NewNop())
	defer q.Close()

	done := make(chan uint, 2)
	require.NoError(t, q.Start(context.Background(), func(ctx context.Context, fileID uint) error {
		done <- fileID
		if fileID == 1 {
			return errors.New("boom")
		}
		return nil
	}))

	ctx := context.Background()
	require.NoError(t, q.Enqueue(ctx, 1))
	require.NoError(t, q.Enqueue(ctx, 2))

	for want := uint(1); want <= 2; want++ {
		select {
		case got := <-done:
			assert.Equal(t, want, got)
		case <-time.After(2 * time.Second):
			t.Fatalf("job %d not delivered", want)
		}
	}
}

func TestMemoryQueue_EnqueueHonorsContext(t *testing.T) {
	q := NewMemoryFileQueue(1, logger.NewNop())
	defer q.Close()

	// Fill the buffer; no worker is running.
	require.NoError(t, q.Enqueue(context.Background(), 1))
	assert.Equal(t, 1, q.Pending())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := q.Enqueue(ctx, 2)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMemoryQueue_CloseIsIdempotent(t *testing.T) {
	q := NewMemoryFileQueue(1, logger.NewNop())
	require.NoError(t, q.Close())
	require.NoError(t, q.Close())
}

func TestMemoryQueue_EnqueueAfterCloseErrors(t *testing.T) {
	q := NewMemoryFileQueue(1, logger.NewNop())
	require.NoError(t, q.Close())

	err := q.Enqueue(context.Background(), 1)
	assert.ErrorIs(t, err, ErrQueueClosed)
}
