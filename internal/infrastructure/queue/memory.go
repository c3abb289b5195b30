package queue

import (
	"context"
	"errors"
	"sync"

	"navdb-service/internal/domain/repository"
	"navdb-service/pkg/logger"
)

// ErrQueueClosed is returned by Enqueue after the queue has been closed.
var ErrQueueClosed = errors.New("file queue is closed")

// MemoryFileQueue is a channel-backed queue for tests and single-process
// deployments without a broker.
type MemoryFileQueue struct {
	jobs chan uint
	log  logger.Logger

	mu     sync.RWMutex
	closed bool
}

// NewMemoryFileQueue creates an in-process queue with a bounded buffer.
func NewMemoryFileQueue(size int, log logger.Logger) *MemoryFileQueue {
	return &MemoryFileQueue{
		jobs: make(chan uint, size),
		log:  log,
	}
}

// Enqueue hands a file ID to the worker, blocking if the buffer is full.
// The read lock spans the send so Close cannot close the channel under a
// pending Enqueue.
func (q *MemoryFileQueue) Enqueue(ctx context.Context, fileID uint) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return ErrQueueClosed
	}
	select {
	case q.jobs <- fileID:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Start runs a worker goroutine until the context ends or the queue closes.
func (q *MemoryFileQueue) Start(ctx context.Context, handler repository.FileHandler) error {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case fileID, ok := <-q.jobs:
				if !ok {
					return
				}
				if err := handler(ctx, fileID); err != nil {
					q.log.Error("File processing failed", "fileID", fileID, "error", err)
				}
			}
		}
	}()
	return nil
}

// Close stops the worker after the buffer drains.
func (q *MemoryFileQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
	return nil
}

// Pending reports how many jobs are waiting, for tests.
func (q *MemoryFileQueue) Pending() int {
	return len(q.jobs)
}
