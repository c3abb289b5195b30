package repository

import (
	"context"
)

// FileHandler processes one enqueued file by ID.
type FileHandler func(ctx context.Context, fileID uint) error

// FileQueue enqueues file-import jobs. Delivery is at-least-once; the
// processor tolerates redelivery of files already in a terminal state.
type FileQueue interface {
	Enqueue(ctx context.Context, fileID uint) error
}

// QueueConsumer drives a FileHandler from the queue until the context ends.
type QueueConsumer interface {
	Start(ctx context.Context, handler FileHandler) error
	Close() error
}
