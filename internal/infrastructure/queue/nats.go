// Package queue provides the file-import job queue: a NATS transport for
// deployments and an in-process channel queue for tests and single-node runs.
package queue

import (
	"context"
	"strconv"

	"github.com/nats-io/nats.go"

	"navdb-service/internal/domain/repository"
	"navdb-service/pkg/logger"
)

// NatsFileQueue publishes and consumes file IDs over a NATS subject.
type NatsFileQueue struct {
	conn    *nats.Conn
	subject string
	sub     *nats.Subscription
	log     logger.Logger
}

// NewNatsFileQueue connects to NATS.
func NewNatsFileQueue(url, subject string, log logger.Logger) (*NatsFileQueue, error) {
	conn, err := nats.Connect(url, nats.Name("navdb-service"))
	if err != nil {
		return nil, err
	}
	return &NatsFileQueue{
		conn:    conn,
		subject: subject,
		log:     log,
	}, nil
}

// Enqueue publishes a file ID for asynchronous processing. Publish itself is
// non-blocking, so cancellation is only checked up front.
func (q *NatsFileQueue) Enqueue(ctx context.Context, fileID uint) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return q.conn.Publish(q.subject, []byte(strconv.FormatUint(uint64(fileID), 10)))
}

// Start subscribes to the subject and drives the handler. Handler errors are
// logged; the job's outcome is persisted on the file record, so the message
// is not redelivered by us.
func (q *NatsFileQueue) Start(ctx context.Context, handler repository.FileHandler) error {
	sub, err := q.conn.Subscribe(q.subject, func(msg *nats.Msg) {
		id, err := strconv.ParseUint(string(msg.Data), 10, 64)
		if err != nil {
			q.log.Error("Discarding malformed queue message", "data", string(msg.Data))
			return
		}
		if err := handler(ctx, uint(id)); err != nil {
			q.log.Error("File processing failed", "fileID", id, "error", err)
		}
	})
	if err != nil {
		return err
	}
	q.sub = sub
	return nil
}

// Close drains the subscription and closes the connection.
func (q *NatsFileQueue) Close() error {
	if q.sub != nil {
		if err := q.sub.Drain(); err != nil {
			return err
		}
	}
	q.conn.Close()
	return nil
}
