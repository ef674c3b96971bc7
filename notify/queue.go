package notify

import (
	"context"
	"log"
	"sync"

	"github.com/stsysd/tasktrack/model"
)

// DefaultQueueSize is the buffer used when NewQueue is given a non-positive size.
const DefaultQueueSize = 64

type job struct {
	ctx           context.Context
	notifications []*model.Notification
}

// Queue hands notifications to another Notifier on a single background
// worker. Batches are delivered in the order they were queued.
type Queue struct {
	next Notifier
	jobs chan job
	done chan struct{}

	mu     sync.RWMutex
	closed bool
}

// NewQueue starts a worker that forwards batches to next.
func NewQueue(next Notifier, size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	q := &Queue{
		next: next,
		jobs: make(chan job, size),
		done: make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *Queue) run() {
	defer close(q.done)
	for j := range q.jobs {
		q.next.Notify(j.ctx, j.notifications)
	}
}

// Notify queues the batch. The request context is detached so that delivery
// survives the end of the request. After Close the batch is delivered
// synchronously.
func (q *Queue) Notify(ctx context.Context, notifications []*model.Notification) {
	if len(notifications) == 0 {
		return
	}
	ctx = context.WithoutCancel(ctx)

	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		log.Printf("Notification queue closed, delivering %d notification(s) inline", len(notifications))
		q.next.Notify(ctx, notifications)
		return
	}
	q.jobs <- job{ctx: ctx, notifications: notifications}
}

// Close stops accepting batches and waits until queued ones are delivered.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		<-q.done
		return
	}
	q.closed = true
	close(q.jobs)
	q.mu.Unlock()
	<-q.done
}
