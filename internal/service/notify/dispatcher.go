// Package notify delivers match notifications to report owners.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
)

const (
	defaultWorkers   = 4
	defaultQueueSize = 256
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type claimer interface {
	ClaimNotification(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
}

type sender interface {
	Notify(ctx context.Context, userID uuid.UUID, summary domain.MatchSummary) error
}

// ---------------------------------------------------------------------------
// Dispatcher
// ---------------------------------------------------------------------------

// Stats is a snapshot of the dispatcher counters.
type Stats struct {
	Queued   int64 `json:"queued"`
	Sent     int64 `json:"sent"`
	Failed   int64 `json:"failed"`
	Dropped  int64 `json:"dropped"`
	Skipped  int64 `json:"skipped"`
	QueueLen int   `json:"queue_len"`
	QueueCap int   `json:"queue_cap"`
}

// Dispatcher queues newly created matches and delivers them from a fixed
// pool of workers. Every delivery first claims the match, so a match is
// sent at most once however many times it is enqueued. Failed sends are
// counted and logged, never retried.
type Dispatcher struct {
	log     *slog.Logger
	claimer claimer
	sender  sender
	workers int
	now     func() time.Time

	mu     sync.RWMutex
	closed bool
	queue  chan domain.NotificationTarget
	wg     sync.WaitGroup

	queued  atomic.Int64
	sent    atomic.Int64
	failed  atomic.Int64
	dropped atomic.Int64
	skipped atomic.Int64
}

// NewDispatcher creates a dispatcher. Non-positive sizes fall back to defaults.
func NewDispatcher(logger *slog.Logger, claimer claimer, sender sender, workers, queueSize int) *Dispatcher {
	if workers <= 0 {
		workers = defaultWorkers
	}
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &Dispatcher{
		log:     logger.With("service", "notify"),
		claimer: claimer,
		sender:  sender,
		workers: workers,
		now:     time.Now,
		queue:   make(chan domain.NotificationTarget, queueSize),
	}
}

// Start launches the workers. They run until Close is called; ctx is
// passed to every delivery.
func (d *Dispatcher) Start(ctx context.Context) {
	for i := range d.workers {
		d.wg.Add(1)
		go func(idx int) {
			defer d.wg.Done()
			for t := range d.queue {
				if err := d.Deliver(ctx, t); err != nil {
					d.log.ErrorContext(ctx, "notification delivery failed",
						slog.Int("worker", idx),
						slog.String("match_id", t.Match.ID.String()),
						slog.String("error", err.Error()),
					)
				}
			}
		}(i)
	}
}

// Enqueue adds t to the queue without blocking. It returns false when the
// queue is full or the dispatcher is closed.
func (d *Dispatcher) Enqueue(t domain.NotificationTarget) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.dropped.Add(1)
		return false
	}
	select {
	case d.queue <- t:
		d.queued.Add(1)
		return true
	default:
		d.dropped.Add(1)
		return false
	}
}

// Deliver claims the match and notifies both owners. A match already
// claimed elsewhere is skipped without error.
func (d *Dispatcher) Deliver(ctx context.Context, t domain.NotificationTarget) error {
	claimed, err := d.claimer.ClaimNotification(ctx, t.Match.ID, d.now())
	if err != nil {
		d.failed.Add(1)
		return fmt.Errorf("claim notification: %w", err)
	}
	if !claimed {
		d.skipped.Add(1)
		return nil
	}

	var errs []error
	for _, r := range t.Recipients() {
		if err := d.sender.Notify(ctx, r.UserID, r.Summary); err != nil {
			errs = append(errs, fmt.Errorf("notify user %s: %w", r.UserID, err))
		}
	}
	if len(errs) > 0 {
		d.failed.Add(1)
		return errors.Join(errs...)
	}

	d.sent.Add(1)
	d.log.DebugContext(ctx, "match notified", slog.String("match_id", t.Match.ID.String()))
	return nil
}

// Close stops accepting work and waits for queued deliveries to finish.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
}

// Stats returns the current counters.
func (d *Dispatcher) Stats() Stats {
	return Stats{
		Queued:   d.queued.Load(),
		Sent:     d.sent.Load(),
		Failed:   d.failed.Load(),
		Dropped:  d.dropped.Load(),
		Skipped:  d.skipped.Load(),
		QueueLen: len(d.queue),
		QueueCap: cap(d.queue),
	}
}
