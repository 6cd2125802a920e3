package activity

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Publisher receives every entry the outbox managed to persist.
// The websocket hub implements this.
type Publisher interface {
	Publish(entry Activity)
}

// Outbox decouples history writes from the mutations that trigger
// them. Entries go onto a buffered channel and a background worker
// inserts them with bounded retry, so a slow or briefly unavailable
// store never blocks or fails the primary mutation. A full buffer
// drops the entry with a warning; history stays best-effort.
type Outbox struct {
	repo      ActivityRepository
	logger    *zap.Logger
	publisher Publisher

	entries chan Activity
	wg      sync.WaitGroup

	closeOnce sync.Once
}

const (
	outboxBuffer   = 1000
	outboxAttempts = 3
	outboxBackoff  = 250 * time.Millisecond
)

func NewOutbox(repo ActivityRepository, logger *zap.Logger, publisher Publisher) *Outbox {
	o := &Outbox{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
		entries:   make(chan Activity, outboxBuffer),
	}

	o.wg.Add(1)
	go o.process()

	return o
}

// Enqueue hands an entry to the background worker. Never blocks.
func (o *Outbox) Enqueue(entry Activity) {
	select {
	case o.entries <- entry:
	default:
		o.logger.Warn("activity outbox full, dropping entry",
			zap.String("type", string(entry.Type)),
			zap.String("owner_id", entry.OwnerID))
	}
}

func (o *Outbox) process() {
	defer o.wg.Done()

	for entry := range o.entries {
		if err := o.insertWithRetry(entry); err != nil {
			o.logger.Error("activity entry lost after retries",
				zap.String("type", string(entry.Type)),
				zap.String("owner_id", entry.OwnerID),
				zap.Error(err))
			continue
		}
		if o.publisher != nil {
			o.publisher.Publish(entry)
		}
	}
}

func (o *Outbox) insertWithRetry(entry Activity) error {
	var err error
	for attempt := 1; attempt <= outboxAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = o.repo.Create(ctx, &entry)
		cancel()
		if err == nil {
			return nil
		}
		time.Sleep(outboxBackoff * time.Duration(attempt))
	}
	return err
}

// Close drains pending entries and stops the worker.
func (o *Outbox) Close() {
	o.closeOnce.Do(func() {
		close(o.entries)
	})
	o.wg.Wait()
}
