package services

import (
	"slices"
	"sync"

	"github.com/joshua-takyi/live/internal/session"
)

// SaveQueue moves persistence off the state lock. Enqueue is registered as
// the session change hook and only records the change; a single writer
// goroutine performs the store I/O in commit order.
//
// Changes that pile up while a write is in flight coalesce: the newest
// snapshot is written for the union of their scopes.
type SaveQueue struct {
	persister *Persister

	mu      sync.Mutex
	pending *session.Change
	closed  bool

	wakeChan chan struct{}
	doneChan chan struct{}
}

func NewSaveQueue(persister *Persister) *SaveQueue {
	q := &SaveQueue{
		persister: persister,
		wakeChan:  make(chan struct{}, 1),
		doneChan:  make(chan struct{}),
	}
	go q.writeLoop()
	return q
}

// Enqueue never blocks on the store.
func (q *SaveQueue) Enqueue(change session.Change) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		q.persister.logger.Warn("save queue closed, dropping change", "scopes", change.Scopes)
		return
	}

	if q.pending == nil {
		q.pending = &session.Change{Scopes: slices.Clone(change.Scopes), Snapshot: change.Snapshot}
	} else {
		q.pending.Snapshot = change.Snapshot
		for _, s := range change.Scopes {
			if !q.pending.Has(s) {
				q.pending.Scopes = append(q.pending.Scopes, s)
			}
		}
	}

	select {
	case q.wakeChan <- struct{}{}:
	default:
	}
}

// Close stops accepting changes and waits until everything enqueued so far
// has been written.
func (q *SaveQueue) Close() {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.wakeChan)
	}
	q.mu.Unlock()
	<-q.doneChan
}

func (q *SaveQueue) writeLoop() {
	defer close(q.doneChan)
	for range q.wakeChan {
		for {
			change, ok := q.take()
			if !ok {
				break
			}
			q.persister.Save(change)
		}
	}
}

func (q *SaveQueue) take() (session.Change, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.pending == nil {
		return session.Change{}, false
	}
	c := *q.pending
	q.pending = nil
	return c, true
}
