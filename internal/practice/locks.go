package practice

import (
	"context"
	"sync"
	"time"
)

// sessionLocks serializes mutating operations per session id. Each id
// owns a one-slot channel; holding the slot is holding the lock. Slots
// are never removed: the learner count is one, so the map stays tiny.
type sessionLocks struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{slots: make(map[string]chan struct{})}
}

// acquire takes the session's lock, waiting at most wait. The returned
// release must be called exactly once.
func (l *sessionLocks) acquire(ctx context.Context, id string, wait time.Duration) (func(), error) {
	l.mu.Lock()
	slot, ok := l.slots[id]
	if !ok {
		slot = make(chan struct{}, 1)
		l.slots[id] = slot
	}
	l.mu.Unlock()

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case slot <- struct{}{}:
		return func() { <-slot }, nil
	case <-timer.C:
		return nil, &ErrBusy{SessionID: id}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
