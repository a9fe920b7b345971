package notifysvc

import (
	"context"
	"sync"

	"github.com/campusunite/backend/core"
)

// defaultFeedSize caps the pending toasts kept per session; the oldest ones are dropped first.
const defaultFeedSize = 50

// Feed keeps the toasts of each session until the client drains them.
type Feed struct {
	size int

	mu      sync.Mutex
	pending map[string][]core.Notification
}

var _ core.Notifier = (*Feed)(nil)

func NewFeed(size ...int) *Feed {
	n := defaultFeedSize
	if len(size) > 0 && size[0] > 0 {
		n = size[0]
	}
	return &Feed{
		size:    n,
		pending: make(map[string][]core.Notification),
	}
}

func (f *Feed) Notify(_ context.Context, notifications ...core.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, n := range notifications {
		queue := append(f.pending[n.SessionID], n)
		if over := len(queue) - f.size; over > 0 {
			queue = queue[over:]
		}
		f.pending[n.SessionID] = queue
	}
}

// Drain returns the pending toasts of the session, oldest first, and forgets them.
func (f *Feed) Drain(sessionID string) []core.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	queue := f.pending[sessionID]
	delete(f.pending, sessionID)
	if queue == nil {
		return []core.Notification{}
	}
	return queue
}

// Forget drops the pending toasts of the session.
func (f *Feed) Forget(_ context.Context, sessionID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.pending, sessionID)
}
