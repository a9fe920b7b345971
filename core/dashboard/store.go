package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/campusunite/backend/core"
)

var nowFunc = time.Now // mockable

// Store owns the State of a single dashboard.
// Dispatches are serialized: each one is reduced, swapped in and notified before the next starts.
// The Notifier is called with the Store locked, so it must not dispatch back into the Store.
type Store struct {
	id       string
	notifier core.Notifier

	mu     sync.Mutex
	state  State
	closed bool
}

func NewStore(id string, initial State, notifier core.Notifier) *Store {
	if notifier == nil {
		notifier = core.NotifierFunc(func(context.Context, ...core.Notification) {})
	}
	return &Store{
		id:       id,
		notifier: notifier,
		state:    initial.Clone(),
	}
}

func (st *Store) ID() string {
	return st.id
}

// State returns a copy of the current State.
func (st *Store) State() State {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state.Clone()
}

// Dispatch reduces `action` into the current State.
// The returned State is a copy of the State after the dispatch.
func (st *Store) Dispatch(ctx context.Context, action Action) (State, []core.Notification, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.closed {
		return st.state.Clone(), nil, ErrSessionNotFound
	}

	next, notifications, err := Reduce(st.state, action)
	if err != nil {
		return st.state.Clone(), nil, err
	}
	st.state = next

	if len(notifications) > 0 {
		now := nowFunc().UTC()
		for i := range notifications {
			notifications[i].SessionID = st.id
			notifications[i].CreatedAt = now
		}
		st.notifier.Notify(ctx, notifications...)
	}
	return st.state.Clone(), notifications, nil
}

// Close rejects every later dispatch with ErrSessionNotFound.
// It waits for a running dispatch, so nothing is notified once Close returns.
func (st *Store) Close() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.closed = true
}

func (st *Store) CompleteOnboarding(ctx context.Context, p Profile) (State, []core.Notification, error) {
	return st.Dispatch(ctx, CompleteOnboarding{Profile: p})
}

func (st *Store) ToggleRSVP(ctx context.Context, eventID string) (State, []core.Notification, error) {
	return st.Dispatch(ctx, ToggleRSVP{EventID: eventID})
}

func (st *Store) ToggleBookmark(ctx context.Context, eventID string) (State, []core.Notification, error) {
	return st.Dispatch(ctx, ToggleBookmark{EventID: eventID})
}

func (st *Store) ToggleReminder(ctx context.Context, eventID string) (State, []core.Notification, error) {
	return st.Dispatch(ctx, ToggleReminder{EventID: eventID})
}

func (st *Store) SetActivePage(ctx context.Context, page Page) (State, []core.Notification, error) {
	return st.Dispatch(ctx, SetActivePage{Page: page})
}

func (st *Store) ToggleSidebar(ctx context.Context) (State, []core.Notification, error) {
	return st.Dispatch(ctx, ToggleSidebar{})
}
