package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/campusunite/backend/core"
	"github.com/campusunite/backend/core/event"
)

type (
	// Session is one dashboard instance.
	Session struct {
		ID        string
		Store     *Store
		CreatedAt time.Time // UTC
		LastSeen  time.Time // UTC
	}

	SessionRepository interface {
		CreateSession(ctx context.Context, sess Session) (Session, error)
		GetSession(ctx context.Context, id string) (Session, error)
		TouchSession(ctx context.Context, id string, at time.Time) error
		DeleteSession(ctx context.Context, id string) error
		// DeleteIdleSessions removes and returns the sessions last seen before `before`.
		DeleteIdleSessions(ctx context.Context, before time.Time) ([]Session, error)
		CountSessions(ctx context.Context) (int, error)
	}

	// LogoutHook is invoked once a session has been logged out.
	LogoutHook func(ctx context.Context, sessionID string)

	Service interface {
		Start(ctx context.Context) (Session, error)
		Get(ctx context.Context, id string) (Session, error)
		State(ctx context.Context, id string) (State, error)
		Dispatch(ctx context.Context, id string, action Action) (State, []core.Notification, error)
		Logout(ctx context.Context, id string) error
		EvictIdle(ctx context.Context, before time.Time) ([]string, error)
	}

	Deps struct {
		Repo          SessionRepository
		Catalogue     event.Catalogue
		Notifier      core.Notifier
		Logger        core.Logger
		InitialPoints int
		Rules         Rules
		OnLogout      LogoutHook
	}

	service struct {
		Deps
	}
)

var _ Service = (*service)(nil)

func NewService(deps Deps) Service {
	return &service{Deps: deps}
}

func (svc *service) Start(ctx context.Context) (Session, error) {
	events, err := svc.Catalogue.Events(ctx)
	if err != nil {
		return Session{}, errors.Wrap(err, "loading catalogue")
	}

	id := uuid.New().String()
	now := nowFunc().UTC()
	sess := Session{
		ID:        id,
		Store:     NewStore(id, NewState(events, svc.InitialPoints, svc.Rules), svc.Notifier),
		CreatedAt: now,
		LastSeen:  now,
	}
	sess, err = svc.Repo.CreateSession(ctx, sess)
	if err != nil {
		return Session{}, errors.Wrap(err, "creating session")
	}
	svc.Logger.Debug(fmt.Sprintf("session %s started with %d events", id, len(events)))
	return sess, nil
}

// Get returns the session and marks it as seen.
func (svc *service) Get(ctx context.Context, id string) (Session, error) {
	sess, err := svc.Repo.GetSession(ctx, id)
	if err != nil {
		return Session{}, err
	}
	if err = svc.Repo.TouchSession(ctx, id, nowFunc().UTC()); err != nil {
		return Session{}, errors.Wrap(err, "touching session")
	}
	return sess, nil
}

func (svc *service) State(ctx context.Context, id string) (State, error) {
	sess, err := svc.Repo.GetSession(ctx, id)
	if err != nil {
		return State{}, err
	}
	return sess.Store.State(), nil
}

func (svc *service) Dispatch(ctx context.Context, id string, action Action) (State, []core.Notification, error) {
	sess, err := svc.Repo.GetSession(ctx, id)
	if err != nil {
		return State{}, nil, err
	}

	state, notifications, err := sess.Store.Dispatch(ctx, action)
	if err != nil {
		return state, nil, errors.Wrap(err, action.ActionName())
	}
	if err = svc.Repo.TouchSession(ctx, id, nowFunc().UTC()); err != nil {
		return state, notifications, errors.Wrap(err, "touching session")
	}
	return state, notifications, nil
}

func (svc *service) Logout(ctx context.Context, id string) error {
	sess, err := svc.Repo.GetSession(ctx, id)
	if err != nil {
		return err
	}
	if err = svc.Repo.DeleteSession(ctx, id); err != nil {
		return err
	}
	svc.end(ctx, sess)
	svc.Logger.Debug(fmt.Sprintf("session %s logged out", id))
	return nil
}

// EvictIdle ends every session last seen before `before` and returns their IDs.
func (svc *service) EvictIdle(ctx context.Context, before time.Time) ([]string, error) {
	evicted, err := svc.Repo.DeleteIdleSessions(ctx, before)
	if err != nil {
		return nil, errors.Wrap(err, "deleting idle sessions")
	}
	ids := make([]string, 0, len(evicted))
	for _, sess := range evicted {
		svc.end(ctx, sess)
		ids = append(ids, sess.ID)
	}
	if len(ids) > 0 {
		svc.Logger.Debug(fmt.Sprintf("evicted %d sessions idle since %s", len(ids), before.Format(time.RFC3339)))
	}
	return ids, nil
}

// end closes the session's Store before the logout hook runs, so that no toast outlives the hook.
func (svc *service) end(ctx context.Context, sess Session) {
	if sess.Store != nil {
		sess.Store.Close()
	}
	if svc.OnLogout != nil {
		svc.OnLogout(ctx, sess.ID)
	}
}
