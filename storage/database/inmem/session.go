package inmemdb

import (
	"context"
	"time"

	"github.com/campusunite/backend/core/dashboard"
)

type sessionRepository struct {
	db *sessionTable
}

func NewSessionRepository(db *DB) dashboard.SessionRepository {
	return &sessionRepository{db: db.session}
}

func (repo *sessionRepository) CreateSession(_ context.Context, sess dashboard.Session) (dashboard.Session, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.table[sess.ID] = &sess
	return sess, nil
}

func (repo *sessionRepository) GetSession(_ context.Context, id string) (dashboard.Session, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if sess, ok := repo.db.table[id]; ok {
		return *sess, nil
	}
	return dashboard.Session{}, dashboard.ErrSessionNotFound
}

func (repo *sessionRepository) TouchSession(_ context.Context, id string, at time.Time) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	sess, ok := repo.db.table[id]
	if !ok {
		return dashboard.ErrSessionNotFound
	}
	if at.After(sess.LastSeen) {
		sess.LastSeen = at
	}
	return nil
}

func (repo *sessionRepository) DeleteSession(_ context.Context, id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return dashboard.ErrSessionNotFound
	}
	delete(repo.db.table, id)
	return nil
}

func (repo *sessionRepository) DeleteIdleSessions(_ context.Context, before time.Time) ([]dashboard.Session, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	var idle []dashboard.Session
	for id, sess := range repo.db.table {
		if sess.LastSeen.Before(before) {
			idle = append(idle, *sess)
			delete(repo.db.table, id)
		}
	}
	return idle, nil
}

func (repo *sessionRepository) CountSessions(context.Context) (int, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return len(repo.db.table), nil
}
