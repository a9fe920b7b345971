package inmemdb

import (
	"sync"

	"github.com/campusunite/backend/core/dashboard"
)

type (
	DB struct {
		session *sessionTable
	}

	sessionTable struct {
		mutex sync.RWMutex
		table map[string]*dashboard.Session
	}
)

func Open() *DB {
	return &DB{
		session: &sessionTable{table: make(map[string]*dashboard.Session)},
	}
}
