package core

import (
	"context"
	"time"
)

// Notification levels
const (
	LevelSuccess = "success"
	LevelInfo    = "info"
)

// Notification is a toast message emitted after a successful dashboard mutation.
type Notification struct {
	SessionID string    `json:"-"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	EventID   string    `json:"event_id,omitempty"`
	CreatedAt time.Time `json:"created_at"` // UTC
}

// Notifier is called synchronously once a mutation has been applied.
type Notifier interface {
	Notify(ctx context.Context, notifications ...Notification)
}

// NotifierFunc adapts an ordinary function to the Notifier interface.
type NotifierFunc func(ctx context.Context, notifications ...Notification)

func (fn NotifierFunc) Notify(ctx context.Context, notifications ...Notification) {
	fn(ctx, notifications...)
}
