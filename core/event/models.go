package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusunite/backend/core"
)

var (
	// errors
	ErrEmptyID     = errors.New("event id cannot be blank")
	ErrDuplicateID = errors.New("duplicate event id")
)

// Event is a campus event as displayed on the dashboard.
// The flags are only ever flipped by the dashboard; events are never deleted.
type Event struct {
	ID           string   `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	Image        string   `json:"image" yaml:"image"`
	Tags         []string `json:"tags" yaml:"tags"`
	Date         string   `json:"date" yaml:"date"` // display string, eg. "Nov 15-17, 2024"
	Location     string   `json:"location" yaml:"location"`
	IsBookmarked bool     `json:"is_bookmarked" yaml:"-"`
	IsRSVPed     bool     `json:"is_rsvped" yaml:"-"`
	IsPast       bool     `json:"is_past" yaml:"past"`
}

// Clone returns a deep copy of the Event.
func (e Event) Clone() Event {
	if e.Tags != nil {
		tags := make([]string, len(e.Tags))
		copy(tags, e.Tags)
		e.Tags = tags
	}
	return e
}

// CloneAll returns a deep copy of `events`, keeping their order.
func CloneAll(events []Event) []Event {
	if events == nil {
		return nil
	}
	cloned := make([]Event, len(events))
	for i, e := range events {
		cloned[i] = e.Clone()
	}
	return cloned
}

// Catalogue is the source of the events every new dashboard is seeded with.
type Catalogue interface {
	// Events returns fresh copies of the catalogue events, in display order.
	Events(ctx context.Context) ([]Event, error)
}

// CheckIDs makes sure every event has a non-blank, unique ID.
func CheckIDs(events []Event) error {
	seen := make(map[string]struct{}, len(events))
	for i, e := range events {
		id := core.CleanString(e.ID)
		if id == "" {
			return core.NewValidationError(ErrEmptyID, core.FieldError{
				Field: fmt.Sprintf("events[%d].id", i),
				Error: ErrEmptyID.Error(),
			})
		}
		if _, ok := seen[id]; ok {
			return core.NewValidationError(ErrDuplicateID, core.FieldError{
				Field: fmt.Sprintf("events[%d].id", i),
				Error: fmt.Sprintf("%s: %q", ErrDuplicateID, id),
			})
		}
		seen[id] = struct{}{}
	}
	return nil
}
