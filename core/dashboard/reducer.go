package dashboard

import (
	"fmt"

	"github.com/campusunite/backend/core"
	"github.com/campusunite/backend/core/event"
)

// Toast messages
const (
	msgRSVPConfirmed    = "RSVP confirmed! +%d points 🎉"
	msgBookmarkAdded    = "Added to bookmarks!"
	msgBookmarkRemoved  = "Removed from bookmarks"
	msgReminderSet      = "Reminder set! 🔔"
	msgReminderRemoved  = "Reminder removed"
	msgWelcome          = "Welcome aboard, %s! 🎉"
	defaultStudentLabel = "Student"
)

// Reduce applies `action` to `s` and returns the next State along with the notifications to emit.
// `s` is left untouched. On error, the returned State is `s` and nothing is emitted.
func Reduce(s State, action Action) (State, []core.Notification, error) {
	switch a := action.(type) {
	case CompleteOnboarding:
		return completeOnboarding(s, a.Profile)
	case ToggleRSVP:
		return toggleRSVP(s, a.EventID)
	case ToggleBookmark:
		return toggleBookmark(s, a.EventID)
	case ToggleReminder:
		return toggleReminder(s, a.EventID)
	case SetActivePage:
		return setActivePage(s, a.Page)
	case ToggleSidebar:
		s.SidebarOpen = !s.SidebarOpen
		return s, nil, nil
	default:
		return s, nil, ErrUnknownAction
	}
}

func completeOnboarding(s State, p Profile) (State, []core.Notification, error) {
	if s.Profile != nil {
		return s, nil, ErrAlreadyOnboarded
	}
	p = p.clone()
	s.Profile = &p
	s.Onboarding = false

	name := p.FirstName()
	if name == "" {
		name = defaultStudentLabel
	}
	return s, []core.Notification{success("", fmt.Sprintf(msgWelcome, name))}, nil
}

func toggleRSVP(s State, id string) (State, []core.Notification, error) {
	idx := s.eventIndex(id)
	if idx < 0 {
		return s, nil, ErrEventNotFound
	}
	wasRSVPed := s.Events[idx].IsRSVPed
	s.Events = withEvent(s.Events, idx, func(e *event.Event) { e.IsRSVPed = !wasRSVPed })
	if wasRSVPed {
		return s, nil, nil
	}
	s.Points += s.Rules.RSVPPoints
	return s, []core.Notification{success(id, fmt.Sprintf(msgRSVPConfirmed, s.Rules.RSVPPoints))}, nil
}

func toggleBookmark(s State, id string) (State, []core.Notification, error) {
	idx := s.eventIndex(id)
	if idx < 0 {
		return s, nil, ErrEventNotFound
	}
	bookmarked := !s.Events[idx].IsBookmarked
	s.Events = withEvent(s.Events, idx, func(e *event.Event) { e.IsBookmarked = bookmarked })

	msg := msgBookmarkRemoved
	if bookmarked {
		msg = msgBookmarkAdded
	}
	return s, []core.Notification{success(id, msg)}, nil
}

func toggleReminder(s State, id string) (State, []core.Notification, error) {
	if s.eventIndex(id) < 0 {
		return s, nil, ErrEventNotFound
	}

	reminders := make([]string, 0, len(s.Reminders)+1)
	msg := msgReminderSet
	if i := s.reminderIndex(id); i >= 0 {
		reminders = append(reminders, s.Reminders[:i]...)
		reminders = append(reminders, s.Reminders[i+1:]...)
		msg = msgReminderRemoved
	} else {
		reminders = append(reminders, s.Reminders...)
		reminders = append(reminders, id)
	}
	s.Reminders = reminders
	return s, []core.Notification{success(id, msg)}, nil
}

func setActivePage(s State, page Page) (State, []core.Notification, error) {
	if !page.IsValid() {
		return s, nil, ErrUnknownPage
	}
	s.ActivePage = page
	return s, nil, nil
}

// withEvent returns a copy of `events` where the event at `idx` has been changed by `fn`.
func withEvent(events []event.Event, idx int, fn func(e *event.Event)) []event.Event {
	next := make([]event.Event, len(events))
	copy(next, events)
	fn(&next[idx])
	return next
}

func success(eventID, msg string) core.Notification {
	return core.Notification{Level: core.LevelSuccess, Message: msg, EventID: eventID}
}
