package dashboard

import "github.com/campusunite/backend/core/event"

// Stats is what the home page summarizes.
type Stats struct {
	UpcomingRSVPs     int `json:"upcoming_rsvps"`
	SavedEvents       int `json:"saved_events"`
	BadgesEarned      int `json:"badges_earned"`
	AIRecommendations int `json:"ai_recommendations"`
}

func (s State) filter(keep func(e event.Event) bool) []event.Event {
	events := make([]event.Event, 0)
	for _, e := range s.Events {
		if keep(e) {
			events = append(events, e.Clone())
		}
	}
	return events
}

// RSVPed returns every RSVPed event, past or not.
func (s State) RSVPed() []event.Event {
	return s.filter(func(e event.Event) bool { return e.IsRSVPed })
}

// UpcomingRSVPs returns the RSVPed events which are not past.
func (s State) UpcomingRSVPs() []event.Event {
	return s.filter(func(e event.Event) bool { return e.IsRSVPed && !e.IsPast })
}

func (s State) PastRSVPs() []event.Event {
	return s.filter(func(e event.Event) bool { return e.IsRSVPed && e.IsPast })
}

func (s State) SavedEvents() []event.Event {
	return s.filter(func(e event.Event) bool { return e.IsBookmarked })
}

// Recommended returns the first Rules.RecommendedCount events, in list order.
func (s State) Recommended() []event.Event {
	n := s.Rules.RecommendedCount
	if n > len(s.Events) {
		n = len(s.Events)
	}
	if n < 0 {
		n = 0
	}
	return event.CloneAll(s.Events[:n])
}

func (s State) Stats() Stats {
	return Stats{
		UpcomingRSVPs:     len(s.UpcomingRSVPs()),
		SavedEvents:       len(s.SavedEvents()),
		BadgesEarned:      s.Rules.BadgesEarned,
		AIRecommendations: len(s.Recommended()),
	}
}

func (s State) HasReminder(eventID string) bool {
	return s.reminderIndex(eventID) >= 0
}

// FirstName is the name the header greets the user with.
func (s State) FirstName() string {
	if s.Profile != nil {
		if name := s.Profile.FirstName(); name != "" {
			return name
		}
	}
	return defaultStudentLabel
}
