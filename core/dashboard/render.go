package dashboard

import "github.com/campusunite/backend/core/event"

const appTitle = "Campus Unite"

type (
	// View is the rendered dashboard: the shell plus the active page's content.
	View struct {
		Page        Page        `json:"page"`
		Onboarding  bool        `json:"onboarding"`
		SidebarOpen bool        `json:"sidebar_open"`
		Header      Header      `json:"header"`
		Nav         []NavItem   `json:"nav"`
		Content     interface{} `json:"content,omitempty"`
	}

	Header struct {
		Title     string `json:"title"`
		FirstName string `json:"first_name"`
		Points    int    `json:"points"`
	}

	NavItem struct {
		Label  string `json:"label"`
		Page   Page   `json:"page"`
		Active bool   `json:"active"`
	}

	EventCard struct {
		event.Event
		HasReminder bool `json:"has_reminder"`
	}

	HomeContent struct {
		UserName string `json:"user_name"`
		Stats    Stats  `json:"stats"`
	}

	EventsContent struct {
		Title  string      `json:"title"`
		Events []EventCard `json:"events"`
		Empty  string      `json:"empty,omitempty"` // placeholder shown when there are no events
	}

	RSVPsContent struct {
		Title         string      `json:"title"`
		Total         int         `json:"total"`
		Upcoming      []EventCard `json:"upcoming"`
		Past          []EventCard `json:"past"`
		UpcomingEmpty string      `json:"upcoming_empty,omitempty"`
		PastEmpty     string      `json:"past_empty,omitempty"`
	}

	BadgesContent struct {
		BadgesEarned int `json:"badges_earned"`
	}

	SettingsContent struct {
		Title   string `json:"title"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		College string `json:"college"`
	}
)

// Render is a pure function of the State.
// While onboarding is pending only the header is rendered.
func Render(s State) View {
	v := View{
		Page:        s.ActivePage,
		Onboarding:  s.Onboarding,
		SidebarOpen: s.SidebarOpen,
		Header: Header{
			Title:     appTitle,
			FirstName: s.FirstName(),
			Points:    s.Points,
		},
		Nav: []NavItem{},
	}
	if s.Onboarding {
		return v
	}

	if s.SidebarOpen {
		for _, p := range Pages {
			v.Nav = append(v.Nav, NavItem{Label: p.Label(), Page: p, Active: p == s.ActivePage})
		}
	}
	v.Content = renderContent(s)
	return v
}

func renderContent(s State) interface{} {
	switch s.ActivePage {
	case PageHome:
		return HomeContent{UserName: s.FirstName(), Stats: s.Stats()}
	case PageForYou:
		return EventsContent{Title: "For You ✨", Events: s.Cards(s.Recommended())}
	case PageRSVPs:
		return RSVPsContent{
			Title:         "My RSVPs 📅",
			Total:         len(s.RSVPed()),
			Upcoming:      s.Cards(s.UpcomingRSVPs()),
			Past:          s.Cards(s.PastRSVPs()),
			UpcomingEmpty: "No upcoming RSVPs yet",
			PastEmpty:     "No past events yet",
		}
	case PageBookmarks:
		return EventsContent{Title: "Bookmarks 🔖", Events: s.Cards(s.SavedEvents()), Empty: "No bookmarked events yet"}
	case PageBadges:
		return BadgesContent{BadgesEarned: s.Rules.BadgesEarned}
	case PageSettings:
		c := SettingsContent{Title: "Settings ⚙️"}
		if s.Profile != nil {
			c.Name = s.Profile.FullName
			c.Email = s.Profile.Email
			c.College = s.Profile.College
		}
		return c
	default:
		return nil
	}
}

// Cards decorates `events` with their reminder status.
func (s State) Cards(events []event.Event) []EventCard {
	cards := make([]EventCard, 0, len(events))
	for _, e := range events {
		cards = append(cards, EventCard{Event: e, HasReminder: s.HasReminder(e.ID)})
	}
	return cards
}
