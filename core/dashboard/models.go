package dashboard

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/campusunite/backend/core"
	"github.com/campusunite/backend/core/event"
)

var (
	// errors
	ErrEventNotFound    = errors.New("event not found")
	ErrUnknownPage      = errors.New("unknown page")
	ErrAlreadyOnboarded = errors.New("onboarding already completed")
	ErrUnknownAction    = errors.New("unknown action")
	ErrSessionNotFound  = errors.New("session not found")
)

// Page identifies one of the dashboard views.
type Page string

const (
	PageHome      Page = "home"
	PageForYou    Page = "for-you"
	PageRSVPs     Page = "rsvps"
	PageBookmarks Page = "bookmarks"
	PageBadges    Page = "badges"
	PageSettings  Page = "settings"
)

// Pages lists every page in sidebar order.
var Pages = []Page{PageHome, PageForYou, PageRSVPs, PageBookmarks, PageBadges, PageSettings}

var pageLabels = map[Page]string{
	PageHome:      "Home",
	PageForYou:    "For You",
	PageRSVPs:     "My RSVPs",
	PageBookmarks: "Bookmarks",
	PageBadges:    "Badges",
	PageSettings:  "Settings",
}

func (p Page) IsValid() bool {
	_, ok := pageLabels[p]
	return ok
}

func (p Page) Label() string {
	return pageLabels[p]
}

// Profile is collected once by onboarding and is read-only afterwards.
type Profile struct {
	FullName  string   `json:"full_name" validate:"required,notblank"`
	Email     string   `json:"email" validate:"required,email"`
	Phone     string   `json:"phone" validate:"required,phone"`
	DOB       string   `json:"dob" validate:"required,datetime=2006-01-02"`
	College   string   `json:"college" validate:"required,notblank"`
	Year      string   `json:"year" validate:"required,notblank"`
	Branch    string   `json:"branch" validate:"required,notblank"`
	Interests []string `json:"interests" validate:"omitempty,dive,notblank"`
}

func (p *Profile) Validate(validate *validator.Validate) error {
	p.FullName = core.CleanString(p.FullName)
	p.Email = core.CleanString(p.Email, true /* lower */)
	p.Phone = core.CleanString(p.Phone)
	p.DOB = core.CleanString(p.DOB)
	p.College = core.CleanString(p.College)
	p.Year = core.CleanString(p.Year)
	p.Branch = core.CleanString(p.Branch)
	p.Interests = core.CleanStrings(p.Interests)
	return validate.Struct(p)
}

// FirstName is the first word of the full name.
func (p Profile) FirstName() string {
	if fields := strings.Fields(p.FullName); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

func (p Profile) clone() Profile {
	if p.Interests != nil {
		interests := make([]string, len(p.Interests))
		copy(interests, p.Interests)
		p.Interests = interests
	}
	return p
}

// Rules holds the dashboard constants.
type Rules struct {
	RSVPPoints       int `json:"rsvp_points"`
	BadgesEarned     int `json:"badges_earned"`
	RecommendedCount int `json:"recommended_count"`
}

var DefaultRules = Rules{
	RSVPPoints:       50,
	BadgesEarned:     2,
	RecommendedCount: 4,
}

// State is everything a dashboard renders from.
// It is only ever replaced through Reduce; never mutate a State in place.
type State struct {
	Events      []event.Event
	Reminders   []string // event IDs, in the order reminders were set
	Points      int
	ActivePage  Page
	SidebarOpen bool
	Onboarding  bool
	Profile     *Profile // nil until onboarding completes
	Rules       Rules
}

// NewState returns the initial dashboard state for `events`.
// Every new session starts with onboarding pending: the profile is collected before anything else is shown.
func NewState(events []event.Event, initialPoints int, rules Rules) State {
	return State{
		Events:      event.CloneAll(events),
		Reminders:   []string{},
		Points:      initialPoints,
		ActivePage:  PageHome,
		SidebarOpen: true,
		Onboarding:  true,
		Rules:       rules,
	}
}

// Clone returns a deep copy of the State.
func (s State) Clone() State {
	s.Events = event.CloneAll(s.Events)
	if s.Reminders != nil {
		reminders := make([]string, len(s.Reminders))
		copy(reminders, s.Reminders)
		s.Reminders = reminders
	}
	if s.Profile != nil {
		p := s.Profile.clone()
		s.Profile = &p
	}
	return s
}

func (s State) eventIndex(id string) int {
	for i, e := range s.Events {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (s State) reminderIndex(id string) int {
	for i, rid := range s.Reminders {
		if rid == id {
			return i
		}
	}
	return -1
}
