package dashboard

// Action describes a user-triggered change to the dashboard State.
type Action interface {
	ActionName() string
}

type (
	CompleteOnboarding struct{ Profile Profile }
	ToggleRSVP         struct{ EventID string }
	ToggleBookmark     struct{ EventID string }
	ToggleReminder     struct{ EventID string }
	SetActivePage      struct{ Page Page }
	ToggleSidebar      struct{}
)

func (CompleteOnboarding) ActionName() string { return "complete_onboarding" }
func (ToggleRSVP) ActionName() string         { return "toggle_rsvp" }
func (ToggleBookmark) ActionName() string     { return "toggle_bookmark" }
func (ToggleReminder) ActionName() string     { return "toggle_reminder" }
func (SetActivePage) ActionName() string      { return "set_active_page" }
func (ToggleSidebar) ActionName() string      { return "toggle_sidebar" }
