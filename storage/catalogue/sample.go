package catalogue

import (
	"context"

	"github.com/campusunite/backend/core/event"
)

var sampleEvents = []event.Event{
	{
		ID:       "1",
		Title:    "Tech Innovators Hackathon 2024",
		Image:    "https://images.unsplash.com/photo-1485827404703-89b55fcc595e?w=400",
		Tags:     []string{"Technical", "Hackathon", "AI/ML"},
		Date:     "Nov 15-17, 2024",
		Location: "IIT Delhi Campus",
	},
	{
		ID:       "2",
		Title:    "Spring Music Festival",
		Image:    "https://images.unsplash.com/photo-1511379938547-c1f69b13d835?w=400",
		Tags:     []string{"Music", "Cultural", "Entertainment"},
		Date:     "Nov 20, 2024",
		Location: "Open Air Theater",
	},
	{
		ID:       "3",
		Title:    "Creative Arts Workshop",
		Image:    "https://images.unsplash.com/photo-1578926078328-123456789012?w=400",
		Tags:     []string{"Art", "Workshop", "Sketching"},
		Date:     "Nov 22, 2024",
		Location: "Art Gallery, Main Campus",
	},
	{
		ID:       "4",
		Title:    "Inter-College Sports Championship",
		Image:    "https://images.unsplash.com/photo-1461896836934-ffe607ba8211?w=400",
		Tags:     []string{"Sports", "Competition", "Athletics"},
		Date:     "Nov 25-27, 2024",
		Location: "Sports Complex",
	},
	{
		ID:       "5",
		Title:    "AI & Machine Learning Symposium",
		Image:    "https://images.unsplash.com/photo-1517694712202-14dd9538aa97?w=400",
		Tags:     []string{"Technical", "AI/ML", "Research"},
		Date:     "Dec 1, 2024",
		Location: "Auditorium Block A",
	},
	{
		ID:       "6",
		Title:    "Photography Masterclass",
		Image:    "https://images.unsplash.com/photo-1502920917128-1aa500764cbd?w=400",
		Tags:     []string{"Photography", "Workshop", "Art"},
		Date:     "Dec 5, 2024",
		Location: "Media Center",
	},
}

type sampleCatalogue struct{}

var _ event.Catalogue = (*sampleCatalogue)(nil)

// NewSample returns the built-in catalogue of sample campus events.
func NewSample() event.Catalogue {
	return sampleCatalogue{}
}

func (sampleCatalogue) Events(context.Context) ([]event.Event, error) {
	return event.CloneAll(sampleEvents), nil
}
