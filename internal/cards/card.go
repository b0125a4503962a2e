// Package cards maps event records to renderable card and page values.
// Nothing here touches the terminal; internal/ui/views draws these values.
package cards

import (
	"eventdeck/internal/domain"
)

// PlaceholderGlyph stands in for a missing speaker image
const PlaceholderGlyph = "👤"

// Badge is the status label shown on a card
type Badge struct {
	Class string // status-current, status-past, status-future or "" when unrecognized
	Label string
}

// Registration is the registration affordance of a card
type Registration struct {
	Label   string
	URL     string
	Enabled bool
}

// Speaker is the speaker block of a card
type Speaker struct {
	Name     string
	Profile  string
	LinkedIn string
	ImageURL string
	HasImage bool
}

// Image returns the image URL, or the placeholder glyph if none is set
func (s Speaker) Image() string {
	if s.HasImage {
		return s.ImageURL
	}
	return PlaceholderGlyph
}

// Card is the self-contained visual fragment for one event
type Card struct {
	Title         string
	Description   string
	Badge         Badge
	Speaker       Speaker
	Skills        []string
	Registrations int
	Registration  Registration
}

// BadgeFor maps a status to its badge. Unknown statuses get an empty badge.
func BadgeFor(status string) Badge {
	switch status {
	case domain.StatusCurrent:
		return Badge{Class: "status-current", Label: "Current"}
	case domain.StatusPast:
		return Badge{Class: "status-past", Label: "Past"}
	case domain.StatusFuture:
		return Badge{Class: "status-future", Label: "Upcoming"}
	default:
		return Badge{}
	}
}

// RegistrationFor decides the registration control for an event
func RegistrationFor(e domain.Event) Registration {
	if url, ok := e.RegistrationURL(); ok && e.Status == domain.StatusCurrent {
		return Registration{Label: "Register Now", URL: url, Enabled: true}
	}
	if e.Status == domain.StatusFuture {
		return Registration{Label: "Coming Soon"}
	}
	return Registration{Label: "Closed"}
}

// FromEvent builds the card for one event. Text fields are copied verbatim.
func FromEvent(e domain.Event) Card {
	speaker := Speaker{
		Name:     e.Speaker.Name,
		Profile:  e.Speaker.Profile,
		LinkedIn: e.Speaker.LinkedIn,
	}
	if url, ok := e.Speaker.ImageURL(); ok {
		speaker.ImageURL = url
		speaker.HasImage = true
	}

	skills := make([]string, len(e.Skills))
	copy(skills, e.Skills)

	return Card{
		Title:         e.EventName,
		Description:   e.Description,
		Badge:         BadgeFor(e.Status),
		Speaker:       speaker,
		Skills:        skills,
		Registrations: e.NoOfRegistrations,
		Registration:  RegistrationFor(e),
	}
}

// FromEvents builds cards for a list of events in order
func FromEvents(events []domain.Event) []Card {
	out := make([]Card, 0, len(events))
	for _, e := range events {
		out = append(out, FromEvent(e))
	}
	return out
}
