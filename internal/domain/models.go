package domain

// Status values carried by an event record
const (
	StatusCurrent = "current"
	StatusFuture  = "future"
	StatusPast    = "past"
)

// Event represents a single talk/session from the events document
type Event struct {
	EventName         string   `json:"eventName" yaml:"eventName"`
	Description       string   `json:"description" yaml:"description"`
	Status            string   `json:"status" yaml:"status"`
	RegistrationLink  *string  `json:"registrationLink,omitempty" yaml:"registrationLink,omitempty"`
	NoOfRegistrations int      `json:"noOfRegistrations" yaml:"noOfRegistrations"`
	Skills            []string `json:"skills" yaml:"skills"`
	Speaker           Speaker  `json:"speaker" yaml:"speaker"`
}

// Speaker describes who presents an event
type Speaker struct {
	Name     string  `json:"name" yaml:"name"`
	Profile  string  `json:"profile" yaml:"profile"`
	LinkedIn string  `json:"linkedin" yaml:"linkedin"`
	Image    *string `json:"image,omitempty" yaml:"image,omitempty"`
}

// RegistrationURL returns the registration link and whether one is set
func (e Event) RegistrationURL() (string, bool) {
	if e.RegistrationLink == nil || *e.RegistrationLink == "" {
		return "", false
	}
	return *e.RegistrationLink, true
}

// ImageURL returns the speaker image and whether one is set
func (s Speaker) ImageURL() (string, bool) {
	if s.Image == nil || *s.Image == "" {
		return "", false
	}
	return *s.Image, true
}

// FilterKey names a status category offered in the filter bar
type FilterKey string

const (
	FilterAll      FilterKey = "all"
	FilterCurrent  FilterKey = "current"
	FilterUpcoming FilterKey = "upcoming"
	FilterPast     FilterKey = "past"
)

// FilterKeys lists the known filters in display order
var FilterKeys = []FilterKey{FilterAll, FilterCurrent, FilterUpcoming, FilterPast}

// Label returns the text shown on the filter bar
func (k FilterKey) Label() string {
	switch k {
	case FilterCurrent:
		return "Current"
	case FilterUpcoming:
		return "Upcoming"
	case FilterPast:
		return "Past"
	default:
		return "All"
	}
}

// Matches reports whether an event belongs to the filter's category.
// Unknown keys match everything.
func (k FilterKey) Matches(e Event) bool {
	switch k {
	case FilterCurrent:
		return e.Status == StatusCurrent
	case FilterUpcoming:
		return e.Status == StatusFuture
	case FilterPast:
		return e.Status == StatusPast
	default:
		return true
	}
}

// Selector is the active view mode: a filter, superseded by a search query
// when Query is non-empty
type Selector struct {
	Filter FilterKey
	Query  string // normalized search query, "" when no search is active
}

// IsSearch reports whether the selector renders search results
func (s Selector) IsSearch() bool {
	return s.Query != ""
}
