package state

import (
	"eventdeck/internal/domain"
	"eventdeck/internal/logic"
)

// LoadState tracks where the current page load is
type LoadState int

const (
	LoadIdle LoadState = iota
	LoadInProgress
	LoadDone
	LoadFailed
)

// AppState contains all the application state
type AppState struct {
	// Event data, replaced on every page load
	Store     *logic.EventStore
	LoadState LoadState
	LoadError error
	Source    string

	// Selector state
	ActiveFilter domain.FilterKey
	SearchText   string // last submitted search text, verbatim

	// UI state
	ViewportOffset   int // first visible line of the results area
	ViewportHeight   int // available height for the results area
	ShowHelp         bool
	HelpScrollOffset int
	StatusMessage    string
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Store:          logic.NewEventStore(),
		ActiveFilter:   domain.FilterAll,
		ViewportHeight: 20, // Default
	}
}

// Selector returns the active selector. A non-empty normalized search
// supersedes the filter.
func (s *AppState) Selector() domain.Selector {
	return domain.Selector{
		Filter: s.ActiveFilter,
		Query:  logic.NormalizeQuery(s.SearchText),
	}
}

// ApplyFilter makes key the active filter and clears any search
func (s *AppState) ApplyFilter(key domain.FilterKey) {
	s.ActiveFilter = key
	s.SearchText = ""
	s.ViewportOffset = 0
}

// ApplySearch records a submitted search. Whitespace-only text leaves the
// active filter in charge.
func (s *AppState) ApplySearch(text string) {
	s.SearchText = text
	s.ViewportOffset = 0
}

// StartLoading begins a fresh page load with an empty store
func (s *AppState) StartLoading(source string) {
	s.Store = logic.NewEventStore()
	s.LoadState = LoadInProgress
	s.LoadError = nil
	s.Source = source
	s.ViewportOffset = 0
}

// SetEvents stores the fetched collection
func (s *AppState) SetEvents(events []domain.Event) error {
	if err := s.Store.Load(events); err != nil {
		return err
	}
	s.LoadState = LoadDone
	s.LoadError = nil
	return nil
}

// SetLoadFailed records a failed load. The store stays unset.
func (s *AppState) SetLoadFailed(err error) {
	s.LoadState = LoadFailed
	s.LoadError = err
	s.ViewportOffset = 0
}

// Events returns the loaded collection, nil until a load succeeds
func (s *AppState) Events() []domain.Event {
	if s.LoadState != LoadDone {
		return nil
	}
	return s.Store.All()
}
