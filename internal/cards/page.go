package cards

import (
	"fmt"

	"eventdeck/internal/domain"
	"eventdeck/internal/logic"
)

// PlaceholderKind distinguishes the messages shown instead of cards
type PlaceholderKind int

const (
	NoEvents PlaceholderKind = iota + 1
	NoMatches
	LoadError
	Loading
)

// Placeholder is a titled message rendered in place of the card list
type Placeholder struct {
	Kind    PlaceholderKind
	Title   string
	Message string
}

// Page is what the results area shows: cards, or exactly one placeholder
type Page struct {
	Selector    domain.Selector
	Header      string // search result count line, "" for filter pages
	Cards       []Card
	Events      []domain.Event // events behind Cards, same order
	Placeholder *Placeholder
}

// Empty reports whether the page shows a placeholder instead of cards
func (p Page) Empty() bool {
	return p.Placeholder != nil
}

// ForFilter builds the page for a status filter
func ForFilter(events []domain.Event, key domain.FilterKey) Page {
	selected := logic.Filter(events, key)
	page := Page{Selector: domain.Selector{Filter: key}}
	if len(selected) == 0 {
		page.Placeholder = &Placeholder{
			Kind:    NoEvents,
			Title:   "No events found",
			Message: "There are no events available for the selected filter. Please try another category.",
		}
		return page
	}
	page.Events = selected
	page.Cards = FromEvents(selected)
	return page
}

// ForSearch builds the page for a search query. An empty query renders the
// filter instead.
func ForSearch(events []domain.Event, active domain.FilterKey, query string) Page {
	q := logic.NormalizeQuery(query)
	if q == "" {
		return ForFilter(events, active)
	}

	results := logic.Search(events, q)
	page := Page{Selector: domain.Selector{Filter: active, Query: q}}
	if len(results) == 0 {
		page.Placeholder = &Placeholder{
			Kind:    NoMatches,
			Title:   "No matching events found",
			Message: fmt.Sprintf("We couldn't find any events matching \"%s\". Please try a different search term.", q),
		}
		return page
	}
	page.Header = ResultsHeader(len(results), q)
	page.Events = results
	page.Cards = FromEvents(results)
	return page
}

// ForSelector builds the page for whichever mode the selector is in
func ForSelector(events []domain.Event, sel domain.Selector) Page {
	if sel.IsSearch() {
		return ForSearch(events, sel.Filter, sel.Query)
	}
	return ForFilter(events, sel.Filter)
}

// ResultsHeader formats the search count line
func ResultsHeader(n int, query string) string {
	plural := "s"
	if n == 1 {
		plural = ""
	}
	return fmt.Sprintf("Found %d event%s matching \"%s\"", n, plural, query)
}

// LoadErrorPage is shown when the events document could not be loaded
func LoadErrorPage() Page {
	return Page{Placeholder: &Placeholder{
		Kind:    LoadError,
		Title:   "Error loading events",
		Message: "There was a problem loading the events data. Please try again later.",
	}}
}

// LoadingPage is shown while the events document is being fetched
func LoadingPage() Page {
	return Page{Placeholder: &Placeholder{
		Kind:    Loading,
		Title:   "Loading events",
		Message: "Fetching the events data...",
	}}
}
