package logic

import (
	"strings"

	"eventdeck/internal/domain"
)

// SearchField identifies which event field satisfied a query
type SearchField int

const (
	FieldNone SearchField = iota
	FieldName
	FieldSpeaker
	FieldSkills
	FieldDescription
)

// NormalizeQuery trims and lower-cases raw search input. An empty result
// means no search.
func NormalizeQuery(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// MatchedField returns the first field containing query, checked in the order
// name, speaker, skills, description. query must already be normalized.
func MatchedField(e domain.Event, query string) SearchField {
	if query == "" {
		return FieldNone
	}
	if strings.Contains(strings.ToLower(e.EventName), query) {
		return FieldName
	}
	if strings.Contains(strings.ToLower(e.Speaker.Name), query) {
		return FieldSpeaker
	}
	for _, skill := range e.Skills {
		if strings.Contains(strings.ToLower(skill), query) {
			return FieldSkills
		}
	}
	if strings.Contains(strings.ToLower(e.Description), query) {
		return FieldDescription
	}
	return FieldNone
}

// Search returns the events matching query in any searched field, preserving
// order. The query is normalized first; an empty query matches nothing.
func Search(events []domain.Event, query string) []domain.Event {
	q := NormalizeQuery(query)
	result := make([]domain.Event, 0)
	if q == "" {
		return result
	}

	for _, e := range events {
		if MatchedField(e, q) != FieldNone {
			result = append(result, e)
		}
	}
	return result
}

// Select renders the selector against the collection: search results when a
// query is active, otherwise the filter's subset
func Select(events []domain.Event, sel domain.Selector) []domain.Event {
	if q := NormalizeQuery(sel.Query); q != "" {
		return Search(events, q)
	}
	return Filter(events, sel.Filter)
}
