package logic

import (
	"fmt"
	"strings"

	"eventdeck/internal/domain"
)

// ParseFilterKey validates a filter name typed by the user or read from config
func ParseFilterKey(s string) (domain.FilterKey, error) {
	key := domain.FilterKey(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range domain.FilterKeys {
		if key == known {
			return key, nil
		}
	}
	return "", fmt.Errorf("unknown filter %q", s)
}

// Filter returns the events in the key's status category, preserving order.
// FilterAll (and any unknown key) returns the collection as is.
func Filter(events []domain.Event, key domain.FilterKey) []domain.Event {
	switch key {
	case domain.FilterCurrent, domain.FilterUpcoming, domain.FilterPast:
	default:
		return events
	}

	result := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if key.Matches(e) {
			result = append(result, e)
		}
	}
	return result
}

// CountByFilter returns how many events each filter would show
func CountByFilter(events []domain.Event) map[domain.FilterKey]int {
	counts := make(map[domain.FilterKey]int, len(domain.FilterKeys))
	for _, key := range domain.FilterKeys {
		counts[key] = 0
	}
	for _, e := range events {
		for _, key := range domain.FilterKeys {
			if key.Matches(e) {
				counts[key]++
			}
		}
	}
	return counts
}
