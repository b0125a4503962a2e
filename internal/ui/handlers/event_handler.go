package handlers

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"eventdeck/internal/eventbus"
	"eventdeck/internal/ui/state"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state *state.AppState
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{state: appState}
}

// HandleEvent processes domain events and returns any necessary commands.
// Bus handlers run concurrently, so load events may arrive in any order;
// only outcomes of the load in progress are applied.
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.LoadStartedEvent:
		if h.state.LoadState == state.LoadInProgress {
			h.state.StatusMessage = fmt.Sprintf("Loading events from %s...", e.Source)
		}

	case eventbus.EventsLoadedEvent:
		if h.state.LoadState != state.LoadInProgress {
			log.Printf("EventHandler: ignoring events from %s, no load in progress", e.Source)
			return nil
		}
		if err := h.state.SetEvents(e.Events); err != nil {
			log.Printf("EventHandler: could not store events: %v", err)
			return nil
		}
		noun := "events"
		if len(e.Events) == 1 {
			noun = "event"
		}
		h.state.StatusMessage = fmt.Sprintf("Loaded %d %s", len(e.Events), noun)

	case eventbus.LoadFailedEvent:
		if h.state.LoadState != state.LoadInProgress {
			return nil
		}
		h.state.SetLoadFailed(e.Err)
		h.state.StatusMessage = fmt.Sprintf("Error: %v", e.Err)
	}

	return nil
}
