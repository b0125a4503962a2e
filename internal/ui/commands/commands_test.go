package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventdeck/internal/domain"
	"eventdeck/internal/eventbus"
	"eventdeck/internal/ui/state"
)

func TestExecuteLoadPublishesRequest(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	got := make(chan eventbus.DomainEvent, 2)
	bus.Subscribe(eventbus.EventLoadRequested, func(e eventbus.DomainEvent) { got <- e })

	s := state.NewAppState()
	e := NewExecutor(s, bus, "data/events.json")
	e.ExecuteLoad()

	assert.Equal(t, state.LoadInProgress, s.LoadState)
	assert.Equal(t, "data/events.json", s.Source)

	select {
	case ev := <-got:
		assert.Equal(t, "data/events.json", ev.(eventbus.LoadRequestedEvent).Source)
	case <-time.After(2 * time.Second):
		t.Fatal("LoadRequested was not published")
	}

	// A second request while loading is dropped
	e.ExecuteLoad()
	select {
	case <-got:
		t.Fatal("duplicate load was requested")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestExecuteLoadResetsStore(t *testing.T) {
	s := state.NewAppState()
	e := NewExecutor(s, nil, "x")

	e.ExecuteLoad()
	require.NoError(t, s.SetEvents([]domain.Event{{EventName: "A"}}))

	e.ExecuteLoad()
	assert.False(t, s.Store.Loaded())
}

func TestExecuteFilterAndSearch(t *testing.T) {
	s := state.NewAppState()
	e := NewExecutor(s, nil, "x")

	e.ExecuteSearch("  NLP ")
	assert.Equal(t, domain.Selector{Filter: domain.FilterAll, Query: "nlp"}, s.Selector())

	e.ExecuteFilter(domain.FilterCurrent)
	assert.Equal(t, domain.Selector{Filter: domain.FilterCurrent}, s.Selector())
}
