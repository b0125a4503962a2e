package loader

import (
	"context"
	"fmt"
	"log"
	"sync"

	"eventdeck/internal/domain"
	"eventdeck/internal/eventbus"
)

// EventsLoader is what the service needs from a loader
type EventsLoader interface {
	Load(ctx context.Context) ([]domain.Event, error)
	Source() string
}

// Service runs loads in the background when a load is requested on the bus
// and publishes the outcome
type Service struct {
	bus    eventbus.EventBus
	loader EventsLoader
	ctx    context.Context

	mu      sync.Mutex
	loading bool
	wg      sync.WaitGroup
}

// NewService creates a load service subscribed to load requests
func NewService(ctx context.Context, bus eventbus.EventBus, l EventsLoader) *Service {
	s := &Service{
		bus:    bus,
		loader: l,
		ctx:    ctx,
	}

	bus.Subscribe(eventbus.EventLoadRequested, func(e eventbus.DomainEvent) {
		if _, ok := e.(eventbus.LoadRequestedEvent); ok {
			if err := s.Start(); err != nil {
				log.Printf("loader: %v", err)
			}
		}
	})

	return s
}

// Start begins a load unless one is already running
func (s *Service) Start() error {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return fmt.Errorf("load already in progress")
	}
	s.loading = true
	s.mu.Unlock()

	source := s.loader.Source()
	s.bus.Publish(eventbus.LoadStartedEvent{Source: source})

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		events, err := s.loader.Load(s.ctx)

		// a reload triggered by the outcome must be accepted
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()

		if err != nil {
			log.Printf("Error fetching events data: %v", err)
			s.bus.Publish(eventbus.LoadFailedEvent{Source: source, Err: err})
			return
		}
		s.bus.Publish(eventbus.EventsLoadedEvent{Source: source, Events: events})
	}()

	return nil
}

// Wait blocks until the running load, if any, has finished
func (s *Service) Wait() {
	s.wg.Wait()
}
