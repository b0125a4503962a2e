package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventLoadRequested EventType = "LoadRequested"
	EventLoadStarted   EventType = "LoadStarted"
	EventEventsLoaded  EventType = "EventsLoaded"
	EventLoadFailed    EventType = "LoadFailed"
	EventConfigLoaded  EventType = "ConfigLoaded"
	EventConfigSaved   EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// LoadRequestedEvent asks the loader to fetch the events document
type LoadRequestedEvent struct {
	Source string
}

func (e LoadRequestedEvent) Type() EventType { return EventLoadRequested }

// LoadStartedEvent is emitted when the request for the document goes out
type LoadStartedEvent struct {
	Source string
}

func (e LoadStartedEvent) Type() EventType { return EventLoadStarted }

// EventsLoadedEvent carries the decoded collection
type EventsLoadedEvent struct {
	Source string
	Events []Event
}

func (e EventsLoadedEvent) Type() EventType { return EventEventsLoaded }

// LoadFailedEvent is emitted when the document could not be fetched or decoded
type LoadFailedEvent struct {
	Source string
	Err    error
}

func (e LoadFailedEvent) Type() EventType { return EventLoadFailed }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Source string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
