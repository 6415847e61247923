package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchSubmitted EventType = "SearchSubmitted"
	EventFetchStarted    EventType = "FetchStarted"
	EventFetchCompleted  EventType = "FetchCompleted"
	EventFetchFailed     EventType = "FetchFailed"
	EventHitDismissed    EventType = "HitDismissed"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchSubmittedEvent is emitted when the user submits a search term.
// Cached is true when the term was already in the cache and no fetch started.
type SearchSubmittedEvent struct {
	Term   string
	Cached bool
}

func (e SearchSubmittedEvent) Type() EventType { return EventSearchSubmitted }

// FetchStartedEvent is emitted when a page fetch is requested
type FetchStartedEvent struct {
	Term string
	Page int
}

func (e FetchStartedEvent) Type() EventType { return EventFetchStarted }

// FetchCompletedEvent is emitted after a fetched page was merged
type FetchCompletedEvent struct {
	Term      string
	Page      int
	NewHits   int
	TotalHits int
}

func (e FetchCompletedEvent) Type() EventType { return EventFetchCompleted }

// FetchFailedEvent is emitted when a fetch returned an error
type FetchFailedEvent struct {
	Term string
	Page int
	Err  error
}

func (e FetchFailedEvent) Type() EventType { return EventFetchFailed }

// HitDismissedEvent is emitted when hits are removed from the active term
type HitDismissedEvent struct {
	Term     string
	ObjectID string
	Removed  int
}

func (e HitDismissedEvent) Type() EventType { return EventHitDismissed }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path         string
	DefaultQuery string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is written to disk
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
