package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogLoaded   EventType = "CatalogLoaded"
	EventSearchStarted   EventType = "SearchStarted"
	EventSearchCompleted EventType = "SearchCompleted"
	EventSearchCleared   EventType = "SearchCleared"
	EventScreenPushed    EventType = "ScreenPushed"
	EventScreenPopped    EventType = "ScreenPopped"
	EventItemOpened      EventType = "ItemOpened"
	EventItemNotFound    EventType = "ItemNotFound"
	EventCursorMoved     EventType = "CursorMoved"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogLoadedEvent is emitted once the catalog has been built
type CatalogLoadedEvent struct {
	Source    string // "embedded" or a file path
	ItemCount int
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// SearchStartedEvent is emitted when a screen's query changes
type SearchStartedEvent struct {
	Screen string
	Query  string
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchCompletedEvent is emitted after the filter has been re-run
type SearchCompletedEvent struct {
	Screen     string
	Query      string
	MatchCount int
	FirstMatch string // id of first match ("" if none)
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchClearedEvent is emitted when a screen's query is reset
type SearchClearedEvent struct {
	Screen string
}

func (e SearchClearedEvent) Type() EventType { return EventSearchCleared }

// ScreenPushedEvent is emitted when a route is pushed onto the stack
type ScreenPushedEvent struct {
	Screen string
	Param  string
	Depth  int
}

func (e ScreenPushedEvent) Type() EventType { return EventScreenPushed }

// ScreenPoppedEvent is emitted when the top route is removed
type ScreenPoppedEvent struct {
	Screen string
	Depth  int
}

func (e ScreenPoppedEvent) Type() EventType { return EventScreenPopped }

// ItemOpenedEvent is emitted when the detail screen resolves an item
type ItemOpenedEvent struct {
	ID    string
	Title string
}

func (e ItemOpenedEvent) Type() EventType { return EventItemOpened }

// ItemNotFoundEvent is emitted when the detail screen gets an unknown id
type ItemNotFoundEvent struct {
	ID string
}

func (e ItemNotFoundEvent) Type() EventType { return EventItemNotFound }

// CursorMovedEvent is emitted when a list or grid cursor changes
type CursorMovedEvent struct {
	OldIndex int
	NewIndex int
}

func (e CursorMovedEvent) Type() EventType { return EventCursorMoved }

// ErrorEvent is emitted when an operation at the edges fails
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path        string
	CatalogPath string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
