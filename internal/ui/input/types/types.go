package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode. Each screen has its own, plus help.
type Mode int

const (
	ModeSearch Mode = iota
	ModeResults
	ModeDetail
	ModeHelp
)

// String returns the mode name for display
func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModeResults:
		return "results"
	case ModeDetail:
		return "detail"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CurrentIndex() int
	TotalItems() int
	Query() string
	HasResults() bool
	IsOnFooter() bool
	CurrentItemID() string
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Name returns the mode name for display
	Name() string
}
