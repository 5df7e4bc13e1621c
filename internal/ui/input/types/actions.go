package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end", "left", "right"
}

func (a NavigateAction) Type() string { return "navigate" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// ClearAction resets the current screen's query
type ClearAction struct{}

func (a ClearAction) Type() string { return "clear" }

// Screen actions
type OpenItemAction struct {
	ID string
}

func (a OpenItemAction) Type() string { return "open_item" }

type ShowAllAction struct {
	Query string
}

func (a ShowAllAction) Type() string { return "show_all" }

type BackAction struct{}

func (a BackAction) Type() string { return "back" }

// Command actions
type CopyTitleAction struct{}

func (a CopyTitleAction) Type() string { return "copy_title" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type ScrollHelpAction struct {
	Delta int
}

func (a ScrollHelpAction) Type() string { return "scroll_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C
}

func (a QuitAction) Type() string { return "quit" }
