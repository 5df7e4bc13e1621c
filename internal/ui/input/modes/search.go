package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gadgetfind/internal/ui/input/keys"
	"gadgetfind/internal/ui/input/types"
)

// SearchMode handles the Search screen. Unconsumed keys edit the query.
type SearchMode struct {
	keys keys.KeyMap
}

func NewSearchMode(km keys.KeyMap) *SearchMode {
	return &SearchMode{keys: km}
}

func (m *SearchMode) Name() string {
	return "search"
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Clear):
		// Esc on an empty query does nothing
		if ctx.Query() == "" {
			return nil, true
		}
		return []types.Action{types.ClearAction{}}, true

	case key.Matches(msg, m.keys.Open):
		if ctx.IsOnFooter() {
			if ctx.HasResults() {
				return []types.Action{types.ShowAllAction{Query: ctx.Query()}}, true
			}
			return nil, true
		}
		if id := ctx.CurrentItemID(); id != "" {
			return []types.Action{types.OpenItemAction{ID: id}}, true
		}
		return nil, true

	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case key.Matches(msg, m.keys.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case key.Matches(msg, m.keys.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	// Let the main handler update the text input
	return nil, false
}
