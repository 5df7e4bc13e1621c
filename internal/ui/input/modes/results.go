package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gadgetfind/internal/ui/input/keys"
	"gadgetfind/internal/ui/input/types"
)

// ResultsMode handles the Results grid. Arrows move the grid cursor and typing edits the query.
type ResultsMode struct {
	keys keys.KeyMap
}

func NewResultsMode(km keys.KeyMap) *ResultsMode {
	return &ResultsMode{keys: km}
}

func (m *ResultsMode) Name() string {
	return "results"
}

func (m *ResultsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Clear):
		return []types.Action{types.ClearAction{}, types.BackAction{}}, true

	case key.Matches(msg, m.keys.Back):
		return []types.Action{types.BackAction{}}, true

	case key.Matches(msg, m.keys.Open):
		if id := ctx.CurrentItemID(); id != "" {
			return []types.Action{types.OpenItemAction{ID: id}}, true
		}
		return nil, true

	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, m.keys.Left):
		return []types.Action{types.NavigateAction{Direction: "left"}}, true
	case key.Matches(msg, m.keys.Right):
		return []types.Action{types.NavigateAction{Direction: "right"}}, true
	case key.Matches(msg, m.keys.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case key.Matches(msg, m.keys.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true
	case key.Matches(msg, m.keys.Home):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case key.Matches(msg, m.keys.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}
