package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gadgetfind/internal/ui/input/keys"
	"gadgetfind/internal/ui/input/types"
)

// HelpMode is active while the help popup covers a screen
type HelpMode struct {
	keys keys.KeyMap
}

func NewHelpMode(km keys.KeyMap) *HelpMode {
	return &HelpMode{keys: km}
}

func (m *HelpMode) Name() string {
	return "help"
}

func (m *HelpMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.keys.HelpClose):
		return []types.Action{types.ToggleHelpAction{}}, true
	case key.Matches(msg, m.keys.HelpScrollUp):
		return []types.Action{types.ScrollHelpAction{Delta: -1}}, true
	case key.Matches(msg, m.keys.HelpScrollDown):
		return []types.Action{types.ScrollHelpAction{Delta: 1}}, true
	}
	// Swallow everything else so typing doesn't leak into the query
	return nil, true
}
