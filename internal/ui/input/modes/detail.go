package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gadgetfind/internal/ui/input/keys"
	"gadgetfind/internal/ui/input/types"
)

// DetailMode handles the Detail screen. It has no text input.
type DetailMode struct {
	keys keys.KeyMap
}

func NewDetailMode(km keys.KeyMap) *DetailMode {
	return &DetailMode{keys: km}
}

func (m *DetailMode) Name() string {
	return "detail"
}

func (m *DetailMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.keys.DetailBack):
		return []types.Action{types.BackAction{}}, true
	case key.Matches(msg, m.keys.Copy):
		if ctx.CurrentItemID() == "" {
			return nil, false
		}
		return []types.Action{types.CopyTitleAction{}}, true
	case key.Matches(msg, m.keys.DetailHelp):
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, false
}
