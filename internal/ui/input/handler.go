package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"gadgetfind/internal/ui/input/keys"
	"gadgetfind/internal/ui/input/modes"
	"gadgetfind/internal/ui/input/types"
)

// SearchPlaceholder is shown in an empty search bar
const SearchPlaceholder = "Search"

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Shared by the Search and Results search bars
	keys        keys.KeyMap
}

func New() *Handler {
	ti := textinput.New()
	ti.Prompt = "" // Prompt is handled in the UI layer
	ti.Placeholder = SearchPlaceholder

	h := &Handler{
		currentMode: types.ModeSearch,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        keys.Default,
	}

	// Register all mode handlers
	h.modes[types.ModeSearch] = modes.NewSearchMode(h.keys)
	h.modes[types.ModeResults] = modes.NewResultsMode(h.keys)
	h.modes[types.ModeDetail] = modes.NewDetailMode(h.keys)
	h.modes[types.ModeHelp] = modes.NewHelpMode(h.keys)

	h.textInput.Focus()
	return h
}

// HandleKey runs msg through the current mode. Keys the mode leaves alone
// go to the search bar in text modes and come back as an UpdateTextAction.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if consumed || !h.isTextMode(h.currentMode) {
		return actions, nil
	}

	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	// Always append an update action when in text mode to keep view in sync
	actions = append(actions, types.UpdateTextAction{Text: h.textInput.Value()})
	return actions, cmd
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// TextInput returns the search bar while a text mode is active
func (h *Handler) TextInput() *textinput.Model {
	if h.isTextMode(h.currentMode) {
		return h.textInput
	}
	return nil
}

// Keys returns the key map used by all modes
func (h *Handler) Keys() keys.KeyMap {
	return h.keys
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	switch mode {
	case types.ModeSearch, types.ModeResults:
		return true
	default:
		return false
	}
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}

// ChangeMode switches modes and loads data into the search bar for text modes.
// Each screen owns its query, so the bar is refilled whenever a screen comes to the top.
func (h *Handler) ChangeMode(mode types.Mode, data string) {
	h.currentMode = mode
	if h.isTextMode(mode) {
		h.textInput.Reset()
		h.textInput.SetValue(data)
		h.textInput.CursorEnd()
		h.textInput.Focus()
	} else {
		h.textInput.Blur()
	}
}
