package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"gadgetfind/internal/config"
	"gadgetfind/internal/domain"
	"gadgetfind/internal/ui/input/keys"
	"gadgetfind/internal/ui/services/navigation"
	"gadgetfind/internal/ui/services/search"
	"gadgetfind/internal/ui/state"
	"gadgetfind/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state  *state.AppState
	config *config.Config
	help   help.Model
	keys   keys.KeyMap

	textInput   string
	helpContent string

	// Top screen
	screen state.ScreenKind
	search *search.Service
	nav    *navigation.Service
	item   domain.Item
	found  bool
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, km keys.KeyMap) *ViewModel {
	return &ViewModel{
		state:  appState,
		config: cfg,
		help:   help.New(),
		keys:   km,
	}
}

// SetHelp sets the help model
func (vm *ViewModel) SetHelp(helpModel help.Model) {
	vm.help = helpModel
}

// UpdateTextInput sets the rendered search bar input
func (vm *ViewModel) UpdateTextInput(view string) {
	vm.textInput = view
}

// SetHelpContent sets the already scrolled help popup body
func (vm *ViewModel) SetHelpContent(content string) {
	vm.helpContent = content
}

// SetListScreen points the view model at a Search or Results screen
func (vm *ViewModel) SetListScreen(kind state.ScreenKind, svc *search.Service, nav *navigation.Service) {
	vm.screen = kind
	vm.search = svc
	vm.nav = nav
	vm.item = domain.Item{}
	vm.found = false
}

// SetDetailScreen points the view model at a Detail screen
func (vm *ViewModel) SetDetailScreen(item domain.Item, found bool) {
	vm.screen = state.ScreenDetail
	vm.search = nil
	vm.nav = nil
	vm.item = item
	vm.found = found
}

// KeyHelp returns the bindings shown for the current screen
func (vm *ViewModel) KeyHelp() help.KeyMap {
	switch vm.screen {
	case state.ScreenResults:
		return vm.keys.ResultsHelp()
	case state.ScreenDetail:
		return vm.keys.DetailScreenHelp()
	default:
		return vm.keys.SearchHelp()
	}
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	vs := views.ViewState{
		Width:         vm.state.Width,
		Height:        vm.state.Height,
		Screen:        vm.screen,
		ShowCategory:  vm.config.UISettings.ShowCategory,
		Columns:       1,
		Item:          vm.item,
		Found:         vm.found,
		StatusMessage: vm.state.StatusMessage,
		StatusIsError: vm.state.StatusIsError,
		ShowHelp:      vm.state.ShowHelp,
		HelpContent:   vm.helpContent,
		HelpModel:     vm.help,
		KeyMap:        vm.KeyHelp(),
	}

	if vm.search != nil {
		vs.SearchBar = vm.textInput
		vs.Query = vm.search.GetQuery()
		vs.Results = vm.search.GetResults()
		if vm.screen == state.ScreenSearch {
			vs.Spans = make([][]domain.Span, len(vs.Results))
			for i, item := range vs.Results {
				vs.Spans[i] = vm.search.Spans(item.Title)
			}
		}
	}
	if vm.nav != nil {
		vs.Cursor = vm.nav.GetCursor()
		vs.ViewportOffset = vm.nav.GetViewportOffset()
		vs.ViewportHeight = vm.nav.GetViewportHeight()
		vs.Columns = vm.nav.GetColumns()
	}
	return vs
}
