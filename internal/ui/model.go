package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"gadgetfind/internal/catalog"
	"gadgetfind/internal/config"
	"gadgetfind/internal/eventbus"
	"gadgetfind/internal/ui/commands"
	"gadgetfind/internal/ui/handlers"
	"gadgetfind/internal/ui/input"
	inputtypes "gadgetfind/internal/ui/input/types"
	"gadgetfind/internal/ui/services/navigation"
	"gadgetfind/internal/ui/state"
	"gadgetfind/internal/ui/viewmodels"
	"gadgetfind/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	catalog *catalog.Catalog
	logger  *zap.Logger
	state   *state.AppState // centralized state

	// Live screens, one per entry in state.Routes
	screens []*screen

	help        help.Model
	inPagerMode bool // tracks if we're currently in pager mode

	eventHandler *handlers.EventHandler
	helpRenderer *HelpRenderer
	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	cmdExecutor  *commands.Executor

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model rooted at an empty Search screen
func NewModel(bus eventbus.EventBus, cfg *config.Config, cat *catalog.Catalog, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	appState := state.NewAppState()
	handler := input.New()

	m := &Model{
		bus:          bus,
		config:       cfg,
		catalog:      cat,
		logger:       logger.Named("ui"),
		state:        appState,
		help:         help.New(),
		eventHandler: handlers.NewEventHandler(appState),
		helpRenderer: NewHelpRenderer(handler.Keys()),
		renderer:     views.NewRenderer(),
		viewModel:    viewmodels.NewViewModel(appState, cfg, handler.Keys()),
		inputHandler: handler,
		cmdExecutor:  commands.NewExecutor(appState, bus, systemClipboard, statusTimeout),
	}

	m.screens = []*screen{newSearchScreen(bus, cat)}
	m.syncInputMode()
	return m
}

// SetInitialQuery types query into the root Search screen
func (m *Model) SetInitialQuery(query string) {
	if query == "" {
		return
	}
	m.screens[0].setQuery(query)
	m.syncInputMode()
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		for _, s := range m.screens {
			m.resizeScreen(s)
		}
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}

		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())

		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}
		return m, tea.Batch(cmds...)

	default:
		// Cursor blink and other messages for the search bar
		inputCmd := m.inputHandler.Update(msg)
		model, cmd := m.handleNonKeyboardMsg(msg)
		return model, tea.Batch(inputCmd, cmd)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.state.Width == 0 {
		return "Loading..."
	}

	top := m.top()
	if top.isList() {
		m.viewModel.SetListScreen(top.kind(), top.search, top.nav)
	} else {
		m.viewModel.SetDetailScreen(top.item, top.found)
	}
	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.UpdateTextInput(ti.View())
	}

	m.viewModel.SetHelp(m.help)
	if m.state.ShowHelp {
		m.viewModel.SetHelpContent(m.helpRenderer.renderHelpContent(m.state.Height, m.state.HelpScrollOffset))
	}

	return m.renderer.Render(m.viewModel.BuildViewState())
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	top := m.top()

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		if top.isList() {
			top.nav.Navigate(navigation.Direction(a.Direction))
		}

	case inputtypes.UpdateTextAction:
		if top.isList() {
			top.setQuery(a.Text)
		}

	case inputtypes.ClearAction:
		if top.isList() {
			top.clear()
			m.inputHandler.ChangeMode(top.inputMode(), "")
		}

	case inputtypes.OpenItemAction:
		m.pushRoute(state.Route{Screen: state.ScreenDetail, Param: a.ID})

	case inputtypes.ShowAllAction:
		m.pushRoute(state.Route{Screen: state.ScreenResults, Param: a.Query})

	case inputtypes.BackAction:
		m.popRoute()

	case inputtypes.CopyTitleAction:
		if top.kind() == state.ScreenDetail && top.found {
			return m.cmdExecutor.ExecuteCopyTitle(top.item)
		}

	case inputtypes.ToggleHelpAction:
		return m.toggleHelp()

	case inputtypes.ScrollHelpAction:
		offset := m.state.HelpScrollOffset + a.Delta
		if limit := m.helpRenderer.maxScroll(m.state.Height); offset > limit {
			offset = limit
		}
		if offset < 0 {
			offset = 0
		}
		m.state.HelpScrollOffset = offset

	case inputtypes.QuitAction:
		m.logger.Info("quit requested", zap.Bool("force", a.Force))
		return tea.Quit
	}

	return nil
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		cmd := m.eventHandler.HandleEvent(msg.Event)
		if m.state.StatusMessage == "" {
			return m, cmd
		}
		return m, tea.Batch(cmd, m.cmdExecutor.ExecuteStatus("", false))

	case commands.CopiedMsg:
		if msg.Err != nil {
			m.logger.Warn("copy to clipboard failed", zap.Error(msg.Err))
			return m, m.cmdExecutor.ExecuteStatus(fmt.Sprintf("Copy failed: %v", msg.Err), true)
		}
		m.logger.Debug("copied title", zap.String("title", msg.Text))
		return m, m.cmdExecutor.ExecuteStatus(fmt.Sprintf("Copied %q", msg.Text), false)

	case commands.StatusExpiredMsg:
		m.cmdExecutor.ExpireStatus(msg)
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed, log and fall back to popup
			m.logger.Warn("help pager failed, falling back to popup", zap.Error(msg.err))
			m.state.ShowHelp = true
			m.state.HelpScrollOffset = 0
			m.syncInputMode()
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		// Bubble Tea's RestoreTerminal() handles the actual resuming
		m.inPagerMode = false
		return m, nil

	default:
		return m, nil
	}
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	ops := NewHelpOps(m.program)
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := ops.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

func (m *Model) toggleHelp() tea.Cmd {
	if !m.state.ShowHelp && m.config.UISettings.HelpInPager && m.program != nil {
		return m.fetchHelpPager(m.helpRenderer.RenderHelpContentPlain())
	}
	m.state.ToggleHelp()
	m.syncInputMode()
	return nil
}

// pushRoute builds a fresh screen for route and puts it on top
func (m *Model) pushRoute(route state.Route) {
	var s *screen
	switch route.Screen {
	case state.ScreenResults:
		s = newResultsScreen(m.bus, m.catalog, route.Param, m.config.UISettings.GridColumns)
	case state.ScreenDetail:
		s = newDetailScreen(m.catalog, route.Param)
		if s.found {
			m.publish(eventbus.ItemOpenedEvent{ID: s.item.ID, Title: s.item.Title})
		} else {
			m.logger.Info("item not found", zap.String("id", route.Param))
			m.publish(eventbus.ItemNotFoundEvent{ID: route.Param})
		}
	default:
		s = newSearchScreen(m.bus, m.catalog)
	}

	m.state.Push(route)
	m.screens = append(m.screens, s)
	m.resizeScreen(s)
	m.state.ClearStatus()

	m.publish(eventbus.ScreenPushedEvent{
		Screen: route.Screen.String(),
		Param:  route.Param,
		Depth:  m.state.Depth(),
	})
	m.syncInputMode()
}

// popRoute discards the top screen and its state
func (m *Model) popRoute() {
	route, ok := m.state.Pop()
	if !ok {
		return
	}
	m.screens = m.screens[:len(m.screens)-1]
	m.state.ClearStatus()

	m.publish(eventbus.ScreenPoppedEvent{
		Screen: route.Screen.String(),
		Depth:  m.state.Depth(),
	})
	m.syncInputMode()
}

func (m *Model) top() *screen {
	return m.screens[len(m.screens)-1]
}

// syncInputMode points the input handler at the visible screen and refills its search bar
func (m *Model) syncInputMode() {
	if m.state.ShowHelp {
		m.inputHandler.ChangeMode(inputtypes.ModeHelp, "")
		return
	}
	top := m.top()
	m.inputHandler.ChangeMode(top.inputMode(), top.query())
}

func (m *Model) resizeScreen(s *screen) {
	if !s.isList() || m.state.Height == 0 {
		return
	}
	if s.kind() == state.ScreenResults {
		s.nav.SetViewportHeight(views.GridRows(m.state.Height))
	} else {
		s.nav.SetViewportHeight(views.ListRows(m.state.Height, m.config.UISettings.ShowCategory))
	}
}

// inputContext snapshots the top screen for the input handler
func (m *Model) inputContext() *input.ModelContext {
	top := m.top()
	ctx := &input.ModelContext{}
	if top.isList() {
		ctx.Cursor = top.nav.GetCursor()
		ctx.Items = top.search.GetResults()
		ctx.QueryText = top.search.GetQuery()
		ctx.HasFooter = top.hasFooter()
	} else if top.found {
		ctx.DetailID = top.item.ID
	}
	return ctx
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}
