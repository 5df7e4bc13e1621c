package ui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gadgetfind/internal/catalog"
	"gadgetfind/internal/config"
	"gadgetfind/internal/eventbus"
	"gadgetfind/internal/ui/commands"
	inputtypes "gadgetfind/internal/ui/input/types"
	"gadgetfind/internal/ui/state"
	"gadgetfind/internal/ui/views"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)

	m := NewModel(nil, config.DefaultConfig(), cat, nil)
	m.cmdExecutor.SetCopyFunc(func(string) error { return nil })
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(m *Model, keyType tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: keyType})
	return cmd
}

func pressRune(m *Model, r rune) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return cmd
}

// runCmd executes cmd and flattens batches into their messages
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func resultIDs(m *Model) []string {
	var ids []string
	for _, item := range m.top().search.GetResults() {
		ids = append(ids, item.ID)
	}
	return ids
}

func TestModel_StartsOnEmptySearch(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, state.ScreenSearch, m.top().kind())
	assert.Equal(t, 1, m.state.Depth())
	assert.Empty(t, m.top().search.GetResults())
	assert.Equal(t, inputtypes.ModeSearch, m.inputHandler.CurrentMode())

	assert.Contains(t, m.View(), views.AppName)
}

func TestModel_ViewBeforeResize(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)
	m := NewModel(nil, nil, cat, nil)
	assert.Equal(t, "Loading...", m.View())
}

func TestModel_TypingFiltersSuggestions(t *testing.T) {
	m := newTestModel(t)

	typeText(m, "pi")
	assert.Equal(t, "pi", m.top().search.GetQuery())
	assert.Equal(t, []string{"4", "7"}, resultIDs(m))

	view := m.View()
	assert.Contains(t, view, "Show all results for \"pi\"")
}

func TestModel_NoMatchesShowsNoResultsLine(t *testing.T) {
	m := newTestModel(t)

	typeText(m, "xyz")
	assert.Empty(t, resultIDs(m))
	assert.False(t, m.top().hasFooter())
	assert.Contains(t, m.View(), "No results found for \"xyz\"")

	// Enter does nothing without a selectable row
	press(m, tea.KeyEnter)
	assert.Equal(t, 1, m.state.Depth())
}

func TestModel_FooterOpensResults(t *testing.T) {
	m := newTestModel(t)

	typeText(m, "pi")
	press(m, tea.KeyDown)
	press(m, tea.KeyDown)
	require.Equal(t, 2, m.top().nav.GetCursor())

	press(m, tea.KeyEnter)
	require.Equal(t, state.ScreenResults, m.top().kind())
	assert.Equal(t, "pi", m.state.Current().Param)
	assert.Equal(t, []string{"4", "7"}, resultIDs(m))
	assert.Equal(t, inputtypes.ModeResults, m.inputHandler.CurrentMode())
	assert.Equal(t, "pi", m.inputHandler.TextInput().Value())
}

func TestModel_EnterOnSuggestionOpensDetail(t *testing.T) {
	m := newTestModel(t)

	typeText(m, "pi")
	press(m, tea.KeyEnter)

	require.Equal(t, state.ScreenDetail, m.top().kind())
	assert.True(t, m.top().found)
	assert.Equal(t, "4", m.top().item.ID)
	assert.Equal(t, inputtypes.ModeDetail, m.inputHandler.CurrentMode())
	assert.Contains(t, m.View(), "power pi version 2")
}

func TestModel_DetailBackKeepsSearchState(t *testing.T) {
	m := newTestModel(t)

	typeText(m, "pi")
	press(m, tea.KeyDown)
	press(m, tea.KeyEnter)
	require.Equal(t, "7", m.top().item.ID)

	pressRune(m, 'q')
	require.Equal(t, state.ScreenSearch, m.top().kind())
	assert.Equal(t, "pi", m.top().search.GetQuery())
	assert.Equal(t, 1, m.top().nav.GetCursor())
	assert.Equal(t, "pi", m.inputHandler.TextInput().Value())
}

func TestModel_ResultsEscReturnsToSearch(t *testing.T) {
	m := newTestModel(t)

	typeText(m, "pi")
	m.processAction(inputtypes.ShowAllAction{Query: "pi"})
	require.Equal(t, 2, m.state.Depth())

	press(m, tea.KeyEsc)
	require.Equal(t, 1, m.state.Depth())
	assert.Equal(t, state.ScreenSearch, m.top().kind())
	assert.Equal(t, "pi", m.top().search.GetQuery())
	assert.Equal(t, "pi", m.inputHandler.TextInput().Value())
}

func TestModel_ResultsCtrlBGoesBack(t *testing.T) {
	m := newTestModel(t)

	m.processAction(inputtypes.ShowAllAction{Query: "game"})
	require.Equal(t, state.ScreenResults, m.top().kind())

	press(m, tea.KeyCtrlB)
	assert.Equal(t, state.ScreenSearch, m.top().kind())
}

func TestModel_ResultsRefineQuery(t *testing.T) {
	m := newTestModel(t)

	m.processAction(inputtypes.ShowAllAction{Query: "pi"})
	press(m, tea.KeyBackspace)
	assert.Equal(t, "p", m.top().search.GetQuery())
	assert.Greater(t, len(resultIDs(m)), 2)

	press(m, tea.KeyBackspace)
	assert.Empty(t, m.top().search.GetQuery())
	assert.Empty(t, resultIDs(m))
	assert.Equal(t, state.ScreenResults, m.top().kind())
}

func TestModel_ResultsGridNavigationOpensDetail(t *testing.T) {
	m := newTestModel(t)

	m.processAction(inputtypes.ShowAllAction{Query: "pi"})
	press(m, tea.KeyRight)
	assert.Equal(t, 1, m.top().nav.GetCursor())

	press(m, tea.KeyEnter)
	require.Equal(t, state.ScreenDetail, m.top().kind())
	assert.Equal(t, "7", m.top().item.ID)
	assert.Equal(t, 3, m.state.Depth())
}

func TestModel_UnknownItemShowsNotFound(t *testing.T) {
	m := newTestModel(t)

	m.processAction(inputtypes.OpenItemAction{ID: "does-not-exist"})
	require.Equal(t, state.ScreenDetail, m.top().kind())
	assert.False(t, m.top().found)
	assert.Contains(t, m.View(), views.NotFoundText)

	// Nothing to copy
	for _, msg := range runCmd(pressRune(m, 'y')) {
		_, isCopy := msg.(commands.CopiedMsg)
		assert.False(t, isCopy)
	}
}

func TestModel_EscClearsSearch(t *testing.T) {
	m := newTestModel(t)

	typeText(m, "pi")
	press(m, tea.KeyEsc)
	assert.Empty(t, m.top().search.GetQuery())
	assert.Empty(t, m.inputHandler.TextInput().Value())
	assert.Equal(t, 1, m.state.Depth())

	// A second Esc on an empty query changes nothing
	press(m, tea.KeyEsc)
	assert.Equal(t, 1, m.state.Depth())
	assert.Equal(t, state.ScreenSearch, m.top().kind())
}

func TestModel_WhitespaceQuery(t *testing.T) {
	m := newTestModel(t)

	typeText(m, "  ")
	assert.Empty(t, resultIDs(m))
	assert.Contains(t, m.View(), "No results found for \"  \"")
}

func TestModel_CopyTitle(t *testing.T) {
	m := newTestModel(t)
	var copied string
	m.cmdExecutor.SetCopyFunc(func(text string) error {
		copied = text
		return nil
	})

	m.processAction(inputtypes.OpenItemAction{ID: "3"})
	msgs := runCmd(pressRune(m, 'y'))
	require.Len(t, msgs, 1)
	assert.Equal(t, "boxcilloscope", copied)

	_, cmd := m.Update(msgs[0])
	assert.NotNil(t, cmd)
	assert.Equal(t, "Copied \"boxcilloscope\"", m.state.StatusMessage)
	assert.False(t, m.state.StatusIsError)
}

func TestModel_CopyFailureShowsError(t *testing.T) {
	m := newTestModel(t)

	m.Update(commands.CopiedMsg{Text: "x", Err: errors.New("no clipboard")})
	assert.True(t, m.state.StatusIsError)
	assert.Equal(t, "Copy failed: no clipboard", m.state.StatusMessage)

	// The bus copy of the failure only reaches the log
	m.Update(EventMsg{Event: eventbus.ErrorEvent{Message: "copy to clipboard failed", Err: errors.New("no clipboard")}})
	assert.Equal(t, "Copy failed: no clipboard", m.state.StatusMessage)
}

func TestModel_StaleStatusClearIgnored(t *testing.T) {
	m := newTestModel(t)

	m.cmdExecutor.ExecuteStatus("first", false)
	stale := m.cmdExecutor.StatusSeq()
	m.cmdExecutor.ExecuteStatus("second", false)

	m.Update(commands.StatusExpiredMsg{Seq: stale})
	assert.Equal(t, "second", m.state.StatusMessage)

	m.Update(commands.StatusExpiredMsg{Seq: m.cmdExecutor.StatusSeq()})
	assert.Empty(t, m.state.StatusMessage)
}

func TestModel_HelpPopup(t *testing.T) {
	m := newTestModel(t)
	typeText(m, "pi")

	press(m, tea.KeyF1)
	require.True(t, m.state.ShowHelp)
	assert.Equal(t, inputtypes.ModeHelp, m.inputHandler.CurrentMode())
	assert.NotEmpty(t, m.View())

	// Keys do not reach the search bar while help is open
	pressRune(m, 'x')
	assert.Equal(t, "pi", m.top().search.GetQuery())

	press(m, tea.KeyEsc)
	assert.False(t, m.state.ShowHelp)
	assert.Equal(t, inputtypes.ModeSearch, m.inputHandler.CurrentMode())
	assert.Equal(t, "pi", m.inputHandler.TextInput().Value())
}

func TestModel_HelpScrollClamped(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})

	press(m, tea.KeyF1)
	press(m, tea.KeyUp)
	assert.Equal(t, 0, m.state.HelpScrollOffset)

	for i := 0; i < 200; i++ {
		press(m, tea.KeyDown)
	}
	assert.Equal(t, m.helpRenderer.maxScroll(12), m.state.HelpScrollOffset)
}

func TestModel_HelpPagerFailureFallsBackToPopup(t *testing.T) {
	m := newTestModel(t)

	m.Update(helpPagerMsg{err: errors.New("no tty")})
	assert.True(t, m.state.ShowHelp)
	assert.Equal(t, inputtypes.ModeHelp, m.inputHandler.CurrentMode())
}

func TestModel_PagerModeSwallowsKeys(t *testing.T) {
	m := newTestModel(t)

	m.Update(pauseRenderingMsg{})
	typeText(m, "pi")
	assert.Empty(t, m.top().search.GetQuery())

	m.Update(resumeRenderingMsg{})
	typeText(m, "pi")
	assert.Equal(t, "pi", m.top().search.GetQuery())
}

func TestModel_CtrlCQuits(t *testing.T) {
	m := newTestModel(t)
	m.processAction(inputtypes.OpenItemAction{ID: "1"})

	msgs := runCmd(press(m, tea.KeyCtrlC))
	assert.Contains(t, msgs, tea.Msg(tea.QuitMsg{}))
}

func TestModel_SetInitialQuery(t *testing.T) {
	m := newTestModel(t)

	m.SetInitialQuery("game")
	assert.Equal(t, []string{"5"}, resultIDs(m))
	assert.Equal(t, "game", m.inputHandler.TextInput().Value())
}

func TestModel_EventMsgUpdatesStatus(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(EventMsg{Event: eventbus.CatalogLoadedEvent{Source: "embedded", ItemCount: 10}})
	assert.NotNil(t, cmd)
	assert.Equal(t, "Loaded 10 items from embedded", m.state.StatusMessage)
}

func TestModel_PublishesNavigationEvents(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()

	pushed := make(chan eventbus.ScreenPushedEvent, 4)
	notFound := make(chan eventbus.ItemNotFoundEvent, 1)
	bus.Subscribe(eventbus.EventScreenPushed, func(e eventbus.DomainEvent) {
		pushed <- e.(eventbus.ScreenPushedEvent)
	})
	bus.Subscribe(eventbus.EventItemNotFound, func(e eventbus.DomainEvent) {
		notFound <- e.(eventbus.ItemNotFoundEvent)
	})

	cat, err := catalog.Default()
	require.NoError(t, err)
	m := NewModel(bus, config.DefaultConfig(), cat, nil)
	m.processAction(inputtypes.OpenItemAction{ID: "missing"})

	select {
	case e := <-pushed:
		assert.Equal(t, state.ScreenDetail.String(), e.Screen)
		assert.Equal(t, "missing", e.Param)
		assert.Equal(t, 2, e.Depth)
	case <-time.After(time.Second):
		t.Fatal("expected ScreenPushed event")
	}

	select {
	case e := <-notFound:
		assert.Equal(t, "missing", e.ID)
	case <-time.After(time.Second):
		t.Fatal("expected ItemNotFound event")
	}
}
