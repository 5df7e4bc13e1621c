package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppStateStartsOnSearch(t *testing.T) {
	s := NewAppState()
	assert.Equal(t, Route{Screen: ScreenSearch}, s.Current())
	assert.Equal(t, 1, s.Depth())
	assert.False(t, s.CanGoBack())
}

func TestPushPop(t *testing.T) {
	s := NewAppState()
	s.Push(Route{Screen: ScreenResults, Param: "pi"})
	s.Push(Route{Screen: ScreenDetail, Param: "4"})
	require.Equal(t, 3, s.Depth())
	assert.Equal(t, Route{Screen: ScreenDetail, Param: "4"}, s.Current())

	top, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, ScreenDetail, top.Screen)
	assert.Equal(t, Route{Screen: ScreenResults, Param: "pi"}, s.Current())

	_, ok = s.Pop()
	require.True(t, ok)

	_, ok = s.Pop()
	assert.False(t, ok)
	assert.Equal(t, ScreenSearch, s.Current().Screen)
}

func TestScreenKindString(t *testing.T) {
	assert.Equal(t, "search", ScreenSearch.String())
	assert.Equal(t, "results", ScreenResults.String())
	assert.Equal(t, "detail", ScreenDetail.String())
	assert.Equal(t, "unknown", ScreenKind(42).String())
}

func TestHelpAndStatus(t *testing.T) {
	s := NewAppState()
	s.HelpScrollOffset = 4
	s.ToggleHelp()
	assert.True(t, s.ShowHelp)
	assert.Equal(t, 0, s.HelpScrollOffset)

	s.SetStatus("copied")
	assert.Equal(t, "copied", s.StatusMessage)
	assert.False(t, s.StatusIsError)

	s.SetError("clipboard unavailable")
	assert.True(t, s.StatusIsError)

	s.ClearStatus()
	assert.Empty(t, s.StatusMessage)
	assert.False(t, s.StatusIsError)
}
