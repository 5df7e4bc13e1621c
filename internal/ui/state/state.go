package state

// ScreenKind identifies one of the three screens
type ScreenKind int

const (
	ScreenSearch ScreenKind = iota
	ScreenResults
	ScreenDetail
)

// String returns the screen name used in logs and events
func (k ScreenKind) String() string {
	switch k {
	case ScreenSearch:
		return "search"
	case ScreenResults:
		return "results"
	case ScreenDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// Route is a screen plus the one value handed to it.
// Param is empty for Search, the query for Results and the item id for Detail.
type Route struct {
	Screen ScreenKind
	Param  string
}

// AppState contains the application state that is not owned by a screen
type AppState struct {
	// Navigation stack, bottom first. Never empty.
	Routes []Route

	// UI state
	Width            int
	Height           int
	ShowHelp         bool
	HelpScrollOffset int    // scroll offset for help popup
	StatusMessage    string // status bar message
	StatusIsError    bool
}

// NewAppState creates a new application state rooted at the Search screen
func NewAppState() *AppState {
	return &AppState{
		Routes: []Route{{Screen: ScreenSearch}},
	}
}

// Current returns the route on top of the stack
func (s *AppState) Current() Route {
	return s.Routes[len(s.Routes)-1]
}

// Depth returns the number of routes on the stack
func (s *AppState) Depth() int {
	return len(s.Routes)
}

// Push puts a route on top of the stack
func (s *AppState) Push(r Route) {
	s.Routes = append(s.Routes, r)
}

// Pop removes the top route. The root route is never popped.
func (s *AppState) Pop() (Route, bool) {
	if len(s.Routes) <= 1 {
		return Route{}, false
	}
	top := s.Routes[len(s.Routes)-1]
	s.Routes = s.Routes[:len(s.Routes)-1]
	return top, true
}

// CanGoBack reports whether there is a screen below the current one
func (s *AppState) CanGoBack() bool {
	return len(s.Routes) > 1
}

// ToggleHelp flips help visibility and resets its scroll
func (s *AppState) ToggleHelp() {
	s.ShowHelp = !s.ShowHelp
	s.HelpScrollOffset = 0
}

// SetStatus sets the status bar message
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = false
}

// SetError sets the status bar message and marks it as a failure
func (s *AppState) SetError(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = true
}

// ClearStatus clears the status bar message
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}
