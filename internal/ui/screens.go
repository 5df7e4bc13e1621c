package ui

import (
	"gadgetfind/internal/catalog"
	"gadgetfind/internal/domain"
	"gadgetfind/internal/eventbus"
	"gadgetfind/internal/ui/input/types"
	"gadgetfind/internal/ui/services/navigation"
	"gadgetfind/internal/ui/services/search"
	"gadgetfind/internal/ui/state"
)

// screen is one live instance on the navigation stack. It owns its query
// state, so a Search screen under Results or Detail keeps its query and cursor.
type screen struct {
	route state.Route

	// Search and Results
	search *search.Service
	nav    *navigation.Service

	// Detail
	item  domain.Item
	found bool
}

func newSearchScreen(bus eventbus.EventBus, cat *catalog.Catalog) *screen {
	s := &screen{
		route:  state.Route{Screen: state.ScreenSearch},
		search: search.NewService(bus, search.ScreenSearch, cat.Items()),
		nav:    navigation.NewService(bus),
	}
	s.syncRows()
	return s
}

// newResultsScreen filters the handed-off query straight away
func newResultsScreen(bus eventbus.EventBus, cat *catalog.Catalog, query string, columns int) *screen {
	s := &screen{
		route:  state.Route{Screen: state.ScreenResults, Param: query},
		search: search.NewService(bus, search.ScreenResults, cat.Items()),
		nav:    navigation.NewService(bus),
	}
	s.nav.SetColumns(columns)
	s.search.SetQuery(query)
	s.syncRows()
	return s
}

func newDetailScreen(cat *catalog.Catalog, id string) *screen {
	item, found := cat.FindByID(id)
	return &screen{
		route: state.Route{Screen: state.ScreenDetail, Param: id},
		item:  item,
		found: found,
	}
}

func (s *screen) kind() state.ScreenKind {
	return s.route.Screen
}

func (s *screen) isList() bool {
	return s.search != nil
}

// hasFooter reports whether Search shows a selectable "Show all results" row
func (s *screen) hasFooter() bool {
	return s.kind() == state.ScreenSearch && s.search.HasResults()
}

// rowCount is the number of navigable rows, footer included
func (s *screen) rowCount() int {
	if !s.isList() {
		return 0
	}
	n := s.search.GetMatchCount()
	if s.hasFooter() {
		n++
	}
	return n
}

// syncRows tells the cursor how many rows there are after the results change
func (s *screen) syncRows() {
	if s.isList() {
		s.nav.SetItemCount(s.rowCount())
	}
}

// setQuery updates the query and puts the cursor back on the first row when it changed
func (s *screen) setQuery(query string) {
	if query == s.search.GetQuery() {
		return
	}
	s.search.SetQuery(query)
	s.syncRows()
	s.nav.Reset()
}

func (s *screen) clear() {
	s.search.Clear()
	s.syncRows()
	s.nav.Reset()
}

// inputMode is the input mode that drives this screen
func (s *screen) inputMode() types.Mode {
	switch s.kind() {
	case state.ScreenResults:
		return types.ModeResults
	case state.ScreenDetail:
		return types.ModeDetail
	default:
		return types.ModeSearch
	}
}

// query returns the text to load into the search bar
func (s *screen) query() string {
	if !s.isList() {
		return ""
	}
	return s.search.GetQuery()
}
