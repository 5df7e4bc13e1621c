package search

import (
	"gadgetfind/internal/domain"
	"gadgetfind/internal/eventbus"
	"gadgetfind/internal/ui/logic"
)

// Service owns the query state of a single screen instance.
// Results are only ever produced by filtering the catalog with the query.
type Service struct {
	state  *State
	bus    eventbus.EventBus
	screen string
	items  []domain.Item
}

// NewService creates a search service over items for the named screen
func NewService(bus eventbus.EventBus, screen string, items []domain.Item) *Service {
	return &Service{
		state: &State{
			Query:   "",
			Results: []domain.Item{},
		},
		bus:    bus,
		screen: screen,
		items:  items,
	}
}

// SetQuery replaces the query and recomputes the results
func (s *Service) SetQuery(query string) {
	if query == s.state.Query {
		return
	}

	s.state.Query = query
	s.publish(eventbus.SearchStartedEvent{Screen: s.screen, Query: query})
	s.performSearch()
}

// Clear resets the query and results
func (s *Service) Clear() {
	s.state.Query = ""
	s.state.Results = []domain.Item{}

	s.publish(eventbus.SearchClearedEvent{Screen: s.screen})
}

// GetQuery returns the current query
func (s *Service) GetQuery() string {
	return s.state.Query
}

// GetResults returns a copy of the current results
func (s *Service) GetResults() []domain.Item {
	out := make([]domain.Item, len(s.state.Results))
	copy(out, s.state.Results)
	return out
}

// ResultAt returns the result at index i
func (s *Service) ResultAt(i int) (domain.Item, bool) {
	if i < 0 || i >= len(s.state.Results) {
		return domain.Item{}, false
	}
	return s.state.Results[i], true
}

// GetMatchCount returns the number of results
func (s *Service) GetMatchCount() int {
	return len(s.state.Results)
}

// HasResults reports whether the query matched anything
func (s *Service) HasResults() bool {
	return len(s.state.Results) > 0
}

// Spans splits a title for display against the current query
func (s *Service) Spans(title string) []domain.Span {
	return logic.Highlight(title, s.state.Query)
}

func (s *Service) performSearch() {
	s.state.Results = logic.Filter(s.items, s.state.Query)

	firstMatch := ""
	if len(s.state.Results) > 0 {
		firstMatch = s.state.Results[0].ID
	}

	s.publish(eventbus.SearchCompletedEvent{
		Screen:     s.screen,
		Query:      s.state.Query,
		MatchCount: len(s.state.Results),
		FirstMatch: firstMatch,
	})
}

func (s *Service) publish(event eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}
