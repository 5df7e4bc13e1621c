package search

import "gadgetfind/internal/domain"

// State holds one screen's query and the results derived from it
type State struct {
	Query   string
	Results []domain.Item
}

// Screen names used when publishing search events
const (
	ScreenSearch  = "search"
	ScreenResults = "results"
)
