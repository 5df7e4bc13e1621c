package input

import (
	"gadgetfind/internal/domain"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Cursor    int
	Items     []domain.Item // rows of the current screen
	QueryText string
	HasFooter bool // Search adds a footer row after the items
	DetailID  string
}

// CurrentIndex returns the current selected index
func (c *ModelContext) CurrentIndex() int {
	return c.Cursor
}

// TotalItems returns the number of navigable rows, footer included
func (c *ModelContext) TotalItems() int {
	if c.HasFooter {
		return len(c.Items) + 1
	}
	return len(c.Items)
}

// Query returns the current screen's query
func (c *ModelContext) Query() string {
	return c.QueryText
}

// HasResults reports whether the current screen has any rows
func (c *ModelContext) HasResults() bool {
	return len(c.Items) > 0
}

// IsOnFooter reports whether the cursor sits on the footer row
func (c *ModelContext) IsOnFooter() bool {
	return c.HasFooter && c.Cursor == len(c.Items)
}

// CurrentItemID returns the id under the cursor, or the Detail item id
func (c *ModelContext) CurrentItemID() string {
	if c.DetailID != "" {
		return c.DetailID
	}
	if c.Cursor >= 0 && c.Cursor < len(c.Items) {
		return c.Items[c.Cursor].ID
	}
	return ""
}
