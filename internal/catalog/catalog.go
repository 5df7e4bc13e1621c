package catalog

import (
	"errors"
	"fmt"
	"strings"

	"gadgetfind/internal/domain"
)

var (
	// ErrEmptyID is returned when an item has a blank id
	ErrEmptyID = errors.New("item id is empty")
	// ErrDuplicateID is returned when two items share an id
	ErrDuplicateID = errors.New("duplicate item id")
	// ErrNegativeCount is returned when views or likes is below zero
	ErrNegativeCount = errors.New("negative counter")
)

// Catalog is the ordered, read-only set of searchable items.
// It is safe for concurrent readers because nothing mutates it after New.
type Catalog struct {
	items []domain.Item
	index map[string]int // id -> position in items
}

// New validates items, resolves their assets and builds the id index
func New(items []domain.Item) (*Catalog, error) {
	c := &Catalog{
		items: make([]domain.Item, 0, len(items)),
		index: make(map[string]int, len(items)),
	}

	for i, item := range items {
		if strings.TrimSpace(item.ID) == "" {
			return nil, fmt.Errorf("item %d (%q): %w", i, item.Title, ErrEmptyID)
		}
		if _, exists := c.index[item.ID]; exists {
			return nil, fmt.Errorf("item %d: %w: %q", i, ErrDuplicateID, item.ID)
		}
		if item.Views < 0 || item.Likes < 0 {
			return nil, fmt.Errorf("item %q: %w", item.ID, ErrNegativeCount)
		}

		item.Thumbnail = ResolveAsset(item.ThumbnailRef)
		item.Image = ResolveAsset(item.ImageRef)

		c.index[item.ID] = len(c.items)
		c.items = append(c.items, item)
	}

	return c, nil
}

// Items returns a copy of the items in catalog order
func (c *Catalog) Items() []domain.Item {
	out := make([]domain.Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items
func (c *Catalog) Len() int {
	return len(c.items)
}

// FindByID looks up a single item. The bool is false when no item has that id.
func (c *Catalog) FindByID(id string) (domain.Item, bool) {
	i, ok := c.index[id]
	if !ok {
		return domain.Item{}, false
	}
	return c.items[i], true
}
