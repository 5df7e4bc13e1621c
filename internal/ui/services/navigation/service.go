package navigation

import (
	"gadgetfind/internal/eventbus"
)

// Service moves a cursor over a row-major grid of items and keeps it in view
type Service struct {
	state *State
	bus   eventbus.EventBus
}

// NewService creates a single-column navigation service
func NewService(bus eventbus.EventBus) *Service {
	return &Service{
		state: &State{
			Cursor:         0,
			ViewportOffset: 0,
			ViewportHeight: 20, // Default, will be updated
			Columns:        1,
		},
		bus: bus,
	}
}

// GetCursor returns current cursor position
func (s *Service) GetCursor() int {
	return s.state.Cursor
}

// GetViewportOffset returns the first visible row
func (s *Service) GetViewportOffset() int {
	return s.state.ViewportOffset
}

// GetViewportHeight returns the number of visible rows
func (s *Service) GetViewportHeight() int {
	return s.state.ViewportHeight
}

// GetColumns returns the column count
func (s *Service) GetColumns() int {
	return s.state.Columns
}

// GetItemCount returns the number of navigable items
func (s *Service) GetItemCount() int {
	return s.state.ItemCount
}

// SetViewportHeight updates the number of visible rows
func (s *Service) SetViewportHeight(rows int) {
	if rows < 1 {
		rows = 1
	}
	s.state.ViewportHeight = rows
	s.ensureVisible()
}

// SetColumns changes the grid width. Values below 1 mean a list.
func (s *Service) SetColumns(columns int) {
	if columns < 1 {
		columns = 1
	}
	s.state.Columns = columns
	s.ensureVisible()
}

// SetItemCount updates the item count and pulls the cursor back into range
func (s *Service) SetItemCount(count int) {
	if count < 0 {
		count = 0
	}
	s.state.ItemCount = count
	s.MoveToIndex(s.state.Cursor)
}

// Reset puts the cursor back on the first item
func (s *Service) Reset() {
	s.MoveToIndex(0)
	s.state.ViewportOffset = 0
}

// Navigate handles navigation in a direction
func (s *Service) Navigate(direction Direction) {
	oldCursor := s.state.Cursor

	switch direction {
	case DirectionUp:
		s.moveBy(-s.state.Columns)
	case DirectionDown:
		s.moveDown()
	case DirectionLeft:
		s.moveBy(-1)
	case DirectionRight:
		s.moveBy(1)
	case DirectionPageUp:
		s.moveBy(-s.pageSize())
	case DirectionPageDown:
		s.state.Cursor = s.clampIndex(s.state.Cursor + s.pageSize())
	case DirectionHome:
		s.state.Cursor = 0
	case DirectionEnd:
		s.state.Cursor = s.maxIndex()
	}

	s.ensureVisible()
	s.publishMove(oldCursor)
}

// MoveToIndex moves cursor to specific index
func (s *Service) MoveToIndex(index int) {
	oldCursor := s.state.Cursor
	s.state.Cursor = s.clampIndex(index)
	s.ensureVisible()
	s.publishMove(oldCursor)
}

// RowOf returns the grid row holding index
func (s *Service) RowOf(index int) int {
	return index / s.state.Columns
}

// VisibleRange returns the half-open index range currently in view
func (s *Service) VisibleRange() (start, end int) {
	start = s.state.ViewportOffset * s.state.Columns
	end = start + s.state.ViewportHeight*s.state.Columns
	if end > s.state.ItemCount {
		end = s.state.ItemCount
	}
	if start > end {
		start = end
	}
	return start, end
}

// moveBy moves within bounds and stays put when the target is out of range
func (s *Service) moveBy(delta int) {
	target := s.state.Cursor + delta
	if target < 0 || target > s.maxIndex() {
		return
	}
	s.state.Cursor = target
}

// moveDown drops to the last item when the row below is shorter than the cursor column
func (s *Service) moveDown() {
	target := s.state.Cursor + s.state.Columns
	if target <= s.maxIndex() {
		s.state.Cursor = target
		return
	}
	if s.RowOf(s.state.Cursor) < s.RowOf(s.maxIndex()) {
		s.state.Cursor = s.maxIndex()
	}
}

func (s *Service) pageSize() int {
	size := (s.state.ViewportHeight - 1) * s.state.Columns
	if size < s.state.Columns {
		size = s.state.Columns
	}
	return size
}

func (s *Service) maxIndex() int {
	if s.state.ItemCount == 0 {
		return 0
	}
	return s.state.ItemCount - 1
}

func (s *Service) clampIndex(index int) int {
	if index < 0 {
		return 0
	}
	if index > s.maxIndex() {
		return s.maxIndex()
	}
	return index
}

func (s *Service) ensureVisible() {
	row := s.RowOf(s.state.Cursor)
	if row < s.state.ViewportOffset {
		s.state.ViewportOffset = row
	} else if row >= s.state.ViewportOffset+s.state.ViewportHeight {
		s.state.ViewportOffset = row - s.state.ViewportHeight + 1
	}
}

func (s *Service) publishMove(oldCursor int) {
	if oldCursor == s.state.Cursor || s.bus == nil {
		return
	}
	s.bus.Publish(eventbus.CursorMovedEvent{
		OldIndex: oldCursor,
		NewIndex: s.state.Cursor,
	})
}
