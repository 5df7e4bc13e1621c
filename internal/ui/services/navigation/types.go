package navigation

// State holds cursor and viewport state for a list or grid.
// A list is a grid with one column.
type State struct {
	Cursor         int
	ViewportOffset int // first visible row
	ViewportHeight int // visible rows
	ItemCount      int
	Columns        int
}

// Direction represents movement directions
type Direction string

const (
	DirectionUp       Direction = "up"
	DirectionDown     Direction = "down"
	DirectionLeft     Direction = "left"
	DirectionRight    Direction = "right"
	DirectionPageUp   Direction = "pageup"
	DirectionPageDown Direction = "pagedown"
	DirectionHome     Direction = "home"
	DirectionEnd      Direction = "end"
)
