package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gadgetfind/internal/domain"
)

const (
	cardSwatchHeight = 3
	cardTitleLines   = 2
	minCardWidth     = 12
)

// CardRenderer handles rendering of Results grid cells
type CardRenderer struct {
	styles *Styles
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles) *CardRenderer {
	return &CardRenderer{
		styles: styles,
	}
}

// RenderCard renders one grid cell of the given outer width
func (c *CardRenderer) RenderCard(item domain.Item, isSelected bool, width int) string {
	if width < minCardWidth {
		width = minCardWidth
	}
	// Border and padding take two cells each side
	inner := width - 4

	lines := []string{RenderSwatch(item.Image, inner, cardSwatchHeight)}

	title := ClampLines(item.Title, inner, cardTitleLines)
	for len(title) < cardTitleLines {
		title = append(title, "")
	}
	for _, l := range title {
		lines = append(lines, c.styles.Text.Render(l))
	}

	stats := fmt.Sprintf("◉ %s  %s %s",
		FormatCount(item.Views),
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Render("♥"),
		FormatCount(item.Likes))
	lines = append(lines, c.styles.Stats.Render(Truncate(stats, inner)))

	style := c.styles.Card
	if isSelected {
		style = c.styles.CardSelected
	}
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// RenderGrid lays out items row-major in columns, drawing only rows
// [firstRow, firstRow+rowCount). cursor marks the selected item.
func (c *CardRenderer) RenderGrid(items []domain.Item, columns, cursor, firstRow, rowCount, width int) string {
	if columns < 1 {
		columns = 1
	}
	cardWidth := width / columns

	var rows []string
	for row := firstRow; row < firstRow+rowCount; row++ {
		start := row * columns
		if start >= len(items) {
			break
		}
		end := start + columns
		if end > len(items) {
			end = len(items)
		}

		cells := make([]string, 0, columns)
		for i := start; i < end; i++ {
			cells = append(cells, c.RenderCard(items[i], i == cursor, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

// CardHeight returns the rendered height of one card
func CardHeight() int {
	// swatch + title + stats + top and bottom border
	return cardSwatchHeight + cardTitleLines + 1 + 2
}
