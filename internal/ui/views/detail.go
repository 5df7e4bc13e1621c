package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gadgetfind/internal/domain"
)

// NotFoundText is shown when the Detail id matches no item
const NotFoundText = "Item not found"

const (
	backHint          = "← back"
	maxDetailSwatchW  = 48
	detailSwatchRatio = 4 // width per row of height
)

// DetailRenderer handles the Detail screen
type DetailRenderer struct {
	styles *Styles
}

// NewDetailRenderer creates a new detail renderer
func NewDetailRenderer(styles *Styles) *DetailRenderer {
	return &DetailRenderer{
		styles: styles,
	}
}

// RenderDetail renders an item: image, lowercase title, uppercase category and counters
func (d *DetailRenderer) RenderDetail(item domain.Item, width int) string {
	swatchW := width
	if swatchW > maxDetailSwatchW {
		swatchW = maxDetailSwatchW
	}
	swatchH := swatchW / detailSwatchRatio
	if swatchH < 3 {
		swatchH = 3
	}

	var b strings.Builder
	b.WriteString(d.styles.Dim.Render(backHint))
	b.WriteString("\n\n")
	b.WriteString(RenderSwatch(item.Image, swatchW, swatchH))
	b.WriteString("\n\n")
	b.WriteString(d.styles.DetailTitle.Render(strings.ToLower(item.Title)))
	b.WriteString("\n")
	b.WriteString(d.styles.DetailMeta.Render("■ " + strings.ToUpper(item.Category)))
	b.WriteString("\n\n")

	views := d.styles.Stats.Render(fmt.Sprintf("◉ %s views", FormatCount(item.Views)))
	likes := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Render("♥") +
		d.styles.Stats.Render(fmt.Sprintf(" %s likes", FormatCount(item.Likes)))
	b.WriteString(views + "   " + likes)

	return b.String()
}

// RenderNotFound renders the miss state with a way back
func (d *DetailRenderer) RenderNotFound() string {
	return d.styles.Dim.Render(backHint) + "  " + d.styles.NotFound.Render(NotFoundText)
}
