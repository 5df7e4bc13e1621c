package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay draws popupContent centered over a greyed-out mainContent
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	x := (width - modalW) / 2
	y := (height - modalH) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	baseLines := strings.Split(stripANSI(mainContent), "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}
	popupLines := strings.Split(styledPopup, "\n")

	gray := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	out := make([]string, len(baseLines))
	for i, line := range baseLines {
		row := i - y
		if row < 0 || row >= len(popupLines) {
			out[i] = gray.Render(line)
			continue
		}
		left, right := cutAround(line, x, modalW)
		out[i] = gray.Render(left) + popupLines[row] + gray.Render(right)
	}
	return strings.Join(out, "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

// cutAround returns the cells of a plain line before x and after x+w
func cutAround(line string, x, w int) (string, string) {
	left := runewidth.Truncate(line, x, "")
	left += strings.Repeat(" ", x-runewidth.StringWidth(left))

	right := ""
	cells := 0
	for i, r := range line {
		if cells >= x+w {
			right = line[i:]
			break
		}
		cells += runewidth.RuneWidth(r)
	}
	return left, right
}
