package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"gadgetfind/internal/domain"
)

// FormatCount renders a counter with thousands separators
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// Truncate cuts s to width terminal cells with an ellipsis
func Truncate(s string, width int) string {
	if width < 1 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// ClampLines word-wraps text to width and keeps at most maxLines,
// ending the last kept line with an ellipsis when text was cut.
func ClampLines(text string, width, maxLines int) []string {
	if width < 1 || maxLines < 1 {
		return nil
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		// Hard-split words wider than a whole line
		for runewidth.StringWidth(word) > width {
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				head = string([]rune(word)[:1])
			}
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			lines = append(lines, head)
			word = word[len(head):]
		}
		if word == "" {
			continue
		}

		switch {
		case current == "":
			current = word
		case runewidth.StringWidth(current)+1+runewidth.StringWidth(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}

	if len(lines) > maxLines {
		rest := strings.Join(lines[maxLines-1:], " ")
		lines = lines[:maxLines]
		lines[maxLines-1] = runewidth.Truncate(rest, width, "…")
	}
	return lines
}

// RenderSwatch draws an asset as a colored block with its label centered
func RenderSwatch(asset domain.Asset, width, height int) string {
	if width < 1 || height < 1 {
		return ""
	}

	style := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	label := asset.Label
	if asset.Placeholder {
		style = style.
			Background(lipgloss.Color(ColorSurface)).
			Foreground(lipgloss.Color(ColorTextSecondary))
	} else {
		style = style.
			Background(lipgloss.Color(asset.Color)).
			Foreground(lipgloss.Color(ColorPrimary))
	}
	if height < 2 || width < 6 {
		label = ""
	}
	return style.Render(Truncate(label, width))
}
