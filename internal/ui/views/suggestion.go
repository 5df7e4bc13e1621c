package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gadgetfind/internal/domain"
)

const (
	searchGlyph    = "⌕"
	cursorGlyph    = "›"
	thumbnailWidth = 4
)

// SuggestionRenderer handles rendering of Search screen rows
type SuggestionRenderer struct {
	styles *Styles
}

// NewSuggestionRenderer creates a new suggestion renderer
func NewSuggestionRenderer(styles *Styles) *SuggestionRenderer {
	return &SuggestionRenderer{
		styles: styles,
	}
}

// RenderSuggestion renders one suggestion: highlighted title, category and thumbnail
func (s *SuggestionRenderer) RenderSuggestion(item domain.Item, spans []domain.Span, isSelected bool,
	showCategory bool, width int) string {

	marker := "  "
	if isSelected {
		marker = s.styles.Footer.Render(cursorGlyph) + " "
	}

	title := s.RenderSpans(spans)
	thumb := RenderSwatch(item.Thumbnail, thumbnailWidth, 1)

	left := fmt.Sprintf("%s%s %s", marker, s.styles.SearchBarIcon.Render(searchGlyph), title)
	line := padBetween(left, thumb, width)

	lines := []string{line}
	if showCategory && item.Category != "" {
		lines = append(lines, "    "+s.styles.Category.Render("in "+item.Category))
	}

	block := strings.Join(lines, "\n")
	if isSelected {
		return s.styles.RowSelected.Render(block)
	}
	return s.styles.Row.Render(block)
}

// RenderSpans styles matched spans bright and the rest dim
func (s *SuggestionRenderer) RenderSpans(spans []domain.Span) string {
	var b strings.Builder
	for _, span := range spans {
		if span.Matched {
			b.WriteString(s.styles.Highlight.Render(span.Text))
		} else {
			b.WriteString(s.styles.Text.Render(span.Text))
		}
	}
	return b.String()
}

// RenderFooter renders the row under the suggestions.
// It offers all results when there are matches and says so when there are none.
func (s *SuggestionRenderer) RenderFooter(query string, hasResults bool, isSelected bool, width int) string {
	quoted := `"` + query + `"`
	if !hasResults {
		line := fmt.Sprintf("  %s %s%s",
			s.styles.SearchBarIcon.Render(searchGlyph),
			s.styles.FooterDim.Render("No results found for "),
			s.styles.Footer.Render(quoted))
		return s.styles.Row.Render(line)
	}

	marker := "  "
	if isSelected {
		marker = s.styles.Footer.Render(cursorGlyph) + " "
	}
	left := fmt.Sprintf("%s%s %s%s", marker,
		s.styles.SearchBarIcon.Render(searchGlyph),
		s.styles.FooterDim.Render("Show all results for "),
		s.styles.Footer.Render(quoted))
	line := padBetween(left, s.styles.FooterDim.Render(">"), width)

	if isSelected {
		return s.styles.RowSelected.Render(line)
	}
	return s.styles.Row.Render(line)
}

// padBetween puts right at the far end of a line of the given width
func padBetween(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
