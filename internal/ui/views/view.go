package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"

	"gadgetfind/internal/domain"
	"gadgetfind/internal/ui/state"
)

// AppName is shown in the title line
const AppName = "gadgetfind"

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int
	Screen state.ScreenKind

	// Search and Results
	SearchBar      string // rendered text input
	Query          string
	Results        []domain.Item
	Spans          [][]domain.Span // Search only, one per result
	Cursor         int
	ViewportOffset int // first visible row
	ViewportHeight int // visible rows
	Columns        int
	ShowCategory   bool

	// Detail
	Item  domain.Item
	Found bool

	StatusMessage string
	StatusIsError bool
	ShowHelp      bool
	HelpContent   string
	HelpModel     help.Model
	KeyMap        help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles        *Styles
	suggestRender *SuggestionRenderer
	cardRender    *CardRenderer
	detailRender  *DetailRenderer
	popupRender   *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:        styles,
		suggestRender: NewSuggestionRenderer(styles),
		cardRender:    NewCardRenderer(styles),
		detailRender:  NewDetailRenderer(styles),
		popupRender:   NewPopupRenderer(styles),
	}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(vs ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render(AppName))
	content.WriteString("\n\n")

	width := contentWidth(vs.Width)
	switch vs.Screen {
	case state.ScreenDetail:
		if vs.Found {
			content.WriteString(r.detailRender.RenderDetail(vs.Item, width))
		} else {
			content.WriteString(r.detailRender.RenderNotFound())
		}
	case state.ScreenResults:
		content.WriteString(r.RenderSearchBar(vs.SearchBar, vs.Query, true, width))
		content.WriteString("\n")
		content.WriteString(r.renderResults(vs, width))
	default:
		content.WriteString(r.RenderSearchBar(vs.SearchBar, vs.Query, false, width))
		content.WriteString("\n")
		content.WriteString(r.renderSuggestions(vs, width))
	}

	if vs.StatusMessage != "" {
		content.WriteString("\n\n")
		if vs.StatusIsError {
			content.WriteString(r.styles.StatusError.Render(vs.StatusMessage))
		} else {
			content.WriteString(r.styles.Status.Render(vs.StatusMessage))
		}
	}

	// Short help pinned to the bottom when no popup is visible
	if !vs.ShowHelp && vs.KeyMap != nil {
		helpText := r.styles.Help.Render(vs.HelpModel.ShortHelpView(vs.KeyMap.ShortHelp()))

		currentLines := strings.Count(content.String(), "\n") + 1
		// Account for container padding (1 top, 1 bottom from Padding(1, 2))
		availableLines := vs.Height - 2
		if availableLines <= 0 {
			availableLines = 22
		}
		if paddingNeeded := availableLines - currentLines - 1; paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}
		content.WriteString("\n")
		content.WriteString(helpText)
	}

	mainStyle := r.styles.Main
	if vs.Height > 0 {
		mainStyle = mainStyle.MaxHeight(vs.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if vs.ShowHelp {
		return r.popupRender.RenderPopupOverlay(finalContent, vs.HelpContent, vs.Height, vs.Width, r.styles.HelpBox)
	}
	return finalContent
}

// RenderSearchBar draws the search box. The clear hint only shows with a query.
func (r *Renderer) RenderSearchBar(input, query string, withBack bool, width int) string {
	var parts []string
	if withBack {
		parts = append(parts, r.styles.SearchBarIcon.Render("‹"))
	}
	parts = append(parts, r.styles.SearchBarIcon.Render(searchGlyph), input)
	left := strings.Join(parts, " ")

	right := ""
	if query != "" {
		right = r.styles.ClearHint.Render("✕")
	}

	// Border and padding take two cells each side
	inner := width - 4
	if inner < 1 {
		inner = 1
	}
	return r.styles.SearchBar.Width(width - 2).Render(padBetween(left, right, inner))
}

func (r *Renderer) renderSuggestions(vs ViewState, width int) string {
	if vs.Query == "" {
		return ""
	}

	var lines []string
	start, end := visibleRows(vs.ViewportOffset, vs.ViewportHeight, len(vs.Results)+1)
	for i := start; i < end && i < len(vs.Results); i++ {
		spans := []domain.Span{{Text: vs.Results[i].Title}}
		if i < len(vs.Spans) {
			spans = vs.Spans[i]
		}
		lines = append(lines, r.suggestRender.RenderSuggestion(
			vs.Results[i], spans, i == vs.Cursor, vs.ShowCategory, width))
	}

	footerIndex := len(vs.Results)
	if footerIndex >= start && footerIndex < end {
		lines = append(lines, r.suggestRender.RenderFooter(
			vs.Query, len(vs.Results) > 0, vs.Cursor == footerIndex, width))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderResults(vs ViewState, width int) string {
	var b strings.Builder
	b.WriteString(r.styles.Heading.Render(`"` + vs.Query + `"`))
	b.WriteString("\n")

	if len(vs.Results) == 0 {
		b.WriteString(r.styles.Dim.Render("Nothing matches this query."))
		return b.String()
	}

	b.WriteString(r.cardRender.RenderGrid(vs.Results, vs.Columns, vs.Cursor,
		vs.ViewportOffset, vs.ViewportHeight, width))
	return b.String()
}

// visibleRows clamps a viewport to count rows
func visibleRows(offset, height, count int) (int, int) {
	if height <= 0 {
		return 0, count
	}
	end := offset + height
	if end > count {
		end = count
	}
	if offset > end {
		offset = end
	}
	return offset, end
}

// contentWidth is the terminal width minus the main container padding
func contentWidth(termWidth int) int {
	if termWidth <= 0 {
		termWidth = 80
	}
	w := termWidth - 4
	if w < minCardWidth {
		w = minCardWidth
	}
	return w
}

// Height budget of the chrome around the list: padding, title, search bar,
// heading or footer help
const chromeLines = 2 + 2 + 3 + 3

// ListRows is how many suggestion rows fit in a terminal of the given height
func ListRows(termHeight int, showCategory bool) int {
	per := 1
	if showCategory {
		per = 2
	}
	rows := (termHeight - chromeLines) / per
	if rows < 1 {
		rows = 1
	}
	return rows
}

// GridRows is how many card rows fit in a terminal of the given height
func GridRows(termHeight int) int {
	rows := (termHeight - chromeLines - 2) / CardHeight()
	if rows < 1 {
		rows = 1
	}
	return rows
}
