package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"gadgetfind/internal/ui/input/keys"
	"gadgetfind/internal/ui/views"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

type helpSection struct {
	title    string
	bindings []key.Binding
}

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	sections []helpSection
}

// NewHelpRenderer creates a help renderer for a key map
func NewHelpRenderer(km keys.KeyMap) *HelpRenderer {
	return &HelpRenderer{
		sections: []helpSection{
			{"Search", []key.Binding{km.Up, km.Down, km.PageUp, km.PageDown, km.Open, km.Clear}},
			{"Results", []key.Binding{km.Left, km.Right, km.Home, km.End, km.Open, km.Back, km.Clear}},
			{"Detail", []key.Binding{km.DetailBack, km.Copy}},
			{"Other", []key.Binding{km.Help, km.Quit}},
		},
	}
}

// content renders every section with the given key and description styles
func (r *HelpRenderer) content(title, section, keyStyle, descStyle lipgloss.Style) string {
	var help strings.Builder

	help.WriteString(title.Render(views.AppName + " help"))
	help.WriteString("\n")

	for i, s := range r.sections {
		help.WriteString(section.Render(s.title))
		help.WriteString("\n")
		for _, b := range s.bindings {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-8s", h.Key)),
				descStyle.Render(h.Desc)))
		}
		if i < len(r.sections)-1 {
			help.WriteString("\n")
		}
	}
	return strings.TrimRight(help.String(), "\n")
}

func (r *HelpRenderer) styled() string {
	return r.content(
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(views.ColorAccent)).MarginBottom(1),
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(views.ColorSuccess)),
		lipgloss.NewStyle().Foreground(lipgloss.Color(views.ColorAccent)),
		lipgloss.NewStyle().Foreground(lipgloss.Color(views.ColorTextSecondary)),
	)
}

// renderHelpContent renders the popup body scrolled to fit height
func (r *HelpRenderer) renderHelpContent(height int, scrollOffset int) string {
	lines := strings.Split(r.styled(), "\n")
	totalLines := len(lines)

	// Account for popup border and padding
	visibleHeight := height - 4
	if visibleHeight < 5 {
		visibleHeight = 5
	}
	if totalLines <= visibleHeight {
		return strings.Join(lines, "\n")
	}

	maxOffset := totalLines - visibleHeight
	if scrollOffset > maxOffset {
		scrollOffset = maxOffset
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}

	visible := make([]string, visibleHeight)
	copy(visible, lines[scrollOffset:scrollOffset+visibleHeight])

	more := lipgloss.NewStyle().Foreground(lipgloss.Color(views.ColorTextSecondary))
	if scrollOffset > 0 {
		visible[0] = more.Render("↑ (more above)")
	}
	if scrollOffset+visibleHeight < totalLines {
		visible[len(visible)-1] = more.Render("↓ (more below)")
	}
	return strings.Join(visible, "\n")
}

// maxScroll is the largest useful scroll offset for a popup of height
func (r *HelpRenderer) maxScroll(height int) int {
	visibleHeight := height - 4
	if visibleHeight < 5 {
		visibleHeight = 5
	}
	total := strings.Count(r.styled(), "\n") + 1
	if total <= visibleHeight {
		return 0
	}
	return total - visibleHeight
}

// RenderHelpContentPlain generates help content with colors for pager
func (r *HelpRenderer) RenderHelpContentPlain() string {
	return r.styled()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return fmt.Errorf("release terminal: %w", err)
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return fmt.Errorf("open pager: %w", err)
	}

	// Don't write the document back to our screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
