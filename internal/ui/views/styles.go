package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors
const (
	ColorPrimary       = "#121212" // background
	ColorSecondary     = "#1E1E1E" // rows and cards
	ColorSurface       = "#2C2C2C"
	ColorAccent        = "#BB86FC"
	ColorTextPrimary   = "#FFFFFF"
	ColorTextSecondary = "#B3B3B3"
	ColorBorder        = "#3D3D3D"
	ColorSuccess       = "#03DAC6"
	ColorError         = "#CF6679"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Heading       lipgloss.Style
	SearchBar     lipgloss.Style
	SearchBarIcon lipgloss.Style
	ClearHint     lipgloss.Style
	Dim           lipgloss.Style
	Text          lipgloss.Style
	Highlight     lipgloss.Style
	Category      lipgloss.Style
	Row           lipgloss.Style
	RowSelected   lipgloss.Style
	Footer        lipgloss.Style
	FooterDim     lipgloss.Style
	Card          lipgloss.Style
	CardSelected  lipgloss.Style
	Stats         lipgloss.Style
	DetailTitle   lipgloss.Style
	DetailMeta    lipgloss.Style
	NotFound      lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	Help          lipgloss.Style
	HelpBox       lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorAccent)),
		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorTextPrimary)).
			MarginBottom(1),
		SearchBar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorBorder)).
			Padding(0, 1),
		SearchBarIcon: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorTextSecondary)),
		ClearHint:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorTextSecondary)),
		Dim:           lipgloss.NewStyle().Faint(true),
		Text:          lipgloss.NewStyle().Foreground(lipgloss.Color(ColorTextSecondary)),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorTextPrimary)).Bold(true),
		Category:      lipgloss.NewStyle().Foreground(lipgloss.Color(ColorTextSecondary)).Italic(true),
		Row:           lipgloss.NewStyle().PaddingLeft(1),
		RowSelected: lipgloss.NewStyle().
			PaddingLeft(1).
			Background(lipgloss.Color(ColorSurface)),
		Footer:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent)),
		FooterDim: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorTextSecondary)),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorBorder)).
			Padding(0, 1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorAccent)).
			Padding(0, 1),
		Stats: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorTextSecondary)),
		DetailTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorTextPrimary)),
		DetailMeta: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent)),
		NotFound: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorError)),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)),
		Help:        lipgloss.NewStyle().Faint(true),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color(ColorBorder)),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorTextSecondary)).Italic(true),
	}
}
