package keys

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds every binding the app reacts to
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	Open       key.Binding
	Clear      key.Binding
	Back       key.Binding
	DetailBack key.Binding
	Copy       key.Binding
	Help       key.Binding
	DetailHelp key.Binding
	Quit       key.Binding

	HelpClose      key.Binding
	HelpScrollUp   key.Binding
	HelpScrollDown key.Binding
}

// Default is the shared key map
var Default = DefaultKeyMap()

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
		Left:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:    key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:     key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		End:      key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),

		Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Clear:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Back:       key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "back")),
		DetailBack: key.NewBinding(key.WithKeys("esc", "q", "left", "backspace"), key.WithHelp("esc/q", "back")),
		Copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy title")),
		Help:       key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		DetailHelp: key.NewBinding(key.WithKeys("f1", "?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

		HelpClose:      key.NewBinding(key.WithKeys("esc", "q", "?", "f1"), key.WithHelp("esc", "close")),
		HelpScrollUp:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		HelpScrollDown: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
	}
}

// screenHelp adapts a set of bindings to help.KeyMap
type screenHelp struct {
	short []key.Binding
	full  [][]key.Binding
}

func (s screenHelp) ShortHelp() []key.Binding  { return s.short }
func (s screenHelp) FullHelp() [][]key.Binding { return s.full }

// SearchHelp lists the Search screen bindings
func (k KeyMap) SearchHelp() help.KeyMap {
	return screenHelp{
		short: []key.Binding{k.Up, k.Down, k.Open, k.Clear, k.Help, k.Quit},
		full: [][]key.Binding{
			{k.Up, k.Down, k.PageUp, k.PageDown},
			{k.Open, k.Clear},
			{k.Help, k.Quit},
		},
	}
}

// ResultsHelp lists the Results screen bindings
func (k KeyMap) ResultsHelp() help.KeyMap {
	return screenHelp{
		short: []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Open, k.Back, k.Clear, k.Help},
		full: [][]key.Binding{
			{k.Up, k.Down, k.Left, k.Right},
			{k.PageUp, k.PageDown, k.Home, k.End},
			{k.Open, k.Back, k.Clear},
			{k.Help, k.Quit},
		},
	}
}

// DetailScreenHelp lists the Detail screen bindings
func (k KeyMap) DetailScreenHelp() help.KeyMap {
	return screenHelp{
		short: []key.Binding{k.DetailBack, k.Copy, k.DetailHelp, k.Quit},
		full: [][]key.Binding{
			{k.DetailBack, k.Copy},
			{k.DetailHelp, k.Quit},
		},
	}
}
