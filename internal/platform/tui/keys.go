package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultHold is how long a key counts as held after its last press or
// auto-repeat. Terminals never report key releases.
const DefaultHold = 300 * time.Millisecond

// GameKeyMap defines the key bindings while a scene runs. Movement keys are
// not matched here; they go to the loop's input as named keys.
type GameKeyMap struct {
	Move    key.Binding
	Start   key.Binding
	ZoomIn  key.Binding
	ZoomOut key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Start, k.ZoomIn, k.ZoomOut, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Start},
		{k.ZoomIn, k.ZoomOut},
		{k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Move: key.NewBinding(
			key.WithKeys("left", "right", "up", "down", "a", "d", "w", "s"),
			key.WithHelp("arrows/wasd", "move"),
		),
		Start: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start/restart"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "zoom out"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuKeyMap defines the key bindings for the scene picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Easier key.Binding
	Harder key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Easier, k.Harder, k.Select, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Easier, k.Harder},
		{k.Scores, k.Quit},
	}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Easier: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("left", "easier"),
		),
		Harder: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("right", "harder"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// keyName translates a key press into the name entities query through
// core.Input. Arrow keys follow the browser naming ("arrowleft").
func keyName(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyLeft:
		return "arrowleft"
	case tea.KeyRight:
		return "arrowright"
	case tea.KeyUp:
		return "arrowup"
	case tea.KeyDown:
		return "arrowdown"
	case tea.KeySpace:
		return "space"
	case tea.KeyRunes:
		return strings.ToLower(string(msg.Runes))
	default:
		return msg.String()
	}
}
