package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/registry"
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuItemStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	menuCursor     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuPreset     = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
)

// MenuModel is the Bubble Tea model for the scene picker. Left and right
// cycle the difficulty preset used for the selected scene.
type MenuModel struct {
	items    []registry.Info
	presets  []config.Preset
	cursor   int
	preset   int
	width    int
	height   int
	keys     MenuKeyMap
	help     help.Model
	embedded bool // Selecting does not quit the program

	quitting       bool
	selected       *registry.Info
	openScoreboard bool
}

// NewMenuModel creates a new menu model listing every registered scene.
func NewMenuModel(width, height int, preset config.Preset) MenuModel {
	presets := config.Presets()
	idx := slices.Index(presets, preset)
	if idx < 0 {
		idx = slices.Index(presets, config.PresetNormal)
	}

	h := help.New()
	h.Width = width

	return MenuModel{
		items:   registry.List(),
		presets: presets,
		preset:  idx,
		width:   width,
		height:  height,
		keys:    DefaultMenuKeyMap(),
		help:    h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Easier):
		if m.preset > 0 {
			m.preset--
		}

	case key.Matches(msg, m.keys.Harder):
		if m.preset < len(m.presets)-1 {
			m.preset++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			if !m.embedded {
				return m, tea.Quit
			}
		}

	case key.Matches(msg, m.keys.Scores):
		m.openScoreboard = true
		if !m.embedded {
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("A R C A D E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuDimStyle.Render("Select a scene"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + menuItemStyle.Render(item.Title)
		if i == m.cursor {
			line = menuCursor.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if len(m.items) > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(menuDimStyle.Render(m.items[m.cursor].Description), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Difficulty  < %s >", menuPreset.Render(string(m.Preset()))), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the selected scene, or nil if none selected.
func (m MenuModel) Selected() *registry.Info {
	return m.selected
}

// Preset returns the difficulty currently shown.
func (m MenuModel) Preset() config.Preset {
	return m.presets[m.preset]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// centerText centers text within the given width, measuring the printed
// width so styled strings center correctly.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	SceneID         string
	Preset          config.Preset
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(width, height int, preset config.Preset) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(width, height, preset), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Quit: true}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}

	result := MenuResult{Preset: m.Preset()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.SceneID = m.Selected().ID
	default:
		result.Quit = true
	}
	return result, nil
}
