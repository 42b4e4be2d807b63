package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

const boardLimit = 100

var (
	boardFrame = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardEmpty = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
)

// BoardKeyMap holds the scoreboard bindings.
type BoardKeyMap struct {
	Scroll key.Binding
	Scene  key.Binding
	Filter key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp implements help.KeyMap.
func (k BoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Scene, k.Filter, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k BoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultBoardKeyMap returns the scoreboard bindings.
func DefaultBoardKeyMap() BoardKeyMap {
	return BoardKeyMap{
		Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		Scene:  key.NewBinding(key.WithKeys("tab", "left", "right", "h", "l"), key.WithHelp("tab/←/→", "scene")),
		Filter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "level")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists the stored scores of one scene at a time,
// optionally narrowed to one difficulty preset.
type ScoreboardModel struct {
	scenes []registry.Info
	scene  int
	filter int // 0 shows every preset, i>0 shows presets[i-1]

	store   *storage.Store // Nil shows an empty board
	presets []config.Preset
	scores  []storage.ScoreEntry
	stats   *storage.GameStats

	table  table.Model
	keys   BoardKeyMap
	help   help.Model
	width  int
	height int

	embedded bool // Back returns to the session menu instead of quitting
	back     bool
	quitting bool
}

// NewScoreboardModel creates a scoreboard showing the first registered scene.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		scenes:  registry.List(),
		store:   store,
		presets: config.Presets(),
		keys:    DefaultBoardKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
	}
	m.table = m.newTable()
	m.load()
	return m
}

func (m ScoreboardModel) newTable() table.Model {
	dateW := 20
	if m.width < 60 {
		dateW = 12
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 8},
			{Title: "Level", Width: 8},
			{Title: "Date", Width: dateW},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).BorderBottom(true).Bold(true)
	st.Selected = st.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(false)
	t.SetStyles(st)
	return t
}

// load refreshes scores and stats for the current scene. Read errors leave
// the board empty.
func (m *ScoreboardModel) load() {
	m.scores, m.stats = nil, nil
	if m.store != nil && len(m.scenes) > 0 {
		id := m.scenes[m.scene].ID
		if scores, err := m.store.TopScores(id, boardLimit); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.Stats(id); err == nil {
			m.stats = stats
		}
	}
	m.fillRows()
}

func (m *ScoreboardModel) fillRows() {
	var rows []table.Row
	for _, s := range m.scores {
		if m.filter > 0 && s.Preset != string(m.presets[m.filter-1]) {
			continue
		}
		rows = append(rows, table.Row{
			strconv.Itoa(len(rows) + 1),
			strconv.Itoa(s.Score),
			s.Preset,
			s.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Level returns the preset the board is narrowed to, or "" for all.
func (m ScoreboardModel) Level() config.Preset {
	if m.filter == 0 {
		return ""
	}
	return m.presets[m.filter-1]
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Scene):
			if n := len(m.scenes); n > 0 {
				step := 1
				if s := msg.String(); s == "left" || s == "h" {
					step = n - 1
				}
				m.scene = (m.scene + step) % n
				m.load()
			}
			return m, nil
		case key.Matches(msg, m.keys.Filter):
			m.filter = (m.filter + 1) % (len(m.presets) + 1)
			m.fillRows()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.fillRows()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.back {
		return ""
	}
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.scenes))
	for i, sc := range m.scenes {
		if i == m.scene {
			tabs[i] = menuPreset.Render(sc.Title)
		} else {
			tabs[i] = menuDimStyle.Render(" " + sc.Title + " ")
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n")

	level := "all levels"
	if p := m.Level(); p != "" {
		level = string(p)
	}
	summary := level
	if m.stats != nil && m.stats.Rounds > 0 {
		summary = fmt.Sprintf("%s · %d rounds · best %d · avg %.0f", level,
			m.stats.Rounds, m.stats.HighScore, m.stats.AvgScore)
	}
	b.WriteString(centerText(menuDimStyle.Render(summary), m.width))
	b.WriteString("\n\n")

	body := boardEmpty.Render("No scores yet. Finish a round to get on the board.")
	if len(m.table.Rows()) > 0 {
		body = m.table.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boardFrame.Render(body)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	return b.String()
}

// IsGoingBack reports whether the user left with the back key.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard on its own. It reports whether the
// user wants to go back to the menu.
func RunScoreboard(store *storage.Store, width, height int) (bool, error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: scoreboard: %w", err)
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
