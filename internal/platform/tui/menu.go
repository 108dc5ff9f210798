package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var presets = []config.DifficultyPreset{config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard}

// MenuKeyMap defines the key bindings for the setup menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Back:   key.NewBinding(key.WithKeys("esc", "b")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
	}
}

// Selection holds the choices made in the setup menu.
type Selection struct {
	Preset config.DifficultyPreset
	Level  int
}

// SetupModel lets users choose a difficulty and a starting level.
type SetupModel struct {
	levels        []breakout.LevelSpec
	best          map[string]int
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	keys          MenuKeyMap
	selection     Selection
	choosing      bool
	quitting      bool
}

// NewSetupModel creates a setup menu. Store may be nil.
func NewSetupModel(levels []breakout.LevelSpec, store *storage.Store, width, height int) SetupModel {
	best := make(map[string]int)
	if store != nil {
		if stats, err := store.AllLevelStats(); err == nil {
			for id, s := range stats {
				best[id] = s.HighScore
			}
		}
	}
	return SetupModel{
		levels:   levels,
		best:     best,
		cursor:   1, // Normal
		width:    width,
		height:   height,
		keys:     DefaultMenuKeyMap(),
		choosing: true,
	}
}

// Init initializes the model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.inLevelSelect {
			return m.handleLevelSelectKey(msg)
		}
		return m.handlePresetKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m SetupModel) handlePresetKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.cursor = min(m.cursor+1, len(presets)-1)
	case key.Matches(msg, m.keys.Select):
		m.selection.Preset = presets[m.cursor]
		m.inLevelSelect = true
	case key.Matches(msg, m.keys.Back):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m SetupModel) handleLevelSelectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.levelCursor = max(m.levelCursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.levelCursor = min(m.levelCursor+1, len(m.levels)-1)
	case key.Matches(msg, m.keys.Select):
		m.selection.Level = m.levelCursor
		m.choosing = false
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.inLevelSelect = false
	}
	return m, nil
}

// View renders the difficulty or level selection.
func (m SetupModel) View() string {
	if m.quitting || !m.choosing {
		return ""
	}

	var b strings.Builder
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hint := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(centerText(title.Render("B R E A K O U T"), m.width))
	b.WriteString("\n\n")

	if m.inLevelSelect {
		b.WriteString(centerText("Select level:", m.width))
		b.WriteString("\n\n")
		for i, l := range m.levels {
			breakable, _ := l.Bricks()
			line := fmt.Sprintf("%s%2d. %-16s %3d bricks  best %d",
				cursorMark(i == m.levelCursor), i+1, truncate(l.Name, 16), breakable, m.best[l.ID])
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(centerText("Select difficulty:", m.width))
		b.WriteString("\n\n")
		for i, p := range presets {
			b.WriteString(centerText(fmt.Sprintf("%s%-8s", cursorMark(i == m.cursor), p), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText(hint.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

func cursorMark(on bool) string {
	if on {
		return "> "
	}
	return "  "
}

// Selected returns the selection, or nil if still choosing.
func (m SetupModel) Selected() *Selection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// RunSetup shows the setup menu and returns the selection, or nil when the
// user backed out.
func RunSetup(levels []breakout.LevelSpec, store *storage.Store, width, height int) (*Selection, error) {
	p := tea.NewProgram(
		NewSetupModel(levels, store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(SetupModel)
	if !ok || m.IsQuitting() {
		return nil, nil
	}
	return m.Selected(), nil
}
