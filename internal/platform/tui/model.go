package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/resource"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// Smallest terminal the playfield is drawn in.
const (
	minWidth  = 30
	minHeight = 12
)

// bannerSeconds is how long a run summary stays on screen.
const bannerSeconds = 3

var (
	hudColor     = core.RGB(0.8, 0.8, 0.8)
	overlayColor = core.RGB(1.0, 0.9, 0.4)
	frameColor   = core.RGB(0.4, 0.4, 0.5)
)

// Options configures a game session.
type Options struct {
	Config     config.BreakoutConfig
	Resources  *resource.Manager
	Levels     []breakout.LevelSpec
	StartLevel int
	Store      *storage.Store // Optional; nil disables score saving
	Player     string
	FPS        int
	Width      int // Initial terminal size; WindowSizeMsg overrides it
	Height     int
	Logger     *log.Logger
	Renderer   *lipgloss.Renderer // Per-session renderer over SSH
}

// Model is the Bubble Tea model for one brick breaker session.
type Model struct {
	game    *breakout.Game
	screen  *core.Screen
	field   *ScreenRenderer
	painter *Painter
	store   *storage.Store
	logger  *log.Logger
	keys    KeyMap
	help    help.Model
	term    core.Terminal
	player  string

	input    core.InputFrame
	steer    breakout.Steer
	holdFor  float32 // Seconds a key press keeps steering
	holdLeft float32
	lastTick time.Time

	paused     bool
	showScores bool
	scores     ScoreboardModel
	specs      []breakout.LevelSpec

	banner     string
	bannerLeft float32
	best       int
	bestLevel  string
	quitting   bool
}

// NewModel builds a game from the options and wraps it in a model.
func NewModel(opts Options) (Model, error) {
	if opts.Resources == nil {
		return Model{}, errors.New("tui: no texture table")
	}
	g, err := breakout.New(opts.Config, opts.Resources, opts.Levels)
	if err != nil {
		return Model{}, err
	}
	g.SetLevel(opts.StartLevel)

	term := core.DefaultTerminal()
	if opts.FPS > 0 {
		term.FPS = opts.FPS
	}
	if opts.Width > 0 && opts.Height > 0 {
		term.Width, term.Height = opts.Width, opts.Height
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Player
	if player == "" {
		player = "player"
	}

	screen := core.NewScreen(term.Width, max(term.Height-1, 0))
	field := NewScreenRenderer(screen, opts.Resources, g.Size(), fieldRect(term.Width, term.Height))
	field.DrawAsPoint(opts.Resources.MustLookup(resource.Face))

	h := help.New()
	h.Width = term.Width

	m := Model{
		game:    g,
		screen:  screen,
		field:   field,
		painter: NewPainter(opts.Renderer),
		store:   opts.Store,
		logger:  logger,
		keys:    DefaultKeyMap(),
		help:    h,
		term:    term,
		player:  player,
		input:   core.NewInputFrame(),
		holdFor: float32(opts.Config.Input.HoldMS) / 1000,
		specs:   opts.Levels,
	}
	m.refreshBest()
	return m, nil
}

// fieldRect is the playfield inside the frame: row 0 holds the HUD and the
// last terminal row the help line.
func fieldRect(w, h int) core.Rect {
	return core.NewRect(1, 2, max(w-2, 0), max(h-4, 0))
}

// Game exposes the simulation, mainly for tests.
func (m Model) Game() *breakout.Game {
	return m.game
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.term.FrameInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showScores {
		return m.updateScores(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Steering and discrete game actions are
// applied on the next tick; pause, scores and quit act immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.paused = !m.paused
	case core.ActionScores:
		m.openScores()
	case core.ActionScreenshot:
		m.saveScreenshot()
	case core.ActionLeft:
		m.steer, m.holdLeft = breakout.SteerLeft, m.holdFor
	case core.ActionRight:
		m.steer, m.holdLeft = breakout.SteerRight, m.holdFor
	case core.ActionNone:
	default:
		m.input.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events. The simulation is kept; only
// the cell mapping changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.term.Width = msg.Width
	m.term.Height = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.field.SetView(fieldRect(msg.Width, msg.Height))
	m.help.Width = msg.Width
	return m
}

// handleTick runs one simulation frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now)
	m.lastTick = now

	if m.bannerLeft > 0 {
		m.bannerLeft -= dt
		if m.bannerLeft <= 0 {
			m.banner = ""
		}
	}

	if m.paused {
		m.input.Clear()
		return m, tickCmd(m.term.FrameInterval())
	}

	m.applyInput()
	if m.holdLeft > 0 {
		m.game.MovePaddle(m.steer, min(dt, m.holdLeft))
		m.holdLeft -= dt
	}

	res := m.game.Update(dt)
	if res.RunEnded() {
		m.recordRun(res)
	}
	if m.game.LevelID() != m.bestLevel {
		m.refreshBest()
	}

	m.input.Clear()
	return m, tickCmd(m.term.FrameInterval())
}

// applyInput forwards the queued discrete actions to the game.
func (m *Model) applyInput() {
	if m.input.Has(core.ActionConfirm) {
		m.game.Confirm()
	}
	if m.input.Has(core.ActionNextLevel) {
		m.game.CycleLevel(true)
	}
	if m.input.Has(core.ActionPrevLevel) {
		m.game.CycleLevel(false)
	}
	if m.input.Has(core.ActionLaunch) {
		m.game.LaunchBall()
		m.banner, m.bannerLeft = "", 0
	}
}

// recordRun shows the run summary and stores the score.
func (m *Model) recordRun(res breakout.StepResult) {
	if res.LevelCleared {
		m.banner = fmt.Sprintf("%s cleared! Score %d", res.LevelName, res.FinalScore)
	} else {
		m.banner = fmt.Sprintf("GAME OVER - score %d", res.FinalScore)
	}
	m.bannerLeft = bannerSeconds

	// Nothing worth keeping
	if m.store == nil || (res.FinalScore == 0 && !res.LevelCleared) {
		return
	}
	_, err := m.store.SaveScore(storage.ScoreEntry{
		LevelID: res.LevelID,
		Player:  m.player,
		Score:   res.FinalScore,
		Cleared: res.LevelCleared,
	})
	if err != nil {
		m.logger.Warn("could not save score", "level", res.LevelID, "player", m.player, "error", err)
		return
	}
	m.logger.Debug("score saved", "level", res.LevelID, "player", m.player, "score", res.FinalScore)
	m.refreshBest()
}

// refreshBest caches the stored high score of the current level.
func (m *Model) refreshBest() {
	m.bestLevel = m.game.LevelID()
	m.best = 0
	if m.store == nil {
		return
	}
	best, err := m.store.HighScore(m.bestLevel)
	if err != nil {
		m.logger.Warn("could not read high score", "level", m.bestLevel, "error", err)
		return
	}
	m.best = best
}

// openScores switches to the scoreboard on the current level.
// Play is frozen until it is closed.
func (m *Model) openScores() {
	m.scores = NewScoreboardModel(m.store, m.specs, m.term.Width, m.term.Height)
	m.scores.embedded = true
	m.scores.selectLevel(m.game.LevelIndex())
	m.showScores = true
}

// updateScores routes messages to the scoreboard while it is open.
func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		// Keep the clock ticking without advancing the game.
		m.lastTick = time.Time(msg)
		return m, tickCmd(m.term.FrameInterval())
	case tea.WindowSizeMsg:
		m = m.handleResize(msg)
	}

	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)
	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		m.showScores = false
		return m, nil
	}
	return m, cmd
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".breakout", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.LevelID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.banner, m.bannerLeft = "saved "+filepath.Base(path), bannerSeconds
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showScores {
		return m.scores.View()
	}
	if !m.term.Fits(minWidth, minHeight) {
		return m.painter.Style().Foreground(lipgloss.Color("241")).
			Render(fmt.Sprintf("Terminal too small: need %dx%d", minWidth, minHeight))
	}

	m.draw()
	helpStyle := m.painter.Style().Foreground(lipgloss.Color("241"))
	return m.painter.Render(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// draw fills the screen buffer: HUD, frame, playfield and overlays.
func (m *Model) draw() {
	m.screen.Clear()
	m.drawHUD()

	frame := core.NewRect(0, 1, m.screen.Width(), m.screen.Height()-1)
	m.screen.DrawBox(frame)
	m.tint(frame, frameColor)

	m.game.Draw(m.field)
	m.drawOverlay()
}

func (m *Model) drawHUD() {
	left := fmt.Sprintf(" Level %d/%d %s  Bricks %d",
		m.game.LevelIndex()+1, m.game.LevelCount(), m.game.LevelName(), m.game.Level().Remaining())
	right := fmt.Sprintf("Lives %s  Score %d  Best %d ",
		strings.Repeat("♥", max(m.game.Lives(), 0)), m.game.Score(), m.best)
	m.text(0, 0, left, hudColor)
	m.text(m.screen.Width()-len([]rune(right)), 0, right, hudColor)
}

func (m *Model) drawOverlay() {
	view := m.field.View()
	mid := view.Y + view.H/2

	var lines []string
	switch {
	case m.paused:
		lines = []string{"PAUSED", "p to resume"}
	case m.game.Mode() == breakout.ModeWin:
		lines = []string{"LEVEL CLEARED", m.banner, "enter to continue"}
	case m.game.Mode() == breakout.ModeMenu:
		lines = []string{"BREAKOUT", m.game.LevelName(), "w/s choose level, enter to start"}
	case m.banner != "":
		lines = []string{m.banner}
	case m.game.Ball().Stuck:
		lines = []string{"space to launch"}
		mid = view.Y + view.H*3/4
	}

	for i, line := range lines {
		if line == "" {
			continue
		}
		x := view.X + (view.W-len([]rune(line)))/2
		m.text(x, mid-len(lines)/2+i, line, overlayColor)
	}
}

// text draws a colored string starting at (x, y).
func (m *Model) text(x, y int, s string, c core.Color) {
	i := 0
	for _, r := range s {
		m.screen.SetCell(x+i, y, core.Cell{Rune: r, Color: c})
		i++
	}
}

// tint recolors the outline of r.
func (m *Model) tint(r core.Rect, c core.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if y != r.Y && y != r.Bottom()-1 && x != r.X && x != r.Right()-1 {
				continue
			}
			cell := m.screen.GetCell(x, y)
			cell.Color = c
			m.screen.SetCell(x, y, cell)
		}
	}
}

// Run starts a local Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
