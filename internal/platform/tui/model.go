package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkovardin/tui-pairs/internal/core"
	"github.com/mkovardin/tui-pairs/internal/registry"
	"github.com/mkovardin/tui-pairs/internal/storage"
)

// resizable is implemented by games that can adopt a new screen size
// without losing board progress.
type resizable interface {
	SetScreenSize(w, h int)
}

// Model is the Bubble Tea model for running a game session.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	inputFrame  core.InputFrame
	gameState   core.GameState
	quitting    bool
	goingBack   bool // Return to menu instead of exiting
	resultSaved bool // Whether the result was saved for the current board
	newBest     bool // Current win beat the stored best time
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		m.goingBack = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. Board progress survives a
// resize; the game just re-checks whether the grid still fits.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if g, ok := m.game.(resizable); ok {
		g.SetScreenSize(msg.Width, msg.Height)
	} else {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Redeal on demand, any time - an in-flight evaluation is simply
	// abandoned with the old board.
	if m.inputFrame.Has(core.ActionRestart) {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.resultSaved = false
		m.newBest = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save the result once per solved board
	if m.gameState.Won && !m.resultSaved {
		m.saveResult()
		m.resultSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveResult persists the finished board, keyed by grid so times are only
// compared against boards of the same size.
func (m *Model) saveResult() {
	if m.store == nil {
		return
	}

	durationMs := ticksToMs(m.gameState.ElapsedTicks, m.config.TickRate)

	prevBest, err := m.store.BestTime(m.gameState.Grid)
	if err == nil && (prevBest == 0 || durationMs < prevBest) {
		m.newBest = true
	}

	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveResult(m.gameState.Grid, m.gameState.Moves, durationMs)
}

// ticksToMs converts simulation ticks to wall-clock milliseconds.
func ticksToMs(ticks uint64, tickRate int) int64 {
	if tickRate <= 0 {
		tickRate = 60
	}
	return int64(ticks) * 1000 / int64(tickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".pairs", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	m.game.Render(m.screen)

	if m.gameState.Won && m.newBest {
		m.screen.DrawTextCentered(m.screen.Height()/2+2, "NEW BEST TIME!")
	}

	return RenderScreen(m.screen)
}

// IsGoingBack returns true if the user wants to return to the menu.
func (m Model) IsGoingBack() bool {
	return m.goingBack
}

// Run starts the Bubble Tea program with the given model.
// Returns true if the user wants to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (goBack bool, err error) {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	if m, ok := finalModel.(Model); ok {
		return m.IsGoingBack(), nil
	}
	return false, nil
}
