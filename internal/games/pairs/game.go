// Package pairs implements the memory-matching card game: a shuffled board
// of face-down pairs, a cursor, and a turn controller that evaluates two
// revealed cards at a time.
package pairs

import (
	"fmt"
	"math/rand"

	"github.com/mkovardin/tui-pairs/internal/config"
	"github.com/mkovardin/tui-pairs/internal/core"
	"github.com/mkovardin/tui-pairs/internal/registry"
)

// Card cell dimensions on screen, including the border.
const (
	cardW    = 7
	cardH    = 3
	cardGapX = 1
	hudLines = 2
)

// pairGlyphs are the card faces, one per pair id. 18 glyphs cover the
// largest preset (6x6 = 18 pairs).
var pairGlyphs = []rune("ABCDEFGHIJKLMNOPQR")

// pairColors cycle across pair ids so neighboring glyphs read distinctly.
var pairColors = []core.Color{
	core.ColorBrightCyan,
	core.ColorBrightMagenta,
	core.ColorBrightGreen,
	core.ColorBrightYellow,
	core.ColorBrightBlue,
	core.ColorBrightRed,
}

// Game implements the pairs (concentration) game.
type Game struct {
	rng  *rand.Rand
	tick uint64

	grid  Grid
	board *Board
	turn  *TurnController
	anim  *flipAnimator

	cursor  int    // Index of the card under the cursor
	elapsed uint64 // Running-clock ticks (excludes pauses and post-win)

	timing     config.PairsTiming
	tickRate   int
	flipTicks  int
	configGrid int // Grid preset index from config, -1 if unset

	won          bool
	finalMoves   int
	finalElapsed uint64
	paused       bool
	tooSmall     bool

	screenW int
	screenH int
}

// Package-level selection state, set by the CLI/menus before Reset.
var (
	configPath       string
	difficultyPreset string
	selectedGrid     = -1 // -1 means use the config default
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the timing preset: easy, normal, hard.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetGrid selects a grid preset by index. Unlike a start level, the grid
// persists across redeals; pass -1 to return to the config default.
func SetGrid(index int) {
	selectedGrid = index
}

// SelectedGrid returns the currently selected grid preset index.
func SelectedGrid() int {
	return selectedGrid
}

// New creates a new pairs game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("pairs", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "pairs"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pairs"
}

// Reset deals a fresh board and restarts the clock.
// Any evaluation pending on the previous board is cancelled: AttachBoard
// rebinds the controller before its delayed continuation can fire.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.elapsed = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.won = false
	g.paused = false
	g.cursor = 0

	g.loadTiming()
	g.loadGrid()

	g.anim = newFlipAnimator(g.flipTicks)

	board, err := NewBoard(g.grid.Rows, g.grid.Cols, g.rng)
	if err != nil {
		// Presets are always valid; this can only mean a corrupted
		// selection, so fall back to the default preset.
		g.grid = *GetGrid(DefaultGridIndex)
		board, _ = NewBoard(g.grid.Rows, g.grid.Cols, g.rng)
	}
	g.board = board

	delays := Delays{
		SettleTicks:   config.TicksFor(g.timing.SettleMs, g.tickRate),
		MismatchTicks: config.TicksFor(g.timing.MismatchMs, g.tickRate),
	}
	g.turn = NewTurnController(delays, g, g, g.anim.Start)
	g.turn.AttachBoard(g.board)

	g.checkScreenSize()
}

// loadTiming loads the timing config and applies the difficulty preset.
// Also remembers the config's default grid for loadGrid.
func (g *Game) loadTiming() {
	cfg, err := config.LoadPairs(configPath)
	if err != nil {
		cfg = config.DefaultPairsConfig()
	}
	config.ApplyPairsPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	g.timing = cfg.Timing
	g.flipTicks = config.TicksFor(g.timing.FlipMs, g.tickRate)
	g.configGrid = FindGrid(cfg.Board.DefaultGrid)
}

// loadGrid picks the grid preset for this deal: explicit selection first,
// then the config default, then the built-in default.
func (g *Game) loadGrid() {
	index := selectedGrid
	if index < 0 || index >= GridCount() {
		index = g.configGrid
	}
	if index < 0 || index >= GridCount() {
		index = DefaultGridIndex
	}
	g.grid = *GetGrid(index)
}

// SetScreenSize adopts a new terminal size without redealing. Play pauses
// automatically while the board does not fit.
func (g *Game) SetScreenSize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen fits the board plus HUD.
func (g *Game) checkScreenSize() {
	minW := g.grid.Cols*(cardW+cardGapX) - cardGapX
	minH := g.grid.Rows*cardH + hudLines
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// ElapsedTicks implements TimerSource for the turn controller.
func (g *Game) ElapsedTicks() uint64 {
	return g.elapsed
}

// ReportWin implements WinReporter. Called exactly once per board by the
// turn controller when the last pair is matched; freezes the clock.
func (g *Game) ReportWin(moves int, elapsedTicks uint64) {
	g.won = true
	g.finalMoves = moves
	g.finalElapsed = elapsedTicks
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.won {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.won {
		// Board is solved; let any last flip animations play out.
		g.anim.Update()
		return core.StepResult{State: g.State()}
	}

	g.elapsed++

	g.moveCursor(in)
	if in.Has(core.ActionFlip) {
		g.turn.Reveal(g.cursor)
	}

	g.turn.Tick()
	g.anim.Update()

	return core.StepResult{State: g.State()}
}

// moveCursor shifts the cursor within the grid, clamped at the edges.
func (g *Game) moveCursor(in core.InputFrame) {
	row := g.cursor / g.grid.Cols
	col := g.cursor % g.grid.Cols

	if in.Has(core.ActionUp) {
		row--
	}
	if in.Has(core.ActionDown) {
		row++
	}
	if in.Has(core.ActionLeft) {
		col--
	}
	if in.Has(core.ActionRight) {
		col++
	}

	row = core.Clamp(row, 0, g.grid.Rows-1)
	col = core.Clamp(col, 0, g.grid.Cols-1)
	g.cursor = row*g.grid.Cols + col
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	elapsed := g.elapsed
	moves := g.turn.Moves()
	if g.won {
		elapsed = g.finalElapsed
		moves = g.finalMoves
	}

	return core.GameState{
		Grid:         g.grid.Key(),
		Moves:        moves,
		MatchedPairs: g.board.MatchedPairs(),
		TotalPairs:   g.board.TotalPairs(),
		ElapsedTicks: elapsed,
		Won:          g.won,
		GameOver:     g.won,
		Paused:       g.paused || g.tooSmall,
	}
}

// FormatTicks renders a tick count as m:ss for HUD display.
func FormatTicks(ticks uint64, tickRate int) string {
	if tickRate <= 0 {
		tickRate = 60
	}
	secs := ticks / uint64(tickRate)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
