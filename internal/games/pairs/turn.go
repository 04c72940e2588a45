package pairs

// Phase is the turn controller's board-level state.
type Phase int

const (
	PhaseIdle        Phase = iota // No card selected
	PhaseOneSelected              // First card revealed, waiting for second
	PhaseEvaluating               // Two cards revealed, input locked
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseOneSelected:
		return "one_selected"
	case PhaseEvaluating:
		return "evaluating"
	default:
		return "unknown"
	}
}

// evalStage tracks where an in-flight evaluation is within its delays.
type evalStage int

const (
	stageSettling         evalStage = iota // Letting the reveal flip finish
	stageShowingMismatch                   // Displaying a failed match before hiding
)

// Delays are the evaluation wait periods, in simulation ticks.
type Delays struct {
	SettleTicks   int // After the second reveal, before comparing ids
	MismatchTicks int // Extra display time for a failed match, before hiding
}

// TimerSource supplies the elapsed play time in ticks. The turn controller
// only reads it when reporting a win; it never schedules against it.
type TimerSource interface {
	ElapsedTicks() uint64
}

// WinReporter is notified exactly once per board, when the last pair is
// matched. It owns best-time comparison and persistence.
type WinReporter interface {
	ReportWin(moves int, elapsedTicks uint64)
}

// TurnController accumulates up to two card selections, evaluates them
// after a settle delay, and locks all input while doing so. All of its
// work happens on the single simulation goroutine: Reveal is called for
// user taps and Tick once per frame. The wait periods are suspension
// points counted in ticks, not parallel execution.
type TurnController struct {
	board *Board

	phase  Phase
	first  int // Index of first selected card, -1 at rest
	second int // Index of second selected card, -1 at rest

	stage     evalStage
	waitTicks int    // Remaining ticks in the current stage
	evalGen   uint64 // Board generation the evaluation was started against

	delays   Delays
	moves    int
	won      bool // Win already reported for this board
	timer    TimerSource
	reporter WinReporter
	onFlip   FlipListener
}

// NewTurnController creates a controller with its collaborators injected.
// timer and reporter may not be nil; onFlip may be nil (no effects).
func NewTurnController(delays Delays, timer TimerSource, reporter WinReporter, onFlip FlipListener) *TurnController {
	return &TurnController{
		first:    -1,
		second:   -1,
		delays:   delays,
		timer:    timer,
		reporter: reporter,
		onFlip:   onFlip,
	}
}

// AttachBoard binds a freshly dealt board and resets all turn state.
// Any in-flight evaluation against the previous board is cancelled: its
// pending hide/match side effects will never fire because the stored
// generation no longer matches.
func (tc *TurnController) AttachBoard(b *Board) {
	tc.board = b
	tc.phase = PhaseIdle
	tc.first = -1
	tc.second = -1
	tc.waitTicks = 0
	tc.moves = 0
	tc.won = false
}

// Phase returns the controller's current phase.
func (tc *TurnController) Phase() Phase {
	return tc.phase
}

// Moves returns the number of completed two-card selections.
func (tc *TurnController) Moves() int {
	return tc.moves
}

// Selection returns the currently selected card indices (-1 when empty).
func (tc *TurnController) Selection() (first, second int) {
	return tc.first, tc.second
}

// Reveal processes a user tap on the card at the given index.
// Invalid requests - unknown index, matched/locked/already-revealed card,
// tap during evaluation - are silently dropped, not queued. Returns true
// if the card actually flipped.
func (tc *TurnController) Reveal(index int) bool {
	if tc.board == nil || tc.phase == PhaseEvaluating {
		return false
	}

	card := tc.board.Card(index)
	if card == nil {
		return false
	}

	// Re-tapping the first selected card is a no-op: it is Revealed, so
	// the request fails here without clearing the selection.
	if !card.RequestReveal() {
		return false
	}
	tc.flip(index, FlipReveal)

	switch tc.phase {
	case PhaseIdle:
		tc.first = index
		tc.phase = PhaseOneSelected

	case PhaseOneSelected:
		tc.second = index
		tc.moves++
		tc.phase = PhaseEvaluating
		tc.stage = stageSettling
		tc.waitTicks = tc.delays.SettleTicks
		tc.evalGen = tc.board.Generation
		tc.board.SetAllLocked(true)
	}

	return true
}

// Tick advances an in-flight evaluation by one simulation tick.
// No-op outside PhaseEvaluating.
func (tc *TurnController) Tick() {
	if tc.phase != PhaseEvaluating {
		return
	}

	// A redeal happened while this evaluation was pending: abort without
	// touching the (stale) cards.
	if tc.board == nil || tc.board.Generation != tc.evalGen {
		tc.abortEvaluation()
		return
	}

	if tc.waitTicks > 0 {
		tc.waitTicks--
		if tc.waitTicks > 0 {
			return
		}
	}

	a := tc.board.Card(tc.first)
	b := tc.board.Card(tc.second)
	if a == nil || b == nil || a.State() != Revealed || b.State() != Revealed {
		// Selected references went invalid mid-evaluation; recover locally.
		tc.abortEvaluation()
		return
	}

	switch tc.stage {
	case stageSettling:
		if a.PairID == b.PairID {
			a.SetMatched()
			b.SetMatched()
			tc.flip(tc.first, FlipMatch)
			tc.flip(tc.second, FlipMatch)
			tc.finishEvaluation()
			return
		}
		// Keep the mismatch visible for a beat before hiding.
		tc.stage = stageShowingMismatch
		tc.waitTicks = tc.delays.MismatchTicks

	case stageShowingMismatch:
		a.Hide()
		b.Hide()
		tc.flip(tc.first, FlipHide)
		tc.flip(tc.second, FlipHide)
		tc.finishEvaluation()
	}
}

// finishEvaluation clears the selection, unlocks input, and reports a win
// if unlocking revealed a fully matched board.
func (tc *TurnController) finishEvaluation() {
	tc.first = -1
	tc.second = -1
	tc.phase = PhaseIdle
	tc.board.SetAllLocked(false)

	if !tc.won && tc.board.AllMatched() {
		tc.won = true
		tc.reporter.ReportWin(tc.moves, tc.timer.ElapsedTicks())
	}
}

// abortEvaluation drops a stale evaluation without match/mismatch side
// effects. The current board (if any) is left unlocked and idle.
func (tc *TurnController) abortEvaluation() {
	tc.first = -1
	tc.second = -1
	tc.phase = PhaseIdle
	if tc.board != nil {
		tc.board.SetAllLocked(false)
	}
}

// flip forwards a cosmetic transition to the listener, if any.
func (tc *TurnController) flip(index int, effect FlipEffect) {
	if tc.onFlip != nil {
		tc.onFlip(index, effect)
	}
}
