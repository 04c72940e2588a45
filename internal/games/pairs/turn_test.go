package pairs

import "testing"

// testDelays keeps evaluation waits short so tests tick through them.
var testDelays = Delays{SettleTicks: 2, MismatchTicks: 3}

type fakeTimer struct {
	ticks uint64
}

func (f *fakeTimer) ElapsedTicks() uint64 { return f.ticks }

type recordingReporter struct {
	wins    int
	moves   int
	elapsed uint64
}

func (r *recordingReporter) ReportWin(moves int, elapsed uint64) {
	r.wins++
	r.moves = moves
	r.elapsed = elapsed
}

type flipRecorder struct {
	effects []FlipEffect
	indices []int
}

func (fr *flipRecorder) record(index int, effect FlipEffect) {
	fr.indices = append(fr.indices, index)
	fr.effects = append(fr.effects, effect)
}

// testBoard builds an unshuffled board with the given pair ids laid out
// as a single row, so tests control exactly which cards match.
func testBoard(t *testing.T, ids ...int) *Board {
	t.Helper()
	if len(ids)%2 != 0 {
		t.Fatalf("testBoard needs an even number of ids, got %d", len(ids))
	}
	cards := make([]Card, len(ids))
	for i, id := range ids {
		cards[i] = Card{Index: i, PairID: id}
	}
	boardGeneration++
	return &Board{Rows: 1, Cols: len(ids), Cards: cards, Generation: boardGeneration}
}

// newTestController wires a controller to a fresh board.
func newTestController(t *testing.T, ids ...int) (*TurnController, *Board, *recordingReporter) {
	t.Helper()
	reporter := &recordingReporter{}
	tc := NewTurnController(testDelays, &fakeTimer{}, reporter, nil)
	board := testBoard(t, ids...)
	tc.AttachBoard(board)
	return tc, board, reporter
}

// tickN advances the controller n ticks.
func tickN(tc *TurnController, n int) {
	for i := 0; i < n; i++ {
		tc.Tick()
	}
}

// evalTicks is enough ticks to complete any evaluation under testDelays.
const evalTicks = 10

func TestTurnFirstSelection(t *testing.T) {
	tc, board, _ := newTestController(t, 0, 0, 1, 1)

	if tc.Phase() != PhaseIdle {
		t.Fatalf("initial phase = %v, expected idle", tc.Phase())
	}

	if !tc.Reveal(0) {
		t.Fatal("first reveal should be accepted")
	}
	if tc.Phase() != PhaseOneSelected {
		t.Errorf("phase = %v, expected one_selected", tc.Phase())
	}
	if board.Cards[0].State() != Revealed {
		t.Errorf("card 0 state = %v, expected Revealed", board.Cards[0].State())
	}
	if tc.Moves() != 0 {
		t.Errorf("moves = %d, expected 0 after a single selection", tc.Moves())
	}
}

func TestTurnDuplicateTapIsNoOp(t *testing.T) {
	tc, _, _ := newTestController(t, 0, 0, 1, 1)

	tc.Reveal(0)
	if tc.Reveal(0) {
		t.Error("re-tapping the selected card should be dropped")
	}
	// Selection must not be cleared by the duplicate tap
	if tc.Phase() != PhaseOneSelected {
		t.Errorf("phase = %v, expected one_selected", tc.Phase())
	}
	first, second := tc.Selection()
	if first != 0 || second != -1 {
		t.Errorf("selection = (%d, %d), expected (0, -1)", first, second)
	}
	if tc.Moves() != 0 {
		t.Errorf("moves = %d, duplicate tap must not count", tc.Moves())
	}
}

func TestTurnMatchFlow(t *testing.T) {
	tc, board, _ := newTestController(t, 0, 0, 1, 1)

	tc.Reveal(0)
	tc.Reveal(1) // Same pair id
	if tc.Phase() != PhaseEvaluating {
		t.Fatalf("phase = %v, expected evaluating", tc.Phase())
	}
	if tc.Moves() != 1 {
		t.Errorf("moves = %d, expected 1", tc.Moves())
	}

	// All cards locked during evaluation
	for i := range board.Cards {
		if !board.Cards[i].Locked() {
			t.Errorf("card %d not locked during evaluation", i)
		}
	}

	tickN(tc, evalTicks)

	if board.Cards[0].State() != Matched || board.Cards[1].State() != Matched {
		t.Error("matched pair should both be Matched after settle delay")
	}
	if tc.Phase() != PhaseIdle {
		t.Errorf("phase = %v, expected idle after evaluation", tc.Phase())
	}
	for i := range board.Cards {
		if board.Cards[i].Locked() {
			t.Errorf("card %d still locked after evaluation", i)
		}
	}
}

func TestTurnMismatchFlow(t *testing.T) {
	tc, board, _ := newTestController(t, 0, 0, 1, 1)

	tc.Reveal(0) // id 0
	tc.Reveal(2) // id 1

	// After the settle delay the mismatch is still displayed
	tickN(tc, testDelays.SettleTicks)
	if board.Cards[0].State() != Revealed || board.Cards[2].State() != Revealed {
		t.Error("mismatched pair should stay visible through the mismatch delay")
	}
	if tc.Phase() != PhaseEvaluating {
		t.Errorf("phase = %v, expected still evaluating", tc.Phase())
	}

	// After the mismatch delay both flip back
	tickN(tc, testDelays.MismatchTicks)
	if board.Cards[0].State() != Hidden || board.Cards[2].State() != Hidden {
		t.Error("mismatched pair should return to Hidden")
	}
	if tc.Phase() != PhaseIdle {
		t.Errorf("phase = %v, expected idle", tc.Phase())
	}
	if tc.Moves() != 1 {
		t.Errorf("moves = %d, expected 1 regardless of outcome", tc.Moves())
	}

	// Both cards are selectable again
	if !tc.Reveal(0) {
		t.Error("card 0 should be selectable again after mismatch")
	}
}

func TestTurnThirdTapDroppedNotQueued(t *testing.T) {
	tc, board, _ := newTestController(t, 0, 0, 1, 1)

	tc.Reveal(0)
	tc.Reveal(2)

	// Third tap mid-evaluation: dropped
	if tc.Reveal(3) {
		t.Error("reveal during evaluation should be dropped")
	}
	if board.Cards[3].State() != Hidden {
		t.Error("third card must stay Hidden")
	}

	tickN(tc, evalTicks)

	// Still not queued: the tap left no trace after evaluation completes
	if board.Cards[3].State() != Hidden {
		t.Error("dropped tap must not replay after evaluation")
	}
	if tc.Phase() != PhaseIdle {
		t.Errorf("phase = %v, expected idle", tc.Phase())
	}
}

func TestTurnAtMostTwoCardsInFlight(t *testing.T) {
	tc, board, _ := newTestController(t, 0, 1, 0, 1, 2, 2)

	// Hammer reveals on every card each step, ticking as we go
	for step := 0; step < 200; step++ {
		tc.Reveal(step % board.Size())
		tc.Tick()

		revealed := 0
		for i := range board.Cards {
			if board.Cards[i].State() == Revealed {
				revealed++
			}
		}
		if revealed > 2 {
			t.Fatalf("step %d: %d cards simultaneously revealed", step, revealed)
		}
	}
}

func TestTurnWinReportedExactlyOnce(t *testing.T) {
	reporter := &recordingReporter{}
	timer := &fakeTimer{ticks: 777}
	tc := NewTurnController(testDelays, timer, reporter, nil)
	board := testBoard(t, 0, 0, 1, 1)
	tc.AttachBoard(board)

	// Solve pair 0
	tc.Reveal(0)
	tc.Reveal(1)
	tickN(tc, evalTicks)
	if reporter.wins != 0 {
		t.Fatal("win reported before the board was solved")
	}

	// Solve pair 1
	tc.Reveal(2)
	tc.Reveal(3)
	tickN(tc, evalTicks)

	if reporter.wins != 1 {
		t.Fatalf("wins = %d, expected exactly 1", reporter.wins)
	}
	if reporter.moves != 2 {
		t.Errorf("reported moves = %d, expected 2", reporter.moves)
	}
	if reporter.elapsed != 777 {
		t.Errorf("reported elapsed = %d, expected timer value 777", reporter.elapsed)
	}

	// Extra ticks must not re-report
	tickN(tc, evalTicks)
	if reporter.wins != 1 {
		t.Errorf("wins = %d after extra ticks, expected 1", reporter.wins)
	}
}

func TestTurnSpecScenario(t *testing.T) {
	// Four cards, ids [0,0,1,1]: mismatch, then two matches, solved in 3 moves.
	tc, board, reporter := newTestController(t, 0, 0, 1, 1)

	// reveal card@0 (id 0) -> one selected
	tc.Reveal(0)
	if tc.Phase() != PhaseOneSelected {
		t.Fatalf("phase = %v, expected one_selected", tc.Phase())
	}

	// reveal card@2 (id 1) -> mismatch, both hidden again
	tc.Reveal(2)
	tickN(tc, evalTicks)
	if board.Cards[0].State() != Hidden || board.Cards[2].State() != Hidden {
		t.Error("mismatched cards should be Hidden again")
	}
	if tc.Moves() != 1 {
		t.Errorf("moves = %d, expected 1", tc.Moves())
	}
	if reporter.wins != 0 {
		t.Error("board must not be solved yet")
	}

	// card@0 + card@1 (both id 0) -> matched
	tc.Reveal(0)
	tc.Reveal(1)
	tickN(tc, evalTicks)
	if board.Cards[0].State() != Matched || board.Cards[1].State() != Matched {
		t.Error("pair 0 should be Matched")
	}
	if tc.Moves() != 2 {
		t.Errorf("moves = %d, expected 2", tc.Moves())
	}

	// card@2 + card@3 (both id 1) -> matched, board solved
	tc.Reveal(2)
	tc.Reveal(3)
	tickN(tc, evalTicks)
	if !board.AllMatched() {
		t.Error("board should be fully matched")
	}
	if tc.Moves() != 3 {
		t.Errorf("moves = %d, expected 3", tc.Moves())
	}
	if reporter.wins != 1 {
		t.Errorf("wins = %d, expected 1", reporter.wins)
	}
}

func TestTurnResetMidEvaluationCancelsSideEffects(t *testing.T) {
	flips := &flipRecorder{}
	reporter := &recordingReporter{}
	tc := NewTurnController(testDelays, &fakeTimer{}, reporter, flips.record)
	stale := testBoard(t, 0, 0, 1, 1)
	tc.AttachBoard(stale)

	// Start a mismatch evaluation
	tc.Reveal(0)
	tc.Reveal(2)
	tickN(tc, testDelays.SettleTicks) // Now displaying the mismatch

	flipsBefore := len(flips.effects)

	// Redeal before the mismatch delay elapses
	fresh := testBoard(t, 0, 1, 0, 1)
	tc.AttachBoard(fresh)

	tickN(tc, evalTicks)

	// No Hide fired on the stale cards: they are frozen as Revealed
	if stale.Cards[0].State() != Revealed || stale.Cards[2].State() != Revealed {
		t.Error("stale cards must not receive Hide after a redeal")
	}
	if len(flips.effects) != flipsBefore {
		t.Errorf("flip effects fired after redeal: %v", flips.effects[flipsBefore:])
	}

	// Fresh board starts idle, all hidden, unlocked
	if tc.Phase() != PhaseIdle {
		t.Errorf("phase = %v, expected idle on fresh board", tc.Phase())
	}
	for i := range fresh.Cards {
		if fresh.Cards[i].State() != Hidden || fresh.Cards[i].Locked() {
			t.Errorf("fresh card %d not hidden/unlocked", i)
		}
	}
	if tc.Moves() != 0 {
		t.Errorf("moves = %d, expected 0 after redeal", tc.Moves())
	}
}

func TestTurnStaleEvaluationAbortsViaGeneration(t *testing.T) {
	// Simulates the generation check directly: the evaluation was started
	// against a board whose generation no longer matches.
	tc, board, _ := newTestController(t, 0, 0, 1, 1)

	tc.Reveal(0)
	tc.Reveal(2)

	// Bump the board generation under the controller's feet
	board.Generation++

	tc.Tick()

	if tc.Phase() != PhaseIdle {
		t.Errorf("phase = %v, expected idle after aborted evaluation", tc.Phase())
	}
	// Abort leaves the cards untouched but unlocks input
	if board.Cards[0].State() != Revealed {
		t.Error("aborted evaluation must not hide cards")
	}
	for i := range board.Cards {
		if board.Cards[i].Locked() {
			t.Errorf("card %d still locked after abort", i)
		}
	}
}

func TestTurnRevealIgnoresInvalidIndex(t *testing.T) {
	tc, _, _ := newTestController(t, 0, 0)

	if tc.Reveal(-1) {
		t.Error("negative index should be dropped")
	}
	if tc.Reveal(99) {
		t.Error("out-of-range index should be dropped")
	}
	if tc.Phase() != PhaseIdle {
		t.Errorf("phase = %v, expected idle", tc.Phase())
	}
}

func TestTurnRevealWithoutBoard(t *testing.T) {
	tc := NewTurnController(testDelays, &fakeTimer{}, &recordingReporter{}, nil)

	if tc.Reveal(0) {
		t.Error("reveal before AttachBoard should be dropped")
	}
	tc.Tick() // Must not panic
}

func TestTurnFlipEffects(t *testing.T) {
	flips := &flipRecorder{}
	tc := NewTurnController(testDelays, &fakeTimer{}, &recordingReporter{}, flips.record)
	board := testBoard(t, 0, 0, 1, 1)
	tc.AttachBoard(board)

	// Match: two reveals then two match effects
	tc.Reveal(0)
	tc.Reveal(1)
	tickN(tc, evalTicks)

	want := []FlipEffect{FlipReveal, FlipReveal, FlipMatch, FlipMatch}
	if len(flips.effects) != len(want) {
		t.Fatalf("got %d flip effects, expected %d", len(flips.effects), len(want))
	}
	for i, e := range want {
		if flips.effects[i] != e {
			t.Errorf("effect %d = %v, expected %v", i, flips.effects[i], e)
		}
	}

	// Mismatch: two reveals then two hide effects, on a fresh board with
	// distinct ids side by side.
	board2 := testBoard(t, 0, 1, 0, 1)
	tc.AttachBoard(board2)
	flips.effects = nil

	tc.Reveal(0) // id 0
	tc.Reveal(1) // id 1
	tickN(tc, evalTicks)

	want = []FlipEffect{FlipReveal, FlipReveal, FlipHide, FlipHide}
	if len(flips.effects) != len(want) {
		t.Fatalf("got %d flip effects, expected %d", len(flips.effects), len(want))
	}
	for i, e := range want {
		if flips.effects[i] != e {
			t.Errorf("effect %d = %v, expected %v", i, flips.effects[i], e)
		}
	}
}
