package pairs

// GameStateType labels the overall game state for snapshots.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWin         GameStateType = "win"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete observable game state for determinism
// testing and replay.
type Snapshot struct {
	Tick         uint64
	Grid         string
	Moves        int
	MatchedPairs int
	TotalPairs   int
	Phase        Phase
	First        int // Selected card indices, -1 when empty
	Second       int
	Cursor       int
	ElapsedTicks uint64
	PairIDs      []int // Deal order, for shuffle determinism checks
	State        GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.paused:
		state = StatePaused
	}

	first, second := g.turn.Selection()

	pairIDs := make([]int, len(g.board.Cards))
	for i := range g.board.Cards {
		pairIDs[i] = g.board.Cards[i].PairID
	}

	return Snapshot{
		Tick:         g.tick,
		Grid:         g.grid.Key(),
		Moves:        g.turn.Moves(),
		MatchedPairs: g.board.MatchedPairs(),
		TotalPairs:   g.board.TotalPairs(),
		Phase:        g.turn.Phase(),
		First:        first,
		Second:       second,
		Cursor:       g.cursor,
		ElapsedTicks: g.elapsed,
		PairIDs:      pairIDs,
		State:        state,
	}
}
