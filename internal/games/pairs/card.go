package pairs

// CardState represents the lifecycle state of a single card.
type CardState int

const (
	Hidden CardState = iota
	Revealed
	Matched
)

// String returns a human-readable name for the state.
func (cs CardState) String() string {
	switch cs {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Matched:
		return "matched"
	default:
		return "unknown"
	}
}

// FlipEffect identifies the cosmetic transition a card just performed.
// Effects are fire-and-forget: the renderer plays them asynchronously and
// never reports back into the state machine.
type FlipEffect int

const (
	FlipReveal FlipEffect = iota // Hidden -> Revealed
	FlipHide                     // Revealed -> Hidden (mismatch)
	FlipMatch                    // Revealed -> Matched
)

// FlipListener receives card transitions for presentation purposes.
// A nil listener is valid and means no effects are played.
type FlipListener func(index int, effect FlipEffect)

// Card is one playing piece: a pair id plus lifecycle state.
// The locked flag gates user input independently of the state; the turn
// controller sets it board-wide while an evaluation is in progress.
type Card struct {
	Index  int // Position on the board
	PairID int // Two cards share a PairID iff they are a matching pair

	state  CardState
	locked bool
}

// State returns the card's current lifecycle state.
func (c *Card) State() CardState {
	return c.state
}

// Locked returns whether user input is currently rejected for this card.
func (c *Card) Locked() bool {
	return c.locked
}

// RequestReveal attempts a user-driven Hidden -> Revealed transition.
// It succeeds only when the card is Hidden and not locked. Any other
// request (already revealed, matched, locked) is silently ignored and
// returns false; duplicate taps are not errors.
func (c *Card) RequestReveal() bool {
	if c.locked || c.state != Hidden {
		return false
	}
	c.state = Revealed
	return true
}

// Hide transitions Revealed -> Hidden after a mismatch.
// Returns false without changing state if the card is not Revealed;
// a Matched card never leaves Matched.
func (c *Card) Hide() bool {
	if c.state != Revealed {
		return false
	}
	c.state = Hidden
	return true
}

// SetMatched transitions Revealed -> Matched, permanently retiring the
// card from play. Returns false if the card is not currently Revealed.
func (c *Card) SetMatched() bool {
	if c.state != Revealed {
		return false
	}
	c.state = Matched
	return true
}

// SetLocked sets or clears the input lock, independent of state.
func (c *Card) SetLocked(locked bool) {
	c.locked = locked
}
