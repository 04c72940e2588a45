package pairs

import (
	"fmt"
	"math/rand"
)

// Board is the ordered collection of cards for one game session.
// Construction guarantees the pairing invariant: the card count is even
// and every pair id appears on exactly two cards.
type Board struct {
	Rows  int
	Cols  int
	Cards []Card

	// Generation distinguishes this board from boards that existed before
	// a redeal. Evaluation continuations scheduled against an older
	// generation must abort without side effects.
	Generation uint64
}

// boardGeneration is a process-wide counter so every dealt board gets a
// distinct generation, even across game instances.
var boardGeneration uint64

// NewBoard deals a shuffled board of rows x cols cards.
// Each of the rows*cols/2 pair ids appears exactly twice. The shuffle is a
// single Fisher-Yates pass driven by the provided rng, so equal seeds
// produce equal deals. Invalid dimensions are rejected here, before any
// card exists; nothing during play can fail.
func NewBoard(rows, cols int, rng *rand.Rand) (*Board, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("pairs: board %dx%d has no cards", rows, cols)
	}
	total := rows * cols
	if total%2 != 0 {
		return nil, fmt.Errorf("pairs: board %dx%d has an odd card count %d", rows, cols, total)
	}

	cards := make([]Card, total)
	for i := 0; i < total/2; i++ {
		cards[2*i] = Card{PairID: i}
		cards[2*i+1] = Card{PairID: i}
	}

	rng.Shuffle(total, func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	for i := range cards {
		cards[i].Index = i
	}

	boardGeneration++
	return &Board{
		Rows:       rows,
		Cols:       cols,
		Cards:      cards,
		Generation: boardGeneration,
	}, nil
}

// Size returns the total number of cards.
func (b *Board) Size() int {
	return len(b.Cards)
}

// TotalPairs returns the number of pairs on the board.
func (b *Board) TotalPairs() int {
	return len(b.Cards) / 2
}

// Card returns the card at the given index, or nil if out of range.
func (b *Board) Card(index int) *Card {
	if index < 0 || index >= len(b.Cards) {
		return nil
	}
	return &b.Cards[index]
}

// MatchedPairs returns the number of fully solved pairs.
func (b *Board) MatchedPairs() int {
	n := 0
	for i := range b.Cards {
		if b.Cards[i].State() == Matched {
			n++
		}
	}
	return n / 2
}

// AllMatched returns true when every card has reached Matched.
func (b *Board) AllMatched() bool {
	for i := range b.Cards {
		if b.Cards[i].State() != Matched {
			return false
		}
	}
	return true
}

// SetAllLocked sets or clears the input lock on every card.
// Used by the turn controller to gate input during evaluation.
func (b *Board) SetAllLocked(locked bool) {
	for i := range b.Cards {
		b.Cards[i].SetLocked(locked)
	}
}
