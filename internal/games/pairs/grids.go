package pairs

import (
	"fmt"
	"strings"
)

// Grid is a selectable board size. Every preset has an even card count,
// so board construction from a preset can never fail.
type Grid struct {
	Name string
	Rows int
	Cols int
}

// Pairs returns the number of pairs this grid holds.
func (g Grid) Pairs() int {
	return g.Rows * g.Cols / 2
}

// Key returns the canonical identifier used for result storage ("4x4").
func (g Grid) Key() string {
	return fmt.Sprintf("%dx%d", g.Rows, g.Cols)
}

// grids are the built-in board sizes, smallest first.
var grids = []Grid{
	{Name: "Warm-up", Rows: 2, Cols: 2},
	{Name: "Easy", Rows: 3, Cols: 4},
	{Name: "Classic", Rows: 4, Cols: 4},
	{Name: "Roomy", Rows: 4, Cols: 5},
	{Name: "Big", Rows: 5, Cols: 6},
	{Name: "Expert", Rows: 6, Cols: 6},
}

// DefaultGridIndex is the preset used when nothing is selected.
const DefaultGridIndex = 2 // Classic 4x4

// GridCount returns the number of built-in grid presets.
func GridCount() int {
	return len(grids)
}

// GetGrid returns the preset at the given index, or nil if out of range.
func GetGrid(index int) *Grid {
	if index < 0 || index >= len(grids) {
		return nil
	}
	g := grids[index]
	return &g
}

// GridNames returns display labels for all presets, in order.
func GridNames() []string {
	names := make([]string, len(grids))
	for i, g := range grids {
		names[i] = fmt.Sprintf("%s (%s, %d pairs)", g.Name, g.Key(), g.Pairs())
	}
	return names
}

// GridKeys returns the canonical keys of all presets, in order.
func GridKeys() []string {
	keys := make([]string, len(grids))
	for i, g := range grids {
		keys[i] = g.Key()
	}
	return keys
}

// FindGrid resolves a user-supplied grid key like "4x4" (case-insensitive)
// to a preset index. Returns -1 if no preset matches.
func FindGrid(key string) int {
	key = strings.ToLower(strings.TrimSpace(key))
	for i, g := range grids {
		if g.Key() == key {
			return i
		}
	}
	return -1
}
