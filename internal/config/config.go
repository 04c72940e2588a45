// Package config provides YAML-based game configuration loading and
// difficulty presets for the pairs platform.
package config

// PairsConfig contains all tunable parameters for the pairs game.
type PairsConfig struct {
	Timing PairsTiming `yaml:"timing"`
	Board  PairsBoard  `yaml:"board"`
}

// PairsTiming defines the evaluation and animation delays.
// All values are wall-clock milliseconds; the game converts them to
// simulation ticks using the runtime tick rate.
type PairsTiming struct {
	SettleMs   int `yaml:"settle_ms"`   // After the second reveal, before comparing the pair
	MismatchMs int `yaml:"mismatch_ms"` // Extra display time for a failed match, before hiding
	FlipMs     int `yaml:"flip_ms"`     // Cosmetic card flip duration
}

// PairsBoard defines board defaults.
type PairsBoard struct {
	DefaultGrid string `yaml:"default_grid"` // Preset key like "4x4"
}

// DifficultyPreset represents a named timing preset. Easier presets leave
// mismatched cards visible longer.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPairsPreset scales the timing config for a difficulty preset.
// Unknown presets (including "") leave the config unchanged.
func ApplyPairsPreset(cfg *PairsConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.MismatchMs = cfg.Timing.MismatchMs * 3 / 2
		cfg.Timing.SettleMs = cfg.Timing.SettleMs * 3 / 2
	case DifficultyHard:
		cfg.Timing.MismatchMs = cfg.Timing.MismatchMs / 2
		cfg.Timing.SettleMs = cfg.Timing.SettleMs / 2
	}

	// Delays below one frame at 60fps stop reading as delays at all.
	if cfg.Timing.SettleMs < 50 {
		cfg.Timing.SettleMs = 50
	}
	if cfg.Timing.MismatchMs < 100 {
		cfg.Timing.MismatchMs = 100
	}
}

// TicksFor converts a millisecond duration to simulation ticks at the
// given tick rate, with a minimum of one tick.
func TicksFor(ms, tickRate int) int {
	ticks := ms * tickRate / 1000
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}
