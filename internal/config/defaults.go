package config

import (
	_ "embed"
)

//go:embed defaults/pairs.yaml
var defaultPairsYAML []byte

// DefaultPairsConfig returns the hardcoded default pairs configuration.
// Used as the last-resort fallback if the embedded YAML fails to parse.
func DefaultPairsConfig() PairsConfig {
	return PairsConfig{
		Timing: PairsTiming{
			SettleMs:   350,
			MismatchMs: 800,
			FlipMs:     150,
		},
		Board: PairsBoard{
			DefaultGrid: "4x4",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for the pairs game.
func GetDefaultYAML() []byte {
	return defaultPairsYAML
}
