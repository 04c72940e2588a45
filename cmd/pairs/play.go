package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkovardin/tui-pairs/internal/core"
	"github.com/mkovardin/tui-pairs/internal/games/pairs"
	"github.com/mkovardin/tui-pairs/internal/platform/tui"
	"github.com/mkovardin/tui-pairs/internal/registry"
	"github.com/mkovardin/tui-pairs/internal/storage"
)

var (
	flagConfig string
	flagGrid   string
	flagPreset string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round of pairs",
	Long: `Start playing. Without --grid, a board size selector is shown first.

Controls:
  Arrows/WASD/hjkl - Move cursor
  Space/Enter      - Flip card
  P                - Pause
  R                - Redeal
  B/Esc            - Back
  Q/Ctrl+C         - Quit

Preset options:
  easy   - Longer delays, more time to memorize mismatches
  normal - Default timing
  hard   - Mismatches hide quickly

Examples:
  pairs play
  pairs play --grid 4x4
  pairs play --grid 6x6 --preset hard
  pairs play --config ./my-pairs.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagGrid, "grid", "", "Board size key, e.g. 4x4 (see 'pairs grids')")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Timing preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	pairs.SetConfigPath(flagConfig)
	pairs.SetDifficultyPreset(flagPreset)

	// Get terminal size early for the selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	if flagGrid != "" {
		index := pairs.FindGrid(flagGrid)
		if index < 0 {
			fmt.Fprintf(os.Stderr, "Error: unknown board size %q\n", flagGrid)
			fmt.Fprintln(os.Stderr, "Run 'pairs grids' to see available sizes.")
			os.Exit(1)
		}
		pairs.SetGrid(index)
	} else {
		// Show the board size selector
		selection, updatedCfg, selErr := tui.RunGridSelector(store, cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}
		pairs.SetGrid(selection.GridIndex)
	}

	game, err := registry.Create("pairs")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if _, err := tui.Run(game, store, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
