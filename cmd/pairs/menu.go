package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkovardin/tui-pairs/internal/core"
	"github.com/mkovardin/tui-pairs/internal/games/pairs"
	"github.com/mkovardin/tui-pairs/internal/platform/tui"
	"github.com/mkovardin/tui-pairs/internal/registry"
	"github.com/mkovardin/tui-pairs/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start pairs with an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a round ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Best times
  Q            - Quit

Examples:
  pairs menu
  pairs menu --fps 30
  pairs menu --db ./results.db`,
	Run: runMenu,
}

func init() {
	// Uses global flags from main.go (--fps, --seed, --db)
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Menu loop
menuLoop:
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		switch menuResult.Item {
		case tui.MenuItemScoreboard:
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				break menuLoop // User quit from scoreboard
			}

		case tui.MenuItemPlay:
			selection, updatedCfg, selErr := tui.RunGridSelector(store, cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				continue
			}
			cfg = updatedCfg

			// User pressed back or quit
			if selection == nil {
				continue
			}
			pairs.SetGrid(selection.GridIndex)

			game, err := registry.Create("pairs")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
				continue
			}

			// Fresh deal every round
			cfg.Seed = time.Now().UnixNano()

			goBack, runErr := tui.Run(game, store, cfg)
			if runErr != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			}
			if !goBack {
				// User quit from the game rather than going back
				break menuLoop
			}

		case tui.MenuItemQuit:
			break menuLoop
		}
	}

	if store != nil {
		store.Close()
	}
}
