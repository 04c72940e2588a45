// pairs is a terminal memory-matching game: flip cards two at a time and
// clear the board in as few moves as you can.
//
// Usage:
//
//	pairs play               - Play (with a board size selector)
//	pairs play --grid 4x4    - Play a specific board size
//	pairs menu               - Interactive menu (play, best times)
//	pairs grids              - List available board sizes
//	pairs scores [grid]      - Show best times
//	pairs serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible deals
//	--db <path>     - Set database path (default: ~/.pairs/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/mkovardin/tui-pairs/internal/games/pairs"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pairs",
	Short: "Pairs - A memory matching game in your terminal",
	Long: `Pairs is a terminal memory game. Cards are dealt face down in
matching pairs; flip two at a time and clear the board.

Available commands:
  play     - Play directly (optionally pick a board size)
  menu     - Interactive menu
  grids    - Show available board sizes
  scores   - View best times
  serve    - Start SSH server for remote play

Examples:
  pairs play
  pairs play --grid 6x6 --preset hard
  pairs menu
  pairs serve --ssh :2222
  pairs scores 4x4`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pairs/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(gridsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
