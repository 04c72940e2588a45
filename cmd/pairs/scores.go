package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mkovardin/tui-pairs/internal/games/pairs"
	"github.com/mkovardin/tui-pairs/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [grid]",
	Short: "Show best times",
	Long: `Display the top 10 results for a board size, or a summary of all
sizes when no grid is given.

Examples:
  pairs scores
  pairs scores 4x4`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		printSummary(store)
		return
	}

	grid := args[0]
	if pairs.FindGrid(grid) < 0 {
		fmt.Fprintf(os.Stderr, "Error: unknown board size %q\n", grid)
		fmt.Fprintln(os.Stderr, "Run 'pairs grids' to see available sizes.")
		os.Exit(1)
	}

	results, err := store.TopResults(grid, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Times - %s\n", grid)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No boards solved yet.")
		fmt.Println()
		fmt.Printf("Play 'pairs play --grid %s' to set the first time!\n", grid)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %s\n", "Rank", "Time", "Moves", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %s\n", "----", "----", "-----", "----")

	for i, entry := range results {
		secs := entry.DurationMs / 1000
		timeStr := fmt.Sprintf("%d:%02d", secs/60, secs%60)
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8s  %-6d  %s\n", i+1, timeStr, entry.Moves, dateStr)
	}

	best, err := store.BestTime(grid)
	if err == nil && best > 0 {
		secs := best / 1000
		fmt.Println()
		fmt.Printf("Best: %d:%02d\n", secs/60, secs%60)
	}
}

// printSummary shows one line of stats per grid size that has results.
func printSummary(store *storage.Store) {
	stats, err := store.GetAllGridStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(stats) == 0 {
		fmt.Println("No boards solved yet.")
		fmt.Println()
		fmt.Println("Play 'pairs play' to set the first time!")
		return
	}

	// Present grids smallest first, matching the preset order
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return pairs.FindGrid(keys[i]) < pairs.FindGrid(keys[j])
	})

	fmt.Println("Best Times")
	fmt.Println()
	fmt.Printf("  %-6s  %-7s  %-8s  %-6s\n", "Grid", "Played", "Best", "Moves")
	fmt.Printf("  %-6s  %-7s  %-8s  %-6s\n", "----", "------", "----", "-----")

	for _, k := range keys {
		s := stats[k]
		secs := s.BestTimeMs / 1000
		timeStr := fmt.Sprintf("%d:%02d", secs/60, secs%60)
		fmt.Printf("  %-6s  %-7d  %-8s  %-6d\n", s.Grid, s.GamesCount, timeStr, s.BestMoves)
	}
}
