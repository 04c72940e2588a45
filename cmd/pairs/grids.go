package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkovardin/tui-pairs/internal/games/pairs"
)

var gridsCmd = &cobra.Command{
	Use:   "grids",
	Short: "List available board sizes",
	Long:  `Shows all built-in board size presets.`,
	Run:   runGrids,
}

func runGrids(cmd *cobra.Command, args []string) {
	fmt.Println("Available board sizes:")
	fmt.Println()

	fmt.Printf("  %-6s  %-8s  %-5s  %s\n", "Key", "Name", "Pairs", "Cards")
	fmt.Printf("  %-6s  %-8s  %-5s  %s\n", "---", "----", "-----", "-----")

	for i := 0; i < pairs.GridCount(); i++ {
		g := pairs.GetGrid(i)
		fmt.Printf("  %-6s  %-8s  %-5d  %d\n", g.Key(), g.Name, g.Pairs(), g.Rows*g.Cols)
	}

	fmt.Println()
	fmt.Println("Run 'pairs play --grid <key>' to play a size directly.")
}
