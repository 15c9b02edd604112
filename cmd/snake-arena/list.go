package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arena/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game variants",
	Long:  `Shows a list of all game variants registered in the arena.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'snake-arena play' to play or 'snake-arena watch' to spectate.")
}
