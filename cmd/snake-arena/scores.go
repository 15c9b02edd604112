package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arena/internal/games/snake"
	"github.com/vovakirdan/snake-arena/internal/registry"
	"github.com/vovakirdan/snake-arena/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresClear  bool
	flagScoresStats  bool
	flagScoresOnline string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top scores for a game variant (default: snake).

With --online, show the leaderboard of registered players instead. Use
"all" for every mode, or walls / pass-through.

Examples:
  snake-arena scores
  snake-arena scores snake_wrap --limit 20
  snake-arena scores --stats
  snake-arena scores --online all
  snake-arena scores snake --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all local scores for the game")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show play statistics for every game")
	scoresCmd.Flags().StringVar(&flagScoresOnline, "online", "", "Show the online leaderboard: all, walls or pass-through")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := snake.IDWalls
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'snake-arena list' to see available games", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", gameID)
		return nil
	case flagScoresStats:
		return printStats(store)
	case cmd.Flags().Changed("online"):
		return printLeaderboard(cmd.Context(), store, flagScoresOnline)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake-arena play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	if best, err := store.HighScore(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}

func printStats(store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No games played yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-12s  %-6s  %-8s  %s\n", "Game", "Plays", "Best", "Average")
	fmt.Printf("  %-12s  %-6s  %-8s  %s\n", "----", "-----", "----", "-------")
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-12s  %-6d  %-8d  %.1f\n", id, s.GamesCount, s.HighScore, s.AvgScore)
	}
	return nil
}

func printLeaderboard(ctx context.Context, store *storage.Store, modeArg string) error {
	var mode snake.Mode
	if modeArg != "all" && modeArg != "" {
		mode = snake.Mode(modeArg)
		if !mode.Valid() {
			return fmt.Errorf("unknown mode %q (want all, walls or pass-through)", modeArg)
		}
	}

	entries, err := store.Leaderboard(ctx, mode, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Println("Online Leaderboard")
	fmt.Println()
	if len(entries) == 0 {
		fmt.Println("No scores submitted yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-8s  %-12s  %s\n", "Rank", "Player", "Score", "Mode", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %-12s  %s\n", "----", "------", "-----", "----", "----")
	for _, e := range entries {
		fmt.Printf("  %-4d  %-16s  %-8d  %-12s  %s\n", e.Rank, e.Username, e.Score, e.Mode, e.Date.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
