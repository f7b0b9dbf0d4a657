package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/padtris/internal/platform/tui"
	"github.com/vovakirdan/padtris/internal/registry"
	"github.com/vovakirdan/padtris/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 rounds of a mode (default: tetris).

Examples:
  padtris scores
  padtris scores tetris_fill
  padtris scores -i
  padtris scores tetris --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every score of the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := "tetris"
	if len(args) > 0 {
		gameID = args[0]
	}

	info, ok := registry.Lookup(gameID)
	if !ok {
		fatal("unknown mode %q\nRun 'padtris list' to see available modes.", gameID)
	}
	title := info.Title

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fatal("%v", err)
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return
	}

	if flagInteractive {
		if err := tui.RunScoreboard(store, gameID); err != nil {
			fatal("%v", err)
		}
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fatal("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'padtris play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Lines", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %s\n", i+1, entry.Score, entry.Lines, dateStr)
	}

	stats, err := store.Stats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Rounds: %d  Average: %.1f  Lines: %d\n",
			stats.HighScore, stats.Rounds, stats.AvgScore, stats.TotalLines)
	}
}
