package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ayudkin/tui-maze/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [profile]",
	Short: "Show high scores",
	Long: `Display the top recorded runs, either across all players or for
one profile.

Examples:
  maze scores
  maze scores alice
  maze scores --limit 25`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var scores []storage.ScoreEntry
	title := "High Scores - All Players"
	if len(args) == 1 {
		title = fmt.Sprintf("High Scores - %s", args[0])
		scores, err = store.ProfileScores(args[0], flagScoresLimit)
	} else {
		scores, err = store.TopScores(flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'maze play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-10s  %-6s  %s\n", "Rank", "Player", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-12s  %-10s  %-6s  %s\n", "----", "------", "-----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-10d  %-6d  %s\n",
			i+1, entry.Profile, entry.Score, entry.LevelReached, dateStr)
	}

	fmt.Println()
	if highScore, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
