package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pingpongcat/sky-over-kharkov/internal/storage"
)

var (
	flagScoresLevel int
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display the top scores, optionally filtered by level.

Examples:
  skyover scores
  skyover scores --level 2
  skyover scores --limit 25
  skyover scores --level 2 --clear`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLevel, "level", 0, "Show one level only (0 = all levels)")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the selected scores instead of showing them")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(flagScoresLevel); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		if flagScoresLevel == 0 {
			fmt.Println("Cleared all scores.")
		} else {
			fmt.Printf("Cleared scores for level %d.\n", flagScoresLevel)
		}
		return
	}

	scores, err := store.TopScores(flagScoresLevel, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	if flagScoresLevel == 0 {
		fmt.Println("High Scores - All Levels")
	} else {
		fmt.Printf("High Scores - Level %d\n", flagScoresLevel)
	}
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'skyover play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-14s  %-5s  %-10s  %s\n", "Rank", "Player", "Lvl", "Score", "Date")
	fmt.Printf("  %-4s  %-14s  %-5s  %-10s  %s\n", "----", "------", "---", "-----", "----")

	// Print scores
	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-14s  %-5d  %-10d  %s\n", i+1, player, entry.Level, entry.Score, dateStr)
	}

	// Show high score
	fmt.Println()
	if flagScoresLevel > 0 {
		highScore, err := store.HighScore(flagScoresLevel)
		if err == nil {
			fmt.Printf("Best: %d\n", highScore)
		}
	}
}
