package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

const gameID, gameTitle = "snake", "Snake"

var (
	flagLimit  int
	flagBrowse bool
	flagClear  bool
	flagCSV    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded rounds",
	Long: `Display the best recorded rounds from the history database.

Rounds are only recorded when playing with --db, so the same path
must be given here.

Examples:
  snake scores --db ~/.snake/scores.db
  snake scores --db ~/.snake/scores.db --limit 25
  snake scores --db ~/.snake/scores.db --browse
  snake scores --db ~/.snake/scores.db --csv > rounds.csv
  snake scores --db ~/.snake/scores.db --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse the history in an interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded history")
	scoresCmd.Flags().BoolVar(&flagCSV, "csv", false, "Print the rounds as CSV")
}

func runScores(_ *cobra.Command, _ []string) error {
	if flagDBPath == "" {
		return errors.New("scores need a history database: pass --db <path>")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	}

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, gameID, gameTitle, width, height)
	}

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return err
	}

	if flagCSV {
		return storage.ExportCSV(os.Stdout, scores)
	}

	fmt.Printf("High Scores - %s\n", gameTitle)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'snake --db %s' to start a history!\n", flagDBPath)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-10s  %s\n", "Rank", "Score", "Length", "Cause", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-10s  %s\n", "----", "-----", "------", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-6d  %-10s  %s\n", i+1, entry.Score, entry.Length, entry.Cause, dateStr)
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Rounds: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}
