// snake is the classic snake game for the terminal.
//
// Usage:
//
//	snake                - Play in this terminal
//	snake scores         - Show the recorded round history
//	snake serve          - Start an SSH server for remote play
//
// Global flags:
//
//	--config <path>   - Game config YAML (default: search ~/.snake, ./configs)
//	--fps <rate>      - Override the tick rate (default: 12)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Record rounds in this SQLite database
//	--log-file <path> - Write a structured log to this file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Steer the snake with the arrow keys, eat the food to grow and score,
and avoid the walls and your own tail. Use the mouse on the sidebar
buttons to restart or quit; ctrl+c quits at any time.

The terminal must be at least 80x30.

Examples:
  snake
  snake --seed 42
  snake --db ~/.snake/scores.db
  snake scores --db ~/.snake/scores.db
  snake serve --ssh :2222`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from config, else time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (empty = no history)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Path to log file (empty = no log)")

	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the game config and applies flag overrides.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	return cfg, nil
}

// newFileLogger returns a logger writing to path. An empty path discards
// everything, since the game owns the terminal.
func newFileLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	return logger, func() { f.Close() }, nil
}
