package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newFileLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	// Unknown size (not a terminal) is left as zero and assumed to fit.
	var width, height int
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	seed := gameCfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: gameCfg.TickRate,
		Seed:     seed,
	}

	// History is optional; the game plays the same without it.
	var store *storage.Store
	if flagDBPath != "" {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
			logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
			store = nil
		}
	}

	keys := tui.DefaultKeyMap()
	game := tui.NewSnake(seed, snake.ThemeFromConfig(gameCfg.Theme), keys, store, logger)

	runErr := tui.Run(game, cfg, tui.WithLogger(logger), tui.WithKeyMap(keys))

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("run game: %w", runErr)
	}
	return nil
}
