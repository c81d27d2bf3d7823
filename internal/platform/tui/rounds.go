package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// RoundRecorder returns a round end handler that logs every round and, when
// store is set, records rounds that scored. Storage failures are logged and
// never interrupt play.
func RoundRecorder(gameID string, store *storage.Store, logger *log.Logger) func(snake.RoundResult) {
	return func(r snake.RoundResult) {
		logger.Info("round ended",
			"game", gameID,
			"score", r.Score,
			"high_score", r.HighScore,
			"length", r.Length,
			"ticks", r.Ticks,
			"cause", r.Cause,
		)

		if store == nil || r.Score == 0 {
			return
		}
		round := storage.Round{
			Score:  r.Score,
			Length: r.Length,
			Ticks:  r.Ticks,
			Cause:  string(r.Cause),
		}
		if _, err := store.SaveRound(gameID, round); err != nil {
			logger.Warn("could not record round", "game", gameID, "error", err)
		}
	}
}

// NewSnake builds a snake game wired to the platform: key help in the
// sidebar and round results sent to RoundRecorder.
func NewSnake(seed int64, theme snake.Theme, keys KeyMap, store *storage.Store, logger *log.Logger) *snake.Game {
	g := snake.New(seed, theme)
	g.SetHelp(HelpLines(keys))
	g.OnRoundEnd(RoundRecorder(g.ID(), store, logger))
	return g
}
