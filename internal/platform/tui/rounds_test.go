package tui

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestRoundRecorderSavesScoredRounds(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	var buf bytes.Buffer
	record := RoundRecorder("snake", store, log.New(&buf))

	record(snake.RoundResult{Score: 0, Length: 1, Ticks: 15, Cause: snake.EndWall})
	record(snake.RoundResult{Score: 30, HighScore: 30, Length: 4, Ticks: 80, Cause: snake.EndSelf})

	entries, err := store.TopScores("snake", 10)
	if err != nil {
		t.Fatalf("TopScores() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("recorded %d rounds, want 1 (zero scores skipped)", len(entries))
	}
	e := entries[0]
	if e.Score != 30 || e.Length != 4 || e.Ticks != 80 || e.Cause != "self" {
		t.Errorf("entry = %+v", e)
	}

	if got := strings.Count(buf.String(), "round ended"); got != 2 {
		t.Errorf("logged %d rounds, want 2:\n%s", got, buf.String())
	}
}

func TestRoundRecorderWithoutStore(t *testing.T) {
	var buf bytes.Buffer
	record := RoundRecorder("snake", nil, log.New(&buf))
	record(snake.RoundResult{Score: 10, Cause: snake.EndWall})

	if !strings.Contains(buf.String(), "cause=wall") {
		t.Errorf("log = %q", buf.String())
	}
}

func TestNewSnakeWiresHelp(t *testing.T) {
	g := NewSnake(1, snake.DefaultTheme(), DefaultKeyMap(), nil, discardLogger())
	m := NewModel(g, core.DefaultConfig())
	if !strings.Contains(m.View(), "ctrl+c quit") {
		t.Error("sidebar should list the key bindings")
	}
}
