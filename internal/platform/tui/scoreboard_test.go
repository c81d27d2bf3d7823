package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestScoreboardEmpty(t *testing.T) {
	m, err := NewScoreboardModel(openStore(t), "snake", "Snake", 80, 30)
	if err != nil {
		t.Fatalf("NewScoreboardModel() error = %v", err)
	}
	if !strings.Contains(m.View(), "No rounds recorded yet") {
		t.Errorf("empty history should say so:\n%s", m.View())
	}
}

func TestScoreboardRows(t *testing.T) {
	store := openStore(t)
	for _, r := range []storage.Round{
		{Score: 20, Length: 3, Ticks: 50, Cause: "wall"},
		{Score: 50, Length: 6, Ticks: 120, Cause: "self"},
	} {
		if _, err := store.SaveRound("snake", r); err != nil {
			t.Fatalf("SaveRound() error = %v", err)
		}
	}

	m, err := NewScoreboardModel(store, "snake", "Snake", 80, 30)
	if err != nil {
		t.Fatalf("NewScoreboardModel() error = %v", err)
	}
	rows := m.Rows()
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "50" || rows[0][2] != "6" || rows[0][3] != "self" {
		t.Errorf("first row = %v", rows[0])
	}
	if rows[1][1] != "20" || rows[1][3] != "wall" {
		t.Errorf("second row = %v", rows[1])
	}
	if !strings.Contains(m.View(), "2 rounds, best 50") {
		t.Errorf("view should summarise the history:\n%s", m.View())
	}
}

func TestScoreboardQuit(t *testing.T) {
	m, err := NewScoreboardModel(openStore(t), "snake", "Snake", 80, 30)
	if err != nil {
		t.Fatalf("NewScoreboardModel() error = %v", err)
	}
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if next.View() != "" {
		t.Error("view should be empty after quit")
	}
}
