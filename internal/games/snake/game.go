package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game ties a Session to its sidebar buttons and renderer. It is what the
// platform frame loop drives: events in, one tick per frame, a screen out.
type Game struct {
	session   *Session
	restart   *Button
	quit      *Button
	theme     Theme
	helpLines []string
}

// New creates a game seeded with seed, drawn with theme.
func New(seed int64, theme Theme) *Game {
	return &Game{
		session: NewSession(rand.New(rand.NewSource(seed))),
		restart: NewButton(pxRect(restartButtonPx), "Restart", theme.RestartButton),
		quit:    NewButton(pxRect(quitButtonPx), "Quit", theme.QuitButton),
		theme:   theme,
	}
}

// ID returns the game identifier used for score storage.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Session exposes the simulation for inspection.
func (g *Game) Session() *Session {
	return g.session
}

// RestartButton returns the sidebar restart button.
func (g *Game) RestartButton() *Button {
	return g.restart
}

// QuitButton returns the sidebar quit button.
func (g *Game) QuitButton() *Button {
	return g.quit
}

// OnRoundEnd registers fn to run whenever a round ends.
func (g *Game) OnRoundEnd(fn func(RoundResult)) {
	g.session.OnRoundEnd(fn)
}

// SetHelp sets the key help lines shown in the sidebar.
func (g *Game) SetHelp(lines []string) {
	g.helpLines = lines
}

// HandleEvent applies one input event. Events after quit are ignored.
func (g *Game) HandleEvent(e core.Event) {
	if g.session.Quitting() {
		return
	}

	switch e := e.(type) {
	case core.CloseEvent:
		g.session.Quit()
		return
	case core.KeyEvent:
		g.session.HandleKey(e.Key)
	}

	// Both buttons see every event, restart first
	if g.restart.HandleEvent(e) {
		g.session.Restart()
	}
	if g.quit.HandleEvent(e) {
		g.session.Quit()
	}
}

// Tick advances the simulation by one step.
func (g *Game) Tick() core.GameState {
	if !g.session.Quitting() {
		g.session.Tick()
	}
	return g.State()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.session.Score(),
		HighScore: g.session.HighScore(),
		GameOver:  g.session.State() == StateGameOver,
		Quit:      g.session.Quitting(),
	}
}
