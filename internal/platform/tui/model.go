package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Game is what the frame loop drives.
type Game interface {
	ID() string
	HandleEvent(e core.Event)
	Tick() core.GameState
	State() core.GameState
	Render(dst *core.Screen)
}

// Model is the Bubble Tea model for one play session. Input arrives between
// frames and is queued; each TickMsg drains the queue into the game, steps
// the simulation exactly once and schedules the next frame.
type Model struct {
	game    Game
	screen  *core.Screen
	config  core.RuntimeConfig
	events  *core.EventQueue
	keys    KeyMap
	painter *painter
	logger  *log.Logger

	termW, termH int
	tooSmall     bool
	quitting     bool
	frames       uint64
}

// Option customises a Model.
type Option func(*Model)

// WithLogger sets the logger used for session events.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithRenderer sets the lipgloss renderer, e.g. one bound to an SSH session.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(m *Model) {
		m.painter = newPainter(r)
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) {
		m.keys = k
	}
}

// NewModel creates a model driving game at cfg.TickRate frames per second.
func NewModel(game Game, cfg core.RuntimeConfig, opts ...Option) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}

	m := Model{
		game:    game,
		screen:  core.NewScreen(snake.ScreenWidth, snake.ScreenHeight),
		config:  cfg,
		events:  &core.EventQueue{},
		keys:    DefaultKeyMap(),
		painter: newPainter(nil),
		logger:  log.New(io.Discard),
		termW:   cfg.ScreenW,
		termH:   cfg.ScreenH,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.tooSmall = m.termTooSmall()
	return m
}

// termTooSmall reports whether the known terminal size cannot hold the
// screen. An unknown size (zero) is assumed to fit.
func (m Model) termTooSmall() bool {
	if m.termW == 0 && m.termH == 0 {
		return false
	}
	return m.termW < snake.ScreenWidth || m.termH < snake.ScreenHeight
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "game", m.game.ID(), "fps", m.config.TickRate, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.events.Push(m.keys.MapKey(msg))
	case tea.MouseMsg:
		if e := MapMouse(msg); e != nil {
			m.events.Push(e)
		}
	case tea.WindowSizeMsg:
		m.termW, m.termH = msg.Width, msg.Height
		small := m.termTooSmall()
		if small != m.tooSmall {
			m.logger.Debug("terminal resized", "width", msg.Width, "height", msg.Height, "paused", small)
		}
		m.tooSmall = small
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleTick runs one frame: drain input, then step once unless paused.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	before := m.game.State()
	for _, e := range m.events.Drain() {
		m.game.HandleEvent(e)
	}

	state := m.game.State()
	if state.Quit {
		m.quitting = true
		m.logger.Info("session ended", "game", m.game.ID(), "high_score", state.HighScore, "frames", m.frames)
		return m, tea.Quit
	}
	if before.GameOver && !state.GameOver {
		m.logger.Info("round restarted", "game", m.game.ID(), "high_score", state.HighScore)
	}

	if !m.tooSmall {
		m.game.Tick()
		m.frames++
	}
	return m, tickCmd(m.config.TickRate)
}

// View renders the game, or a notice when the terminal is too small.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.tooSmall {
		notice := fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d",
			snake.ScreenWidth, snake.ScreenHeight, m.termW, m.termH)
		return lipgloss.Place(m.termW, m.termH, lipgloss.Center, lipgloss.Center, notice)
	}

	m.game.Render(m.screen)
	return m.painter.RenderScreen(m.screen)
}

// Frames returns the number of simulation steps taken.
func (m Model) Frames() uint64 {
	return m.frames
}

// Paused reports whether the simulation is held for a too-small terminal.
func (m Model) Paused() bool {
	return m.tooSmall
}

// IsQuitting returns true once the game asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// ProgramOptions are the Bubble Tea options the game needs: the alternate
// screen and pointer motion reporting for button hover.
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
}

// Run plays game in the local terminal until it quits.
func Run(game Game, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, cfg, opts...)
	p := tea.NewProgram(model, ProgramOptions()...)
	_, err := p.Run()
	return err
}
