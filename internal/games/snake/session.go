package snake

import (
	"errors"
	"math/rand"
)

// ScorePerFood is the score awarded for each food eaten.
const ScorePerFood = 10

// State is the round state of a session.
type State int

const (
	StateActive State = iota
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EndCause explains how a round ended.
type EndCause string

const (
	EndWall      EndCause = "wall"
	EndSelf      EndCause = "self"
	EndBoardFull EndCause = "board_full"
)

// RoundResult is reported once for every round that ends.
type RoundResult struct {
	Score     int
	HighScore int
	Ticks     uint64 // Ticks played in the round
	Length    int
	Cause     EndCause
}

// Session owns the snake, the food and the scores. It advances one step per
// Tick and keeps the high score across restarts.
type Session struct {
	rng        *rand.Rand
	snake      *Snake
	food       Food
	score      int
	highScore  int
	state      State
	quit       bool
	tick       uint64 // Ticks since process start
	roundTicks uint64
	onRoundEnd func(RoundResult)
}

// NewSession starts an active round using rng for food placement.
func NewSession(rng *rand.Rand) *Session {
	s := &Session{rng: rng}
	s.reset()
	return s
}

// OnRoundEnd registers fn to be called when a round transitions to game over.
func (s *Session) OnRoundEnd(fn func(RoundResult)) {
	s.onRoundEnd = fn
}

// reset starts a fresh round, keeping the high score.
func (s *Session) reset() {
	s.snake = NewSnake()
	s.score = 0
	s.roundTicks = 0
	s.state = StateActive
	// A single segment never fills the board
	s.food, _ = NewFood(s.rng, s.snake.body)
}

// Restart begins a new round from any state. The high score is retained.
func (s *Session) Restart() {
	s.reset()
}

// Quit marks the session as finished. The frame loop ends the program.
func (s *Session) Quit() {
	s.quit = true
}

// ChangeDirection steers the snake. Ignored once the round is over.
func (s *Session) ChangeDirection(d Direction) {
	if s.state != StateActive {
		return
	}
	s.snake.ChangeDirection(d)
}

// Tick advances the simulation by one step and returns the resulting state.
// A finished round does not move until Restart.
func (s *Session) Tick() State {
	s.tick++
	if s.state != StateActive {
		return s.state
	}
	s.roundTicks++

	switch s.snake.Step() {
	case CollisionWall:
		s.endRound(EndWall)
		return s.state
	case CollisionSelf:
		s.endRound(EndSelf)
		return s.state
	}

	if s.snake.Head() == s.food.Position() {
		s.snake.Grow()
		s.score += ScorePerFood
		if err := s.food.Regenerate(s.rng, s.snake.body); errors.Is(err, ErrBoardFull) {
			s.endRound(EndBoardFull)
		}
	}
	return s.state
}

func (s *Session) endRound(cause EndCause) {
	s.state = StateGameOver
	s.highScore = max(s.score, s.highScore)
	if s.onRoundEnd != nil {
		s.onRoundEnd(RoundResult{
			Score:     s.score,
			HighScore: s.highScore,
			Ticks:     s.roundTicks,
			Length:    s.snake.Len(),
			Cause:     cause,
		})
	}
}

// Snake returns the current snake. Callers must not mutate it.
func (s *Session) Snake() *Snake {
	return s.snake
}

// Food returns the current food.
func (s *Session) Food() Food {
	return s.food
}

// Score returns the score of the current round.
func (s *Session) Score() int {
	return s.score
}

// HighScore returns the best score reached since the session was created.
func (s *Session) HighScore() int {
	return s.highScore
}

// State returns the round state.
func (s *Session) State() State {
	return s.state
}

// Active reports whether the round is in progress.
func (s *Session) Active() bool {
	return s.state == StateActive
}

// Quitting reports whether Quit was called.
func (s *Session) Quitting() bool {
	return s.quit
}
