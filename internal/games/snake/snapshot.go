package snake

// Snapshot captures the complete game state for determinism testing and logs.
type Snapshot struct {
	Tick      uint64
	Score     int
	HighScore int
	State     State
	SnakeLen  int
	Head      Cell
	Dir       Direction
	Growing   bool
	Food      Cell
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:      s.tick,
		Score:     s.score,
		HighScore: s.highScore,
		State:     s.state,
		SnakeLen:  s.snake.Len(),
		Head:      s.snake.Head(),
		Dir:       s.snake.Direction(),
		Growing:   s.snake.Growing(),
		Food:      s.food.Position(),
	}
}
