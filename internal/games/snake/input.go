package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// keyDirections maps the arrow keys to travel directions.
var keyDirections = map[core.Key]Direction{
	core.KeyUp:    DirUp,
	core.KeyDown:  DirDown,
	core.KeyLeft:  DirLeft,
	core.KeyRight: DirRight,
}

// HandleKey applies a key-down event. Arrow keys steer the snake while the
// round is active; every other key is ignored.
func (s *Session) HandleKey(k core.Key) {
	d, ok := keyDirections[k]
	if !ok {
		return
	}
	s.ChangeDirection(d)
}
