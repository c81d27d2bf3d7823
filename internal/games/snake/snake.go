package snake

import "slices"

// Collision describes why a step failed. CollisionNone means the step
// succeeded.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionSelf
)

func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	default:
		return "unknown"
	}
}

// Snake is the player's body on the grid.
type Snake struct {
	body      []Cell // Head at index 0
	direction Direction
	growing   bool // If true, don't remove tail on next step
}

// NewSnake returns a single-segment snake at the grid center, facing right.
func NewSnake() *Snake {
	return &Snake{
		body:      []Cell{{Col: GridCount / 2, Row: GridCount / 2}},
		direction: DirRight,
	}
}

// Body returns a copy of the body cells, head first.
func (s *Snake) Body() []Cell {
	return slices.Clone(s.body)
}

// Head returns the head cell.
func (s *Snake) Head() Cell {
	return s.body[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the current direction of travel.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Growing reports whether the next step keeps the tail.
func (s *Snake) Growing() bool {
	return s.growing
}

// Occupies reports whether any segment is on c.
func (s *Snake) Occupies(c Cell) bool {
	return slices.Contains(s.body, c)
}

// ChangeDirection turns the snake unless d would reverse it onto itself.
func (s *Snake) ChangeDirection(d Direction) {
	if d == s.direction.Opposite() {
		return
	}
	s.direction = d
}

// Grow makes the next step extend the body instead of moving the tail.
func (s *Snake) Grow() {
	s.growing = true
}

// Step moves the head one cell. The self-collision check runs against the
// whole body before the tail moves, so the cell the tail is about to leave
// still counts as occupied. On collision the body is left unchanged.
func (s *Snake) Step() Collision {
	newHead := s.Head().Add(s.direction)

	if !newHead.InBounds() {
		return CollisionWall
	}
	if s.Occupies(newHead) {
		return CollisionSelf
	}

	s.body = slices.Insert(s.body, 0, newHead)
	if s.growing {
		s.growing = false
	} else {
		s.body = s.body[:len(s.body)-1]
	}
	return CollisionNone
}
