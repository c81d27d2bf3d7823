package snake

import "testing"

func TestNewSnake(t *testing.T) {
	s := NewSnake()

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, expected 1", s.Len())
	}
	if s.Head() != (Cell{Col: 15, Row: 15}) {
		t.Errorf("Head() = %v, expected (15,15)", s.Head())
	}
	if s.Direction() != DirRight {
		t.Errorf("Direction() = %v, expected right", s.Direction())
	}
	if s.Growing() {
		t.Error("new snake should not be growing")
	}
}

func TestStepMovesHead(t *testing.T) {
	s := NewSnake()

	if c := s.Step(); c != CollisionNone {
		t.Fatalf("Step() = %v, expected none", c)
	}
	body := s.Body()
	if len(body) != 1 || body[0] != (Cell{Col: 16, Row: 15}) {
		t.Errorf("body = %v, expected [(16,15)]", body)
	}
}

func TestStepGrowth(t *testing.T) {
	s := NewSnake()
	s.Grow()

	if c := s.Step(); c != CollisionNone {
		t.Fatalf("Step() = %v, expected none", c)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2 after growing step", s.Len())
	}
	if s.Growing() {
		t.Error("growth flag should be consumed by the step")
	}

	s.Step()
	if s.Len() != 2 {
		t.Errorf("Len() = %d, expected 2 after a normal step", s.Len())
	}
	want := []Cell{{Col: 17, Row: 15}, {Col: 16, Row: 15}}
	for i, c := range s.Body() {
		if c != want[i] {
			t.Errorf("body[%d] = %v, expected %v", i, c, want[i])
		}
	}
}

func TestWallCollision(t *testing.T) {
	tests := []struct {
		name string
		head Cell
		dir  Direction
	}{
		{"right wall", Cell{Col: 29, Row: 15}, DirRight},
		{"left wall", Cell{Col: 0, Row: 15}, DirLeft},
		{"top wall", Cell{Col: 10, Row: 0}, DirUp},
		{"bottom wall", Cell{Col: 10, Row: 29}, DirDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := &Snake{body: []Cell{tc.head}, direction: tc.dir}
			if c := s.Step(); c != CollisionWall {
				t.Errorf("Step() = %v, expected wall", c)
			}
			if s.Len() != 1 || s.Head() != tc.head {
				t.Errorf("body should be unchanged on collision, got %v", s.Body())
			}
		})
	}
}

func TestSelfCollision(t *testing.T) {
	// Head at (5,5) turning down into its own body at (5,6)
	s := &Snake{
		body: []Cell{
			{Col: 5, Row: 5},
			{Col: 6, Row: 5},
			{Col: 6, Row: 6},
			{Col: 5, Row: 6},
			{Col: 4, Row: 6},
		},
		direction: DirDown,
	}
	before := s.Body()

	if c := s.Step(); c != CollisionSelf {
		t.Fatalf("Step() = %v, expected self", c)
	}
	for i, c := range s.Body() {
		if c != before[i] {
			t.Fatalf("body changed on collision: %v", s.Body())
		}
	}
}

func TestTailCellCountsAsOccupied(t *testing.T) {
	// A 2x2 loop: moving right puts the head on the current tail cell.
	s := &Snake{
		body: []Cell{
			{Col: 5, Row: 5},
			{Col: 5, Row: 6},
			{Col: 6, Row: 6},
			{Col: 6, Row: 5},
		},
		direction: DirRight,
	}

	if c := s.Step(); c != CollisionSelf {
		t.Errorf("Step() onto the tail = %v, expected self", c)
	}
}

func TestChangeDirection(t *testing.T) {
	tests := []struct {
		name     string
		current  Direction
		next     Direction
		expected Direction
	}{
		{"reverse right ignored", DirRight, DirLeft, DirRight},
		{"reverse left ignored", DirLeft, DirRight, DirLeft},
		{"reverse up ignored", DirUp, DirDown, DirUp},
		{"reverse down ignored", DirDown, DirUp, DirDown},
		{"turn up", DirRight, DirUp, DirUp},
		{"turn down", DirRight, DirDown, DirDown},
		{"same direction", DirRight, DirRight, DirRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSnake()
			s.direction = tc.current
			s.ChangeDirection(tc.next)
			if s.Direction() != tc.expected {
				t.Errorf("Direction() = %v, expected %v", s.Direction(), tc.expected)
			}
		})
	}
}

func TestChangeDirectionTakesEffectImmediately(t *testing.T) {
	// Up then Left within one frame: Left is checked against Up, not Right
	s := NewSnake()
	s.ChangeDirection(DirUp)
	s.ChangeDirection(DirLeft)

	if s.Direction() != DirLeft {
		t.Errorf("Direction() = %v, expected left", s.Direction())
	}
}

func TestBodyIsCopy(t *testing.T) {
	s := NewSnake()
	body := s.Body()
	body[0] = Cell{Col: 0, Row: 0}

	if s.Head() != (Cell{Col: 15, Row: 15}) {
		t.Error("mutating Body() result should not affect the snake")
	}
}
