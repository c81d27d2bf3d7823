// Package snake implements the Snake arcade game: the grid simulation, the
// round state machine, the sidebar buttons and the renderer that draws all of
// it into a core.Screen.
package snake

import "fmt"

// Window geometry of the game in conceptual pixels.
const (
	WindowWidth  = 800
	GameSize     = 600
	CellSize     = 20
	GridCount    = GameSize / CellSize
	SidebarWidth = WindowWidth - GameSize
)

// Terminal projection: one grid cell is drawn as ColsPerCell columns by
// RowsPerCell rows, which keeps cells roughly square in a typical font.
const (
	ColsPerCell = 2
	RowsPerCell = 1

	pxPerCol = CellSize / ColsPerCell
	pxPerRow = CellSize / RowsPerCell

	PlayWidth    = GridCount * ColsPerCell
	PlayHeight   = GridCount * RowsPerCell
	SidebarCols  = SidebarWidth / pxPerCol
	ScreenWidth  = PlayWidth + SidebarCols
	ScreenHeight = PlayHeight
)

// Cell is one grid square addressed by column and row.
type Cell struct {
	Col, Row int
}

// Add returns the cell one step away in direction d.
func (c Cell) Add(d Direction) Cell {
	return Cell{Col: c.Col + d.DX, Row: c.Row + d.DY}
}

// InBounds reports whether the cell lies on the playfield.
func (c Cell) InBounds() bool {
	return c.Col >= 0 && c.Col < GridCount && c.Row >= 0 && c.Row < GridCount
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Direction is a unit vector on the grid. Rows grow downward.
type Direction struct {
	DX, DY int
}

// The four directions the snake can travel.
var (
	DirUp    = Direction{DX: 0, DY: -1}
	DirDown  = Direction{DX: 0, DY: 1}
	DirLeft  = Direction{DX: -1, DY: 0}
	DirRight = Direction{DX: 1, DY: 0}
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
