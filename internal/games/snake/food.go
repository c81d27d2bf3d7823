package snake

import (
	"errors"
	"math/rand"
)

// ErrBoardFull is returned when the snake covers every cell and food has
// nowhere to go.
var ErrBoardFull = errors.New("snake: no free cell for food")

// maxFoodSamples bounds random sampling before falling back to picking from
// the free cells directly.
const maxFoodSamples = 4 * GridCount * GridCount

// Food is the single item the snake eats.
type Food struct {
	pos Cell
}

// NewFood places food on a random cell not covered by body.
func NewFood(rng *rand.Rand, body []Cell) (Food, error) {
	var f Food
	err := f.Regenerate(rng, body)
	return f, err
}

// Position returns the food cell.
func (f Food) Position() Cell {
	return f.pos
}

// Regenerate moves the food to a uniformly random cell not covered by body.
// On ErrBoardFull the position is unchanged.
func (f *Food) Regenerate(rng *rand.Rand, body []Cell) error {
	var occupied [GridCount][GridCount]bool
	for _, c := range body {
		if c.InBounds() {
			occupied[c.Col][c.Row] = true
		}
	}

	for range maxFoodSamples {
		c := Cell{Col: rng.Intn(GridCount), Row: rng.Intn(GridCount)}
		if !occupied[c.Col][c.Row] {
			f.pos = c
			return nil
		}
	}

	// Nearly full board: pick from the complement set instead
	free := make([]Cell, 0, max(0, GridCount*GridCount-len(body)))
	for col := range GridCount {
		for row := range GridCount {
			if !occupied[col][row] {
				free = append(free, Cell{Col: col, Row: row})
			}
		}
	}
	if len(free) == 0 {
		return ErrBoardFull
	}
	f.pos = free[rng.Intn(len(free))]
	return nil
}
