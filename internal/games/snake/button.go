package snake

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// hoverBoost is added to each color channel (0-255) of a hovered button.
const hoverBoost = 30

// Sidebar button rectangles in conceptual pixels.
var (
	restartButtonPx = [4]int{GameSize + 50, 200, 120, 50}
	quitButtonPx    = [4]int{GameSize + 50, 280, 120, 50}
)

// Button is a clickable sidebar rectangle.
type Button struct {
	Rect    core.Rect
	Label   string
	Color   core.Color
	hovered bool
}

// NewButton creates a button with the given bounds in screen cells.
func NewButton(rect core.Rect, label string, color core.Color) *Button {
	return &Button{
		Rect:  rect,
		Label: label,
		Color: color,
	}
}

// pxRect projects a pixel rectangle onto screen cells, rounding the height.
func pxRect(px [4]int) core.Rect {
	return core.NewRect(
		px[0]/pxPerCol,
		px[1]/pxPerRow,
		px[2]/pxPerCol,
		(px[3]+pxPerRow/2)/pxPerRow,
	)
}

// Hovered reports whether the pointer was last seen inside the button.
func (b *Button) Hovered() bool {
	return b.hovered
}

// HandleEvent updates hover state from pointer motion and reports whether a
// pointer press activated the button. A press only counts if the pointer was
// already known to be inside.
func (b *Button) HandleEvent(e core.Event) bool {
	switch e := e.(type) {
	case core.PointerMoveEvent:
		b.hovered = b.Rect.Contains(e.X, e.Y)
	case core.PointerDownEvent:
		return b.hovered
	}
	return false
}

// FillColor returns the color the button is drawn with right now.
func (b *Button) FillColor() core.Color {
	if b.hovered {
		return lighten(b.Color, hoverBoost)
	}
	return b.Color
}

// lighten adds amount to every RGB channel, capping at 255.
func lighten(c core.Color, amount int) core.Color {
	base, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	boost := float64(amount) / 255.0
	return core.Color(colorful.Color{
		R: min(base.R+boost, 1),
		G: min(base.G+boost, 1),
		B: min(base.B+boost, 1),
	}.Hex())
}
