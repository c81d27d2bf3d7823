package snake

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Sidebar text positions in screen cells.
const (
	sidebarX   = PlayWidth
	textX      = GameSize/pxPerCol + 2
	scoreRow   = 50 / pxPerRow
	bestRow    = 100 / pxPerRow
	helpTopRow = 19
)

const gameOverText = "Game Over!"

// Render draws the current game state to the screen. It only reads state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderBoard(dst)
	g.renderSnake(dst)
	g.renderFood(dst)
	g.renderSidebar(dst)

	if g.session.State() == StateGameOver {
		g.renderBanner(dst)
	}
}

// cellRect returns the screen rectangle of a grid cell.
func cellRect(c Cell) core.Rect {
	return core.NewRect(c.Col*ColsPerCell, c.Row*RowsPerCell, ColsPerCell, RowsPerCell)
}

// renderBoard draws the checkered play area.
func (g *Game) renderBoard(dst *core.Screen) {
	for row := range GridCount {
		for col := range GridCount {
			bg := g.theme.Board
			if (row+col)%2 == 0 {
				bg = g.theme.Checker
			}
			dst.FillRect(cellRect(Cell{Col: col, Row: row}), core.Cell{Rune: ' ', Style: core.Style{Bg: bg}})
		}
	}
}

// renderSnake draws segments from head to tail, darkening toward the tail.
func (g *Game) renderSnake(dst *core.Screen) {
	body := g.session.Snake().body
	for i, seg := range body {
		color := segmentColor(g.theme.Snake, i, len(body))
		r := cellRect(seg)
		for x := r.X; x < r.Right(); x++ {
			cur := dst.GetCell(x, r.Y)
			dst.SetCell(x, r.Y, core.Cell{Rune: '█', Style: core.Style{Fg: color, Bg: cur.Style.Bg}})
		}
	}
}

// segmentColor scales base by 1 - (i/n)*0.5, so the head is brightest.
func segmentColor(base core.Color, i, n int) core.Color {
	c, err := colorful.Hex(string(base))
	if err != nil || n == 0 {
		return base
	}
	f := 1 - (float64(i)/float64(n))*0.5
	return core.Color(colorful.Color{R: c.R * f, G: c.G * f, B: c.B * f}.Hex())
}

// renderFood draws the food marker on its glow.
func (g *Game) renderFood(dst *core.Screen) {
	r := cellRect(g.session.Food().Position())
	glow := core.Style{Fg: g.theme.Food, Bg: g.theme.FoodGlow}
	dst.FillRect(r, core.Cell{Rune: ' ', Style: glow})
	dst.SetCell(r.X, r.Y, core.Cell{Rune: '●', Style: glow})
}

// renderSidebar draws scores, buttons and key help.
func (g *Game) renderSidebar(dst *core.Screen) {
	panel := core.NewRect(sidebarX, 0, SidebarCols, ScreenHeight)
	dst.FillRect(panel, core.Cell{Rune: ' ', Style: core.Style{Bg: g.theme.Background}})

	text := core.Style{Fg: g.theme.Text, Bg: g.theme.Background}
	dst.DrawText(textX, scoreRow, fmt.Sprintf("Score: %d", g.session.Score()), text)
	dst.DrawText(textX, bestRow, fmt.Sprintf("Best: %d", g.session.HighScore()), text)

	g.renderButton(dst, g.restart)
	g.renderButton(dst, g.quit)

	muted := core.Style{Fg: g.theme.Muted, Bg: g.theme.Background}
	for i, line := range g.helpLines {
		dst.DrawText(textX, helpTopRow+i, line, muted)
	}
}

// renderButton draws a bordered button with its label centered.
func (g *Game) renderButton(dst *core.Screen, b *Button) {
	st := core.Style{Fg: g.theme.Text, Bg: b.FillColor()}
	dst.FillRect(b.Rect, core.Cell{Rune: ' ', Style: st})
	dst.DrawBox(b.Rect, st)
	_, cy := b.Rect.Center()
	dst.DrawTextCentered(b.Rect, cy, b.Label, st)
}

// bannerRect returns the game over box, centered on the play area.
func bannerRect() core.Rect {
	w := len(gameOverText) + 4
	h := 3
	return core.NewRect((PlayWidth-w)/2, (PlayHeight-h)/2, w, h)
}

// renderBanner draws the game over box.
func (g *Game) renderBanner(dst *core.Screen) {
	box := bannerRect()

	st := core.Style{Fg: g.theme.Banner, Bg: g.theme.Background}
	dst.FillRect(box, core.Cell{Rune: ' ', Style: st})
	dst.DrawBox(box, st)
	dst.DrawTextCentered(box, box.Y+1, gameOverText, st)
}
