package ui

import (
	"fmt"
	"time"

	"classic-snake/game"
	"classic-snake/game/types"
	"classic-snake/stats"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorBackground = rl.Color{R: 144, G: 238, B: 144, A: 255} // light green
	colorGridLine   = rl.Color{R: 130, G: 220, B: 130, A: 255}
	colorBody       = rl.Color{R: 0, G: 100, B: 0, A: 255}
	colorHead       = rl.Color{R: 0, G: 80, B: 0, A: 255}
	colorApple      = rl.Red
	colorPanel      = rl.Color{R: 120, G: 200, B: 120, A: 255}
	colorScore      = rl.Color{R: 32, G: 178, B: 170, A: 255}  // light sea green
	colorRecord     = rl.Color{R: 219, G: 112, B: 147, A: 255} // pale violet red
	colorHelp       = rl.Color{R: 60, G: 179, B: 113, A: 255}  // medium sea green
	colorOverlay    = rl.Color{R: 0, G: 0, B: 0, A: 150}
)

// Renderer draws snapshots into the raylib window.
type Renderer struct {
	layout     Layout
	cellSize   int32
	fontSize   int32
	lineHeight int32
}

func NewRenderer(cellSize int32) *Renderer {
	return &Renderer{cellSize: cellSize}
}

func (r *Renderer) UpdateDimensions(grid types.Grid) {
	r.layout = NewLayout(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()), r.cellSize, grid)
	r.fontSize = max(r.layout.CellSize*2/3, 14)
	r.lineHeight = r.fontSize + 6
}

// Draw renders one frame. It reports true when the game-over dialog's OK
// button was clicked.
func (r *Renderer) Draw(s game.Snapshot, summary stats.Summary) bool {
	r.UpdateDimensions(s.Grid)
	l := r.layout

	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(colorBackground)

	for x := 0; x < s.Grid.Width; x++ {
		for y := 0; y < s.Grid.Height; y++ {
			rl.DrawRectangleLinesEx(l.Cell(types.Point{X: x, Y: y}), 1, colorGridLine)
		}
	}

	r.drawDisc(s.Apple, colorApple)
	for i, p := range s.Body {
		color := colorBody
		if i == len(s.Body)-1 {
			color = colorHead
		}
		r.drawDisc(p, color)
	}
	if len(s.Body) > 0 {
		r.drawHeadIndicator(s.Head(), s.Direction)
	}

	r.drawPanel(s, summary)

	switch {
	case s.Over:
		return r.drawGameOver(s)
	case s.Paused:
		rl.DrawRectangle(l.OffsetX, l.OffsetY, l.BoardWidth, l.BoardHeight, colorOverlay)
		r.drawCentered("PAUSE", l.OffsetY+l.BoardHeight/2-r.fontSize*2, r.fontSize*4, rl.White)
	}
	return false
}

func (r *Renderer) drawDisc(p types.Point, color rl.Color) {
	cell := r.layout.Cell(p)
	center := rl.Vector2{X: cell.X + cell.Width/2, Y: cell.Y + cell.Height/2}
	rl.DrawCircleV(center, cell.Width/2, color)
}

// drawHeadIndicator draws a small triangle pointing where the snake heads.
func (r *Renderer) drawHeadIndicator(head types.Point, dir types.Direction) {
	cell := r.layout.Cell(head)
	x, y, size := cell.X, cell.Y, cell.Width
	half := size / 2

	var a, b, c rl.Vector2
	switch dir {
	case types.Right:
		a = rl.Vector2{X: x + size, Y: y + half}
		b = rl.Vector2{X: x + half, Y: y}
		c = rl.Vector2{X: x + half, Y: y + size}
	case types.Left:
		a = rl.Vector2{X: x, Y: y + half}
		b = rl.Vector2{X: x + half, Y: y + size}
		c = rl.Vector2{X: x + half, Y: y}
	case types.Down:
		a = rl.Vector2{X: x + half, Y: y + size}
		b = rl.Vector2{X: x + size, Y: y + half}
		c = rl.Vector2{X: x, Y: y + half}
	default:
		a = rl.Vector2{X: x + half, Y: y}
		b = rl.Vector2{X: x, Y: y + half}
		c = rl.Vector2{X: x + size, Y: y + half}
	}
	// raylib wants counter-clockwise vertices
	rl.DrawTriangle(a, b, c, rl.Yellow)
}

func (r *Renderer) drawPanel(s game.Snapshot, summary stats.Summary) {
	l := r.layout
	rl.DrawRectangle(0, l.PanelY, l.ScreenWidth, l.ScreenHeight-l.PanelY, colorPanel)

	x := l.OffsetX + 10
	col := x + l.BoardWidth/2
	y := l.PanelY + 8
	rl.DrawText(fmt.Sprintf("Score: %d", s.Score), x, y, r.fontSize, colorScore)
	rl.DrawText(fmt.Sprintf("Record: %d", s.Record), col, y, r.fontSize, colorRecord)

	y += r.lineHeight
	small := r.fontSize * 3 / 4
	rl.DrawText("Esc - pause   R - restart   Arrows - direction", x, y, small, colorHelp)

	y += r.lineHeight
	elapsed := s.Elapsed.Round(time.Second)
	rl.DrawText(fmt.Sprintf("Time: %s", elapsed), x, y, small, colorHelp)
	rl.DrawText(fmt.Sprintf("Games: %d  Avg: %.1f  Best: %d",
		summary.GamesPlayed, summary.AverageScore, summary.MaxScore), col, y, small, colorHelp)
}

func (r *Renderer) drawGameOver(s game.Snapshot) bool {
	l := r.layout
	rl.DrawRectangle(l.OffsetX, l.OffsetY, l.BoardWidth, l.BoardHeight, colorOverlay)

	d := l.Dialog()
	gui.Panel(d, "GAME OVER")
	top := int32(d.Y) + r.lineHeight + 8
	r.drawCentered(fmt.Sprintf("Score: %d", s.Score), top, r.fontSize, rl.Black)
	r.drawCentered(fmt.Sprintf("Record: %d", s.Record), top+r.lineHeight, r.fontSize, rl.Black)

	return gui.Button(l.OKButton(), "OK")
}

func (r *Renderer) drawCentered(text string, y, fontSize int32, color rl.Color) {
	l := r.layout
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, l.OffsetX+(l.BoardWidth-w)/2, y, fontSize, color)
}
