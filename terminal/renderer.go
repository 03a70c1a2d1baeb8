package terminal

import (
	"fmt"

	"classic-snake/game"
	"classic-snake/game/types"
	"classic-snake/stats"

	"github.com/gdamore/tcell/v2"
)

const (
	dBody   = '█'
	dHead   = '▓'
	dApple  = '●'
	dHoriz  = '─'
	dVert   = '│'
	dCorner = '┼'
)

var (
	styleDefault = tcell.StyleDefault
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBody    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleHead    = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleApple   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleBanner  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Renderer draws snapshots onto a tcell screen. Each board cell is CellWidth
// columns wide so the board looks square in most fonts.
type Renderer struct {
	screen    tcell.Screen
	cellWidth int
}

func NewRenderer(screen tcell.Screen, cellWidth int) *Renderer {
	if cellWidth <= 0 {
		cellWidth = 2
	}
	return &Renderer{screen: screen, cellWidth: cellWidth}
}

// Cell returns the top-left screen position of board cell p.
func (r *Renderer) Cell(p types.Point) (int, int) {
	return 1 + p.X*r.cellWidth, 1 + p.Y
}

// Draw renders one frame and shows it.
func (r *Renderer) Draw(s game.Snapshot, summary stats.Summary) {
	r.screen.Clear()
	r.drawBorder(s.Grid)

	r.fillCell(s.Apple, dApple, styleApple)
	for i, p := range s.Body {
		if i == len(s.Body)-1 {
			r.fillCell(p, dHead, styleHead)
		} else {
			r.fillCell(p, dBody, styleBody)
		}
	}

	statusY := s.Grid.Height + 2
	r.drawText(0, statusY, styleStatus, fmt.Sprintf("Score: %d   Record: %d", s.Score, s.Record))
	r.drawText(0, statusY+1, styleStatus, fmt.Sprintf("Games: %d   Avg: %.1f   Best: %d",
		summary.GamesPlayed, summary.AverageScore, summary.MaxScore))

	switch {
	case s.Over:
		r.drawBanner(s.Grid, fmt.Sprintf("Game over! Your score: %d", s.Score), "Enter to play again")
	case s.Paused:
		r.drawBanner(s.Grid, "PAUSED", "Esc or P to resume")
	}

	r.screen.Show()
}

func (r *Renderer) drawBorder(g types.Grid) {
	right := 1 + g.Width*r.cellWidth
	bottom := g.Height + 1
	for x := 1; x < right; x++ {
		r.screen.SetContent(x, 0, dHoriz, nil, styleBorder)
		r.screen.SetContent(x, bottom, dHoriz, nil, styleBorder)
	}
	for y := 1; y < bottom; y++ {
		r.screen.SetContent(0, y, dVert, nil, styleBorder)
		r.screen.SetContent(right, y, dVert, nil, styleBorder)
	}
	for _, c := range [][2]int{{0, 0}, {right, 0}, {0, bottom}, {right, bottom}} {
		r.screen.SetContent(c[0], c[1], dCorner, nil, styleBorder)
	}
}

func (r *Renderer) fillCell(p types.Point, ch rune, style tcell.Style) {
	x, y := r.Cell(p)
	for i := 0; i < r.cellWidth; i++ {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) drawBanner(g types.Grid, lines ...string) {
	top := g.Height/2 - len(lines)/2
	width := g.Width * r.cellWidth
	for i, line := range lines {
		x := 1 + (width-len([]rune(line)))/2
		if x < 1 {
			x = 1
		}
		r.drawText(x, 1+top+i, styleBanner, line)
	}
}

func (r *Renderer) drawText(x, y int, style tcell.Style, text string) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
