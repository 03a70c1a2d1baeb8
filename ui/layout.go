package ui

import (
	"classic-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	panelMin      = 60 // minimum height of the score panel under the board
	borderPadding = 0
)

// Layout places the board and the score panel inside the window.
type Layout struct {
	CellSize     int32
	OffsetX      int32
	OffsetY      int32
	BoardWidth   int32
	BoardHeight  int32
	PanelY       int32
	ScreenWidth  int32
	ScreenHeight int32
}

// NewLayout fits grid into a screen of the given size, shrinking the
// preferred cell size when the board would not fit.
func NewLayout(screenWidth, screenHeight, cellSize int32, grid types.Grid) Layout {
	availW := screenWidth - borderPadding*2
	availH := screenHeight - panelMin - borderPadding*2
	if fit := availW / int32(grid.Width); fit < cellSize {
		cellSize = fit
	}
	if fit := availH / int32(grid.Height); fit < cellSize {
		cellSize = fit
	}
	if cellSize < 1 {
		cellSize = 1
	}

	l := Layout{
		CellSize:     cellSize,
		BoardWidth:   cellSize * int32(grid.Width),
		BoardHeight:  cellSize * int32(grid.Height),
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
	l.OffsetX = (screenWidth - l.BoardWidth) / 2
	l.OffsetY = borderPadding
	l.PanelY = l.OffsetY + l.BoardHeight
	return l
}

// Cell returns the screen rectangle of board cell p.
func (l Layout) Cell(p types.Point) rl.Rectangle {
	return rl.Rectangle{
		X:      float32(l.OffsetX + int32(p.X)*l.CellSize),
		Y:      float32(l.OffsetY + int32(p.Y)*l.CellSize),
		Width:  float32(l.CellSize),
		Height: float32(l.CellSize),
	}
}

// Dialog returns the rectangle of the centered game-over dialog.
func (l Layout) Dialog() rl.Rectangle {
	w := float32(l.BoardWidth) * 0.7
	h := float32(l.CellSize) * 5
	return rl.Rectangle{
		X:      float32(l.OffsetX) + (float32(l.BoardWidth)-w)/2,
		Y:      float32(l.OffsetY) + (float32(l.BoardHeight)-h)/2,
		Width:  w,
		Height: h,
	}
}

// OKButton returns the dialog's acknowledge button.
func (l Layout) OKButton() rl.Rectangle {
	d := l.Dialog()
	return rl.Rectangle{
		X:      d.X + (d.Width-100)/2,
		Y:      d.Y + d.Height - 40,
		Width:  100,
		Height: 30,
	}
}
