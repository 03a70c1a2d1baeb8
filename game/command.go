package game

import "classic-snake/game/types"

// Command is a front-end independent player input.
type Command int

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdPause
	CmdRestart
	CmdAcknowledge
	CmdQuit
)

// Dispatch applies cmd to g. It reports false when the player asked to quit.
func Dispatch(g *Game, cmd Command) bool {
	switch cmd {
	case CmdUp:
		g.SetDirection(types.Up)
	case CmdDown:
		g.SetDirection(types.Down)
	case CmdLeft:
		g.SetDirection(types.Left)
	case CmdRight:
		g.SetDirection(types.Right)
	case CmdPause:
		g.TogglePause()
	case CmdRestart:
		g.Restart()
	case CmdAcknowledge:
		if g.Over() {
			g.Restart()
		}
	case CmdQuit:
		return false
	}
	return true
}
