package terminal

import (
	"classic-snake/game"

	"github.com/gdamore/tcell/v2"
)

// MapKey turns a key press into a game command.
func MapKey(ev *tcell.EventKey) game.Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.CmdUp
	case tcell.KeyDown:
		return game.CmdDown
	case tcell.KeyLeft:
		return game.CmdLeft
	case tcell.KeyRight:
		return game.CmdRight
	case tcell.KeyEscape:
		return game.CmdPause
	case tcell.KeyEnter:
		return game.CmdAcknowledge
	case tcell.KeyCtrlC:
		return game.CmdQuit
	case tcell.KeyRune:
		return mapRune(ev.Rune())
	}
	return game.CmdNone
}

func mapRune(r rune) game.Command {
	switch r {
	case 'w', 'W', 'k':
		return game.CmdUp
	case 's', 'S', 'j':
		return game.CmdDown
	case 'a', 'A', 'h':
		return game.CmdLeft
	case 'd', 'D', 'l':
		return game.CmdRight
	case 'p', 'P':
		return game.CmdPause
	case 'r', 'R':
		return game.CmdRestart
	case ' ':
		return game.CmdAcknowledge
	case 'q', 'Q':
		return game.CmdQuit
	}
	return game.CmdNone
}
