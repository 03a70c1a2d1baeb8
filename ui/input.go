package ui

import (
	"classic-snake/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type keyBinding struct {
	key int32
	cmd game.Command
}

var keyBindings = []keyBinding{
	{rl.KeyUp, game.CmdUp},
	{rl.KeyW, game.CmdUp},
	{rl.KeyDown, game.CmdDown},
	{rl.KeyS, game.CmdDown},
	{rl.KeyLeft, game.CmdLeft},
	{rl.KeyA, game.CmdLeft},
	{rl.KeyRight, game.CmdRight},
	{rl.KeyD, game.CmdRight},
	{rl.KeyEscape, game.CmdPause},
	{rl.KeyP, game.CmdPause},
	{rl.KeyR, game.CmdRestart},
	{rl.KeyEnter, game.CmdAcknowledge},
	{rl.KeySpace, game.CmdAcknowledge},
	{rl.KeyQ, game.CmdQuit},
}

// CommandForKey maps a raylib key code onto a game command.
func CommandForKey(key int32) game.Command {
	for _, b := range keyBindings {
		if b.key == key {
			return b.cmd
		}
	}
	return game.CmdNone
}

// PollCommands returns the commands for every key pressed this frame, in
// binding order.
func PollCommands() []game.Command {
	var cmds []game.Command
	for _, b := range keyBindings {
		if rl.IsKeyPressed(b.key) {
			cmds = append(cmds, b.cmd)
		}
	}
	return cmds
}
