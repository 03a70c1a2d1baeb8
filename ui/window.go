// Package ui runs the game in a raylib window.
package ui

import (
	"log/slog"
	"time"

	"classic-snake/config"
	"classic-snake/game"
	"classic-snake/stats"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Options configures the window front-end.
type Options struct {
	Window  config.WindowConfig
	Summary func() stats.Summary
	Logger  *slog.Logger
}

// Run opens the window, starts a round and drives g until the window is
// closed or the player quits. g must have been built with clock.
func Run(g *game.Game, clock *game.FrameClock, opts Options) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Summary == nil {
		opts.Summary = func() stats.Summary { return stats.Summary{} }
	}

	rl.InitWindow(int32(opts.Window.Width), int32(opts.Window.Height), opts.Window.Title)
	defer rl.CloseWindow()
	// Escape pauses instead of closing the window.
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(opts.Window.TargetFPS))

	renderer := NewRenderer(int32(opts.Window.CellSize))
	g.Start()

	for !rl.WindowShouldClose() {
		if !dispatchAll(g, PollCommands()) {
			opts.Logger.Debug("player quit")
			return
		}

		if clock.Due(time.Now()) {
			g.Tick()
		}

		if renderer.Draw(g.Snapshot(), opts.Summary()) {
			game.Dispatch(g, game.CmdAcknowledge)
		}
	}
}

// dispatchAll applies cmds in order and reports false on quit.
func dispatchAll(g *game.Game, cmds []game.Command) bool {
	for _, cmd := range cmds {
		if !game.Dispatch(g, cmd) {
			return false
		}
	}
	return true
}
