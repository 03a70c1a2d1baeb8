// Package terminal runs the game inside a text terminal.
package terminal

import (
	"log/slog"

	"classic-snake/game"
	"classic-snake/stats"

	"github.com/gdamore/tcell/v2"
)

// Options configures the terminal front-end.
type Options struct {
	CellWidth int
	// Summary feeds the history line under the board; nil shows zeros.
	Summary func() stats.Summary
	Logger  *slog.Logger
}

// Frontend drives a Game from a ticker and tcell input events.
type Frontend struct {
	screen   tcell.Screen
	game     *game.Game
	clock    *game.TickerClock
	renderer *Renderer
	summary  func() stats.Summary
	logger   *slog.Logger
}

// New wires a Game to an initialized screen. The game must have been built
// with clock as its Clock.
func New(screen tcell.Screen, g *game.Game, clock *game.TickerClock, opts Options) *Frontend {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Summary == nil {
		opts.Summary = func() stats.Summary { return stats.Summary{} }
	}
	return &Frontend{
		screen:   screen,
		game:     g,
		clock:    clock,
		renderer: NewRenderer(screen, opts.CellWidth),
		summary:  opts.Summary,
		logger:   opts.Logger,
	}
}

// Run starts a round and loops until the player quits. The caller owns the
// screen and calls Fini afterwards.
func (f *Frontend) Run() error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go f.pollEvents(events, quit)

	f.screen.HideCursor()
	f.game.Start()
	f.draw()

	for {
		select {
		case <-f.clock.C():
			f.game.Tick()
			f.draw()
		case ev := <-events:
			if !f.HandleEvent(ev) {
				f.logger.Debug("player quit")
				return nil
			}
			f.draw()
		}
	}
}

// HandleEvent applies one input event; false means quit.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		f.screen.Sync()
	case *tcell.EventKey:
		return game.Dispatch(f.game, MapKey(ev))
	}
	return true
}

func (f *Frontend) draw() {
	f.renderer.Draw(f.game.Snapshot(), f.summary())
}

// pollEvents forwards screen events until the screen is finalized or quit
// is closed.
func (f *Frontend) pollEvents(events chan<- tcell.Event, quit <-chan struct{}) {
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}
