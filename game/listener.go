package game

import (
	"time"

	"classic-snake/game/types"
)

// EventKind says which mutation produced an Event.
type EventKind int

const (
	EventStarted EventKind = iota
	EventMoved
	EventAteApple
	EventPaused
	EventResumed
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventMoved:
		return "moved"
	case EventAteApple:
		return "ate_apple"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event describes the state right after a mutation.
type Event struct {
	Kind      EventKind
	RoundID   string
	Score     int
	Record    int
	Length    int
	Cause     types.CollisionType
	NewRecord bool
	Elapsed   time.Duration
}

// Listener is told about every mutation of a Game, synchronously and exactly once.
type Listener interface {
	OnStateChanged(ev Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(ev Event)

func (f ListenerFunc) OnStateChanged(ev Event) {
	f(ev)
}

// Listeners fans one event out to several listeners in order.
type Listeners []Listener

func (ls Listeners) OnStateChanged(ev Event) {
	for _, l := range ls {
		if l != nil {
			l.OnStateChanged(ev)
		}
	}
}
