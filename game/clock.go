package game

import (
	"time"
)

// Clock is the tick source a Game starts and stops. Stopping a clock halts
// logical time; nothing is replayed on restart.
type Clock interface {
	Start()
	Stop()
}

// FrameClock is polled from a render loop: Due reports true once per elapsed
// interval while the clock is running.
type FrameClock struct {
	Interval time.Duration

	running    bool
	lastUpdate time.Time
	now        func() time.Time
}

func NewFrameClock(interval time.Duration) *FrameClock {
	return &FrameClock{Interval: interval, now: time.Now}
}

func (c *FrameClock) Start() {
	c.running = true
	c.lastUpdate = c.now()
}

func (c *FrameClock) Stop() {
	c.running = false
}

func (c *FrameClock) Running() bool {
	return c.running
}

// Due reports whether a tick should happen at now and, if so, starts the next
// interval from now.
func (c *FrameClock) Due(now time.Time) bool {
	if !c.running {
		return false
	}
	if now.Sub(c.lastUpdate) < c.Interval {
		return false
	}
	c.lastUpdate = now
	return true
}

// TickerClock wraps a time.Ticker for select loops.
type TickerClock struct {
	Interval time.Duration

	ticker *time.Ticker
}

// NewTickerClock returns a stopped clock.
func NewTickerClock(interval time.Duration) *TickerClock {
	t := time.NewTicker(interval)
	t.Stop()
	return &TickerClock{Interval: interval, ticker: t}
}

func (c *TickerClock) Start() {
	c.ticker.Reset(c.Interval)
}

func (c *TickerClock) Stop() {
	c.ticker.Stop()
}

// C delivers ticks while the clock runs.
func (c *TickerClock) C() <-chan time.Time {
	return c.ticker.C
}

// ManualClock only records whether it runs. Headless loops and tests tick the
// Game directly.
type ManualClock struct {
	running bool
	starts  int
	stops   int
}

func (c *ManualClock) Start() {
	c.running = true
	c.starts++
}

func (c *ManualClock) Stop() {
	c.running = false
	c.stops++
}

func (c *ManualClock) Running() bool { return c.running }
func (c *ManualClock) Starts() int   { return c.starts }
func (c *ManualClock) Stops() int    { return c.stops }
