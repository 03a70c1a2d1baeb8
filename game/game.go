package game

import (
	"log/slog"
	"time"

	"classic-snake/game/entity"
	"classic-snake/game/manager"
	"classic-snake/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Board defaults of the classic game.
const (
	DefaultWidth    = 20
	DefaultHeight   = 20
	DefaultInterval = 200 * time.Millisecond
)

// DefaultBody is the starting snake: three cells in a row, head on the right.
func DefaultBody() []types.Point {
	return []types.Point{{X: 4, Y: 4}, {X: 5, Y: 4}, {X: 6, Y: 4}}
}

// Options configures a Game. Zero fields fall back to the classic defaults.
type Options struct {
	Grid        types.Grid
	InitialBody []types.Point
	InitialDir  types.Direction
	Rand        *rand.Rand
	Records     manager.RecordStore
	Listener    Listener
	Clock       Clock
	Logger      *slog.Logger
	Now         func() time.Time
}

// Game owns the snake, the apple and the round state. Tick, SetDirection,
// TogglePause and Start/Restart are the only ways to change it, and all of them
// must be called from the same goroutine.
type Game struct {
	UUID      string
	Grid      types.Grid
	StartTime time.Time
	EndTime   time.Time
	Steps     int

	snake   *entity.Snake
	food    types.Point
	cause   types.CollisionType
	started bool

	collisionMgr *manager.CollisionManager
	foodManager  *manager.FoodManager
	stateManager *manager.StateManager

	initialBody []types.Point
	initialDir  types.Direction
	listener    Listener
	clock       Clock
	logger      *slog.Logger
	now         func() time.Time
}

// New builds a Game from opts. The round does not begin until Start.
func New(opts Options) *Game {
	if opts.Grid.Width <= 0 || opts.Grid.Height <= 0 {
		opts.Grid = types.Grid{Width: DefaultWidth, Height: DefaultHeight}
	}
	if len(opts.InitialBody) == 0 {
		opts.InitialBody = DefaultBody()
		opts.InitialDir = types.Right
	}
	if !opts.InitialDir.Valid() {
		opts.InitialDir = types.Right
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if opts.Clock == nil {
		opts.Clock = &ManualClock{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	collisionMgr := manager.NewCollisionManager(opts.Grid)
	body := make([]types.Point, len(opts.InitialBody))
	copy(body, opts.InitialBody)

	return &Game{
		Grid:         opts.Grid,
		snake:        entity.NewSnake(body, opts.InitialDir),
		collisionMgr: collisionMgr,
		foodManager:  manager.NewFoodManager(opts.Grid, opts.Rand, collisionMgr),
		stateManager: manager.NewStateManager(opts.Records, opts.Logger),
		initialBody:  body,
		initialDir:   opts.InitialDir,
		listener:     opts.Listener,
		clock:        opts.Clock,
		logger:       opts.Logger,
		now:          opts.Now,
	}
}

// Start begins a fresh round: record reloaded, score cleared, new snake and
// apple, clock running.
func (g *Game) Start() {
	g.stateManager.Reset()
	g.UUID = uuid.New().String()
	g.StartTime = g.now()
	g.EndTime = time.Time{}
	g.Steps = 0
	g.cause = types.NoCollision
	g.snake = entity.NewSnake(g.initialBody, g.initialDir)
	g.started = true

	food, ok := g.foodManager.GenerateFood(g.snake)
	if !ok {
		g.gameOver(types.BoardFull)
		g.notify(EventGameOver, false)
		return
	}
	g.food = food
	g.clock.Start()

	g.logger.Debug("round started",
		"round", g.UUID,
		"record", g.stateManager.GetRecord(),
		"apple", g.food,
	)
	g.notify(EventStarted, false)
}

// Restart abandons the current round and starts a new one.
func (g *Game) Restart() {
	g.clock.Stop()
	g.Start()
}

// Tick advances the snake one cell. It does nothing, and reports false, unless
// a round is running and not paused.
func (g *Game) Tick() bool {
	if !g.Running() {
		return false
	}
	g.Steps++

	newHead := g.snake.NextHead()
	kind := EventMoved
	cause := types.NoCollision

	g.snake.Move(newHead)
	if g.collisionMgr.IsFoodCollision(newHead, g.food) {
		g.stateManager.AddPoint()
		kind = EventAteApple
		if food, ok := g.foodManager.GenerateFood(g.snake); ok {
			g.food = food
		} else {
			cause = types.BoardFull
		}
	} else {
		g.snake.RemoveTail()
	}

	if cause == types.NoCollision {
		cause = g.collisionMgr.CheckCollision(g.snake)
	}

	newRecord := false
	if cause != types.NoCollision {
		newRecord = g.gameOver(cause)
		kind = EventGameOver
	}
	g.notify(kind, newRecord)
	return true
}

// SetDirection steers the snake unless d would reverse it onto its own neck.
func (g *Game) SetDirection(d types.Direction) bool {
	return g.snake.SetDirection(d)
}

// TogglePause pauses a running round or resumes a paused one.
func (g *Game) TogglePause() {
	if !g.started || g.stateManager.IsOver() {
		return
	}
	if g.stateManager.IsPaused() {
		g.stateManager.SetPaused(false)
		g.clock.Start()
		g.notify(EventResumed, false)
		return
	}
	g.stateManager.SetPaused(true)
	g.clock.Stop()
	g.notify(EventPaused, false)
}

func (g *Game) gameOver(cause types.CollisionType) bool {
	g.clock.Stop()
	g.cause = cause
	g.EndTime = g.now()
	newRecord := g.stateManager.Finish()

	g.logger.Info("round over",
		"round", g.UUID,
		"score", g.stateManager.GetScore(),
		"record", g.stateManager.GetRecord(),
		"new_record", newRecord,
		"cause", cause.String(),
		"steps", g.Steps,
	)
	return newRecord
}

func (g *Game) notify(kind EventKind, newRecord bool) {
	if g.listener == nil {
		return
	}
	g.listener.OnStateChanged(Event{
		Kind:      kind,
		RoundID:   g.UUID,
		Score:     g.stateManager.GetScore(),
		Record:    g.stateManager.GetRecord(),
		Length:    g.snake.Len(),
		Cause:     g.cause,
		NewRecord: newRecord,
		Elapsed:   g.ElapsedTime(),
	})
}

// ElapsedTime is the length of the current round, frozen once it is over.
func (g *Game) ElapsedTime() time.Duration {
	if g.StartTime.IsZero() {
		return 0
	}
	if !g.EndTime.IsZero() {
		return g.EndTime.Sub(g.StartTime)
	}
	return g.now().Sub(g.StartTime)
}

// Running reports whether Tick would advance the snake.
func (g *Game) Running() bool {
	return g.started && !g.stateManager.IsPaused() && !g.stateManager.IsOver()
}

func (g *Game) Started() bool              { return g.started }
func (g *Game) Paused() bool               { return g.stateManager.IsPaused() }
func (g *Game) Over() bool                 { return g.stateManager.IsOver() }
func (g *Game) Score() int                 { return g.stateManager.GetScore() }
func (g *Game) Record() int                { return g.stateManager.GetRecord() }
func (g *Game) Apple() types.Point         { return g.food }
func (g *Game) Body() []types.Point        { return g.snake.Segments() }
func (g *Game) Direction() types.Direction { return g.snake.Direction }
func (g *Game) Cause() types.CollisionType { return g.cause }

// Snapshot is a read-only copy of the state a front-end needs to draw a frame.
type Snapshot struct {
	RoundID   string
	Grid      types.Grid
	Body      []types.Point
	Apple     types.Point
	Direction types.Direction
	Score     int
	Record    int
	Paused    bool
	Over      bool
	Cause     types.CollisionType
	Elapsed   time.Duration
}

// Head returns the last body segment.
func (s Snapshot) Head() types.Point {
	return s.Body[len(s.Body)-1]
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		RoundID:   g.UUID,
		Grid:      g.Grid,
		Body:      g.snake.Segments(),
		Apple:     g.food,
		Direction: g.snake.Direction,
		Score:     g.stateManager.GetScore(),
		Record:    g.stateManager.GetRecord(),
		Paused:    g.stateManager.IsPaused(),
		Over:      g.stateManager.IsOver(),
		Cause:     g.cause,
		Elapsed:   g.ElapsedTime(),
	}
}
