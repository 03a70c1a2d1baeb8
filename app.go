package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"classic-snake/ai"
	"classic-snake/audio"
	"classic-snake/config"
	"classic-snake/game"
	"classic-snake/game/manager"
	"classic-snake/record"
	"classic-snake/stats"
	"classic-snake/terminal"
	"classic-snake/ui"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"
)

// Options are the command-line settings; zero values defer to the config.
type Options struct {
	ConfigPath  string
	Frontend    string
	Seed        int64
	Rounds      int
	RecordPath  string
	HistoryPath string
	Mute        bool
	LogLevel    string
	LogJSON     bool
	LogFile     string
	WriteConfig string
}

const (
	frontendWindow   = "window"
	frontendTerminal = "terminal"
	frontendHeadless = "headless"

	terminalLogFile = "data/snake.log"
)

// applyOverrides copies the flags that were set onto cfg.
func applyOverrides(cfg *config.Config, opts Options) error {
	switch opts.Frontend {
	case frontendWindow, frontendTerminal, frontendHeadless:
	default:
		return fmt.Errorf("unknown front-end %q", opts.Frontend)
	}

	if opts.Rounds < 0 {
		return fmt.Errorf("rounds must not be negative, got %d", opts.Rounds)
	}
	if opts.Rounds > 0 {
		cfg.Headless.Rounds = opts.Rounds
	}
	if opts.RecordPath != "" {
		cfg.Files.Record = opts.RecordPath
	}
	if opts.HistoryPath != "" {
		cfg.Files.History = opts.HistoryPath
	}
	if opts.Frontend == frontendHeadless {
		// Autopilot rounds stay out of the player's record and history
		// unless a path is given on the command line.
		if opts.RecordPath == "" {
			cfg.Files.Record = ""
		}
		if opts.HistoryPath == "" {
			cfg.Files.History = ""
		}
	}
	if opts.Mute || opts.Frontend == frontendHeadless {
		cfg.Audio.Enabled = false
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LogJSON {
		cfg.Log.JSON = true
	}
	if opts.LogFile != "" {
		cfg.Log.File = opts.LogFile
	}
	if cfg.Log.File == "" && opts.Frontend == frontendTerminal {
		// stderr would draw over the board
		cfg.Log.File = terminalLogFile
	}
	return cfg.Validate()
}

// newLogger builds the process logger from the log config.
func newLogger(w io.Writer, lc config.LogConfig) (*slog.Logger, error) {
	level, err := lc.SlogLevel()
	if err != nil {
		return nil, err
	}
	hopts := &slog.HandlerOptions{Level: level}
	if lc.JSON {
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	}
	return slog.New(slog.NewTextHandler(w, hopts)), nil
}

func openLogOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stderr, func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// newRecordStore keeps the record in memory when path is empty.
func newRecordStore(path string) manager.RecordStore {
	if path == "" {
		return &record.MemoryStore{}
	}
	return record.NewFileStore(path)
}

func run(opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if err := applyOverrides(cfg, opts); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	if opts.WriteConfig != "" {
		return cfg.WriteYAML(opts.WriteConfig)
	}

	out, closeLog, err := openLogOutput(cfg.Log.File)
	if err != nil {
		return err
	}
	defer closeLog()
	logger, err := newLogger(out, cfg.Log)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	rngSeed := opts.Seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	history, err := stats.Open(cfg.Files.History)
	if err != nil {
		logger.Warn("history unreadable, keeping this session in memory", "path", cfg.Files.History, "error", err)
		history, _ = stats.Open("")
	}

	listeners := game.Listeners{&stats.Recorder{History: history, Logger: logger}}
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio, logger)
		if err := sm.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			logger.Warn("audio initialization failed", "error", err)
		} else {
			defer sm.Cleanup()
			listeners = append(listeners, sm)
		}
	}

	build := func(clock game.Clock) *game.Game {
		return game.New(game.Options{
			Grid:        cfg.GridSize(),
			InitialBody: cfg.Body(),
			InitialDir:  cfg.StartDirection(),
			Rand:        rand.New(rand.NewSource(uint64(rngSeed))),
			Records:     newRecordStore(cfg.Files.Record),
			Listener:    listeners,
			Clock:       clock,
			Logger:      logger,
		})
	}

	logger.Info("starting",
		"ui", opts.Frontend,
		"seed", rngSeed,
		"grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height),
		"tick", cfg.TickInterval,
		"record_file", cfg.Files.Record,
	)

	switch opts.Frontend {
	case frontendHeadless:
		err = runHeadless(cfg, build(&game.ManualClock{}), logger)
	case frontendTerminal:
		clock := game.NewTickerClock(cfg.TickInterval)
		defer clock.Stop()
		err = runTerminal(cfg, build(clock), clock, history, logger)
	default:
		clock := game.NewFrameClock(cfg.TickInterval)
		ui.Run(build(clock), clock, ui.Options{
			Window:  cfg.Window,
			Summary: history.Summary,
			Logger:  logger,
		})
	}

	logger.Info("session summary", "history", history.Summary())
	return err
}

func runHeadless(cfg *config.Config, g *game.Game, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := &ai.Runner{
		Game:     g,
		Pilot:    ai.NewAutopilot(),
		MaxSteps: cfg.Headless.MaxSteps,
		Logger:   logger,
	}
	st, err := runner.Run(ctx, cfg.Headless.Rounds)
	logger.Info("headless run finished", "stats", st)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runTerminal(cfg *config.Config, g *game.Game, clock *game.TickerClock, history *stats.History, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal screen: %w", err)
	}
	defer screen.Fini()

	f := terminal.New(screen, g, clock, terminal.Options{
		CellWidth: cfg.Terminal.CellWidth,
		Summary:   history.Summary,
		Logger:    logger,
	})
	return f.Run()
}
