// Package config provides configuration loading for the game.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"classic-snake/game/types"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every tunable of the game.
type Config struct {
	Grid         GridConfig     `yaml:"grid"`
	Snake        SnakeConfig    `yaml:"snake"`
	TickInterval time.Duration  `yaml:"tick_interval"`
	Window       WindowConfig   `yaml:"window"`
	Terminal     TerminalConfig `yaml:"terminal"`
	Files        FilesConfig    `yaml:"files"`
	Audio        AudioConfig    `yaml:"audio"`
	Headless     HeadlessConfig `yaml:"headless"`
	Log          LogConfig      `yaml:"log"`
}

type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeConfig is the starting position of every round.
type SnakeConfig struct {
	Body      [][2]int `yaml:"body"` // tail first, head last
	Direction string   `yaml:"direction"`
}

type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	CellSize  int    `yaml:"cell_size"`
	TargetFPS int    `yaml:"target_fps"`
}

type TerminalConfig struct {
	CellWidth int `yaml:"cell_width"` // screen columns per board cell
}

type FilesConfig struct {
	Record  string `yaml:"record"`
	History string `yaml:"history"`
}

type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"`
}

type HeadlessConfig struct {
	Rounds   int `yaml:"rounds"`
	MaxSteps int `yaml:"max_steps"` // per round
}

type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
	File  string `yaml:"file"` // empty = stderr
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into the same struct so only fields present in the file change.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the board and the starting snake make sense together.
func (c *Config) Validate() error {
	var errs []error
	if c.Grid.Width < 2 || c.Grid.Height < 2 {
		errs = append(errs, fmt.Errorf("grid must be at least 2x2, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("tick_interval must be positive, got %v", c.TickInterval))
	}
	dir, err := types.ParseDirection(c.Snake.Direction)
	if err != nil {
		errs = append(errs, fmt.Errorf("snake.direction: %w", err))
	}
	if err := c.validateBody(dir); err != nil {
		errs = append(errs, err)
	}
	if c.Window.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("window.cell_size must be positive, got %d", c.Window.CellSize))
	}
	if c.Terminal.CellWidth <= 0 {
		errs = append(errs, fmt.Errorf("terminal.cell_width must be positive, got %d", c.Terminal.CellWidth))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within [0,1], got %v", c.Audio.Volume))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c *Config) validateBody(dir types.Direction) error {
	body := c.Body()
	if len(body) == 0 {
		return errors.New("snake.body must have at least one segment")
	}
	grid := c.GridSize()
	seen := make(map[types.Point]bool, len(body))
	for i, p := range body {
		if !grid.Contains(p) {
			return fmt.Errorf("snake.body[%d] %v is off the board", i, p)
		}
		if seen[p] {
			return fmt.Errorf("snake.body[%d] %v repeats a segment", i, p)
		}
		seen[p] = true
		if i > 0 {
			if _, ok := types.DirectionOf(p.Sub(body[i-1])); !ok {
				return fmt.Errorf("snake.body[%d] %v is not next to %v", i, p, body[i-1])
			}
		}
	}
	if len(body) > 1 {
		travel, _ := types.DirectionOf(body[len(body)-1].Sub(body[len(body)-2]))
		if dir == travel.Opposite() {
			return fmt.Errorf("snake.direction %v points back into the body", dir)
		}
	}
	if len(body) >= grid.Cells() {
		return errors.New("snake.body leaves no room for an apple")
	}
	return nil
}

// GridSize returns the board as a types.Grid.
func (c *Config) GridSize() types.Grid {
	return types.Grid{Width: c.Grid.Width, Height: c.Grid.Height}
}

// Body returns the starting snake, tail first.
func (c *Config) Body() []types.Point {
	body := make([]types.Point, len(c.Snake.Body))
	for i, xy := range c.Snake.Body {
		body[i] = types.Point{X: xy[0], Y: xy[1]}
	}
	return body
}

// StartDirection returns the parsed starting heading. Load has already
// validated it.
func (c *Config) StartDirection() types.Direction {
	d, err := types.ParseDirection(c.Snake.Direction)
	if err != nil {
		return types.Right
	}
	return d
}

// SlogLevel maps the configured level name onto slog.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}

// WriteYAML saves the effective configuration, e.g. next to a headless run's output.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
