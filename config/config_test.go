package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"classic-snake/game/types"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if cfg.GridSize() != (types.Grid{Width: 20, Height: 20}) {
		t.Errorf("grid = %+v", cfg.GridSize())
	}
	if cfg.TickInterval != 200*time.Millisecond {
		t.Errorf("tick interval = %v, want 200ms", cfg.TickInterval)
	}
	want := []types.Point{{X: 4, Y: 4}, {X: 5, Y: 4}, {X: 6, Y: 4}}
	body := cfg.Body()
	if len(body) != len(want) {
		t.Fatalf("body = %v, want %v", body, want)
	}
	for i := range want {
		if body[i] != want[i] {
			t.Errorf("body[%d] = %v, want %v", i, body[i], want[i])
		}
	}
	if cfg.StartDirection() != types.Right {
		t.Errorf("direction = %v, want right", cfg.StartDirection())
	}
	if cfg.Files.Record != "data/record.txt" {
		t.Errorf("record file = %q", cfg.Files.Record)
	}
	if lvl, _ := cfg.Log.SlogLevel(); lvl != slog.LevelInfo {
		t.Errorf("log level = %v, want info", lvl)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeFile(t, `
tick_interval: 120ms
grid:
  width: 30
audio:
  enabled: false
log:
  level: debug
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TickInterval != 120*time.Millisecond {
		t.Errorf("tick interval = %v", cfg.TickInterval)
	}
	if cfg.Grid.Width != 30 || cfg.Grid.Height != 20 {
		t.Errorf("grid = %+v, want 30x20", cfg.Grid)
	}
	if cfg.Audio.Enabled {
		t.Error("audio still enabled")
	}
	if cfg.Window.CellSize != 30 {
		t.Errorf("untouched window.cell_size = %d, want default 30", cfg.Window.CellSize)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		msg  string
	}{
		{"tiny grid", "grid: {width: 1, height: 1}", "at least 2x2"},
		{"zero tick", "tick_interval: 0s", "tick_interval"},
		{"bad direction", "snake: {direction: north}", "snake.direction"},
		{"reverse start", "snake: {direction: left}", "points back"},
		{"body off board", "snake: {body: [[19, 0], [20, 0]]}", "off the board"},
		{"gap in body", "snake: {body: [[1, 1], [3, 1]]}", "not next to"},
		{"repeated segment", "snake: {body: [[1, 1], [2, 1], [1, 1]]}", "repeats"},
		{"empty body", "snake: {body: []}", "at least one segment"},
		{"loud", "audio: {volume: 2}", "audio.volume"},
		{"bad level", "log: {level: chatty}", "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.yaml))
			if err == nil {
				t.Fatal("Load succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error %q does not mention %q", err, tt.msg)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.TickInterval = 150 * time.Millisecond
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load(written): %v", err)
	}
	if back.TickInterval != 150*time.Millisecond {
		t.Errorf("tick interval = %v after round trip", back.TickInterval)
	}
}
