package stats

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"classic-snake/game"
	"classic-snake/game/types"
)

func TestOpenMissingFile(t *testing.T) {
	h, err := Open(filepath.Join(t.TempDir(), "nope.csv"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got := len(h.Rounds()); got != 0 {
		t.Errorf("expected empty history, got %d rounds", got)
	}
	if s := h.Summary(); s != (Summary{}) {
		t.Errorf("expected zero summary, got %+v", s)
	}
}

func TestAddWritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.csv")
	h, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	for i, score := range []int{3, 7} {
		r := Round{RoundID: "r" + string(rune('a'+i)), EndedAtMs: 1000, DurationSec: 2.5, Score: score, Length: score + 3, Cause: "wall"}
		if err := h.Add(r); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "round_id,") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if strings.Count(string(data), "round_id") != 1 {
		t.Errorf("header written more than once:\n%s", data)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	rounds := reopened.Rounds()
	if len(rounds) != 2 || rounds[0].Score != 3 || rounds[1].Score != 7 {
		t.Errorf("unexpected rounds after reopen: %+v", rounds)
	}
	if rounds[1].Cause != "wall" || rounds[1].Length != 10 {
		t.Errorf("fields not preserved: %+v", rounds[1])
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		avg    float64
		median float64
		max    int
	}{
		{"single", []int{4}, 4, 4, 4},
		{"odd", []int{1, 9, 5}, 5, 5, 9},
		{"even", []int{2, 8, 4, 6}, 5, 5, 8},
		{"zeros", []int{0, 0}, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := Open("")
			for _, s := range tt.scores {
				h.Add(Round{Score: s, DurationSec: 10})
			}
			s := h.Summary()
			if s.GamesPlayed != len(tt.scores) {
				t.Errorf("games = %d, want %d", s.GamesPlayed, len(tt.scores))
			}
			if math.Abs(s.AverageScore-tt.avg) > 1e-9 {
				t.Errorf("avg = %v, want %v", s.AverageScore, tt.avg)
			}
			if math.Abs(s.MedianScore-tt.median) > 1e-9 {
				t.Errorf("median = %v, want %v", s.MedianScore, tt.median)
			}
			if s.MaxScore != tt.max {
				t.Errorf("max = %d, want %d", s.MaxScore, tt.max)
			}
			if s.MinScore > s.MaxScore {
				t.Errorf("min %d above max %d", s.MinScore, s.MaxScore)
			}
			if s.AverageDuration != 10 || s.MaxDuration != 10 {
				t.Errorf("avg duration = %v, want 10", s.AverageDuration)
			}
		})
	}
}

func TestRecent(t *testing.T) {
	h, _ := Open("")
	for i := 1; i <= 5; i++ {
		h.Add(Round{Score: i})
	}

	recent := h.Recent(2)
	if len(recent) != 2 || recent[0].Score != 4 || recent[1].Score != 5 {
		t.Errorf("Recent(2) = %+v", recent)
	}
	if got := len(h.Recent(10)); got != 5 {
		t.Errorf("Recent(10) returned %d rounds", got)
	}
	if got := h.Recent(0); got != nil {
		t.Errorf("Recent(0) = %+v, want nil", got)
	}
}

func TestWriteCSV(t *testing.T) {
	h, _ := Open("")
	h.Add(Round{RoundID: "x", Score: 2, Cause: "self"})

	var buf bytes.Buffer
	if err := h.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "round_id") || !strings.Contains(out, "x,") || !strings.Contains(out, "self") {
		t.Errorf("unexpected csv:\n%s", out)
	}
}

func TestRecorderListensForGameOver(t *testing.T) {
	h, _ := Open("")
	ended := time.UnixMilli(1_700_000_000_000)
	rec := &Recorder{History: h, Now: func() time.Time { return ended }}

	rec.OnStateChanged(game.Event{Kind: game.EventAteApple, Score: 1})
	if got := len(h.Rounds()); got != 0 {
		t.Fatalf("non game-over event recorded %d rounds", got)
	}

	rec.OnStateChanged(game.Event{
		Kind:    game.EventGameOver,
		RoundID: "abc",
		Score:   6,
		Record:  9,
		Length:  9,
		Cause:   types.SelfCollision,
		Elapsed: 1500 * time.Millisecond,
	})

	rounds := h.Rounds()
	if len(rounds) != 1 {
		t.Fatalf("expected 1 round, got %d", len(rounds))
	}
	want := Round{RoundID: "abc", EndedAtMs: ended.UnixMilli(), DurationSec: 1.5, Score: 6, Record: 9, Length: 9, Cause: "self"}
	if rounds[0] != want {
		t.Errorf("got %+v, want %+v", rounds[0], want)
	}
	if !rounds[0].EndedAt().Equal(ended) {
		t.Errorf("EndedAt = %v, want %v", rounds[0].EndedAt(), ended)
	}
}
