// Package stats keeps the history of finished rounds in a CSV file and
// summarises it for the score panel.
package stats

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"classic-snake/game"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultFile is where the history lives when nothing else is configured.
const DefaultFile = "data/history.csv"

// Round is one finished game.
type Round struct {
	RoundID     string  `csv:"round_id"`
	EndedAtMs   int64   `csv:"ended_at_unix_ms"`
	DurationSec float64 `csv:"duration_sec"`
	Score       int     `csv:"score"`
	Record      int     `csv:"record"`
	Length      int     `csv:"length"`
	Cause       string  `csv:"cause"`
}

// EndedAt returns the end of the round as a time.Time.
func (r Round) EndedAt() time.Time {
	return time.UnixMilli(r.EndedAtMs)
}

// History holds every recorded round and appends new ones to its file.
type History struct {
	mu      sync.Mutex
	path    string
	rounds  []Round
	summary *Summary // cached until the next Add
}

// Open loads the history stored at path. A missing or empty file yields an
// empty history; an empty path keeps the history in memory only.
func Open(path string) (*History, error) {
	h := &History{path: path, rounds: make([]Round, 0)}
	if path == "" {
		return h, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return h, nil
		}
		return nil, fmt.Errorf("opening history file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat history file: %w", err)
	}
	if info.Size() == 0 {
		return h, nil
	}

	if err := gocsv.UnmarshalFile(f, &h.rounds); err != nil {
		return nil, fmt.Errorf("reading history file: %w", err)
	}
	return h, nil
}

// Add records a round in memory and appends it to the file.
func (h *History) Add(r Round) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.rounds = append(h.rounds, r)
	h.summary = nil
	if h.path == "" {
		return nil
	}
	return h.appendToFile(r)
}

func (h *History) appendToFile(r Round) error {
	if dir := filepath.Dir(h.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating history directory: %w", err)
		}
	}

	f, err := os.OpenFile(h.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening history file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat history file: %w", err)
	}

	records := []Round{r}
	if info.Size() == 0 {
		// First write includes headers
		err = gocsv.Marshal(records, f)
	} else {
		err = gocsv.MarshalWithoutHeaders(records, f)
	}
	if err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	return nil
}

// Rounds returns a copy of the recorded rounds, oldest first.
func (h *History) Rounds() []Round {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Round, len(h.rounds))
	copy(out, h.rounds)
	return out
}

// Recent returns the last n rounds, oldest first.
func (h *History) Recent(n int) []Round {
	h.mu.Lock()
	defer h.mu.Unlock()

	if n <= 0 {
		return nil
	}
	if n > len(h.rounds) {
		n = len(h.rounds)
	}
	out := make([]Round, n)
	copy(out, h.rounds[len(h.rounds)-n:])
	return out
}

// Summary aggregates the whole history.
type Summary struct {
	GamesPlayed     int
	AverageScore    float64
	MedianScore     float64
	MaxScore        int
	MinScore        int
	AverageDuration float64 // seconds
	MaxDuration     float64
}

// Summary computes averages over every recorded round.
func (h *History) Summary() Summary {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.summary == nil {
		s := summarize(h.rounds)
		h.summary = &s
	}
	return *h.summary
}

func summarize(rounds []Round) Summary {
	if len(rounds) == 0 {
		return Summary{}
	}

	scores := make([]float64, len(rounds))
	durations := make([]float64, len(rounds))
	for i, r := range rounds {
		scores[i] = float64(r.Score)
		durations[i] = r.DurationSec
	}

	sorted := make([]float64, len(scores))
	copy(sorted, scores)
	sort.Float64s(sorted)

	return Summary{
		GamesPlayed:     len(rounds),
		AverageScore:    stat.Mean(scores, nil),
		MedianScore:     median(sorted),
		MaxScore:        int(floats.Max(scores)),
		MinScore:        int(floats.Min(scores)),
		AverageDuration: stat.Mean(durations, nil),
		MaxDuration:     floats.Max(durations),
	}
}

// median averages the two middle values of an even-length slice, which
// stat.Quantile with the empirical estimator does not do.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return stat.Quantile(0.5, stat.Empirical, sorted, nil)
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("games", s.GamesPlayed),
		slog.Float64("avg_score", s.AverageScore),
		slog.Float64("median_score", s.MedianScore),
		slog.Int("max_score", s.MaxScore),
		slog.Int("min_score", s.MinScore),
		slog.Float64("avg_duration_sec", s.AverageDuration),
		slog.Float64("max_duration_sec", s.MaxDuration),
	)
}

// WriteCSV writes the whole history, header included, to w.
func (h *History) WriteCSV(w io.Writer) error {
	rounds := h.Rounds()
	if err := gocsv.Marshal(rounds, w); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	return nil
}

// Recorder turns game-over events into history rows.
type Recorder struct {
	History *History
	Logger  *slog.Logger
	Now     func() time.Time
}

func (r *Recorder) OnStateChanged(ev game.Event) {
	if ev.Kind != game.EventGameOver || r.History == nil {
		return
	}
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	round := Round{
		RoundID:     ev.RoundID,
		EndedAtMs:   now().UnixMilli(),
		DurationSec: ev.Elapsed.Seconds(),
		Score:       ev.Score,
		Record:      ev.Record,
		Length:      ev.Length,
		Cause:       ev.Cause.String(),
	}
	if err := r.History.Add(round); err != nil {
		logger := r.Logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("failed to record round", "round", ev.RoundID, "error", err)
	}
}
