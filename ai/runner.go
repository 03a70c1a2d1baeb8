package ai

import (
	"context"
	"log/slog"

	"classic-snake/game"
)

// RunStats summarises a batch of autopilot rounds.
type RunStats struct {
	Rounds     int
	BestScore  int
	TotalScore int
	Capped     int // rounds abandoned at the step cap
}

func (s RunStats) AverageScore() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.TotalScore) / float64(s.Rounds)
}

// LogValue implements slog.LogValuer for structured logging.
func (s RunStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("rounds", s.Rounds),
		slog.Int("best_score", s.BestScore),
		slog.Float64("avg_score", s.AverageScore()),
		slog.Int("capped", s.Capped),
	)
}

// Runner plays rounds with the autopilot as fast as possible. The Game
// should use a game.ManualClock; the runner ticks it directly.
type Runner struct {
	Game     *game.Game
	Pilot    *Autopilot
	MaxSteps int // per round; 0 means no cap
	Logger   *slog.Logger
}

// Run plays the given number of rounds, stopping early when ctx is done.
func (r *Runner) Run(ctx context.Context, rounds int) (RunStats, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	pilot := r.Pilot
	if pilot == nil {
		pilot = NewAutopilot()
	}

	var st RunStats
	for round := 0; round < rounds; round++ {
		if err := ctx.Err(); err != nil {
			return st, err
		}

		r.Game.Start()
		steps := 0
		for !r.Game.Over() {
			if r.MaxSteps > 0 && steps >= r.MaxSteps {
				break
			}
			if steps%256 == 0 {
				if err := ctx.Err(); err != nil {
					return st, err
				}
			}
			r.Game.SetDirection(pilot.Next(r.Game.Snapshot()))
			r.Game.Tick()
			steps++
		}

		score := r.Game.Score()
		st.Rounds++
		st.TotalScore += score
		if score > st.BestScore {
			st.BestScore = score
		}
		if !r.Game.Over() {
			st.Capped++
			logger.Warn("round hit step cap", "round", r.Game.UUID, "steps", steps, "score", score)
		}

		if (round+1)%50 == 0 {
			logger.Info("headless progress", "stats", st)
		}
	}
	return st, nil
}
