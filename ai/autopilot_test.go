package ai

import (
	"testing"

	"classic-snake/game"
	"classic-snake/game/types"

	"golang.org/x/exp/rand"
)

func pts(xy ...int) []types.Point {
	out := make([]types.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, types.Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}

func snapshot(body []types.Point, dir types.Direction, apple types.Point) game.Snapshot {
	return game.Snapshot{
		Grid:      types.Grid{Width: 20, Height: 20},
		Body:      body,
		Apple:     apple,
		Direction: dir,
	}
}

func TestObserve(t *testing.T) {
	s := snapshot(pts(4, 4, 5, 4, 6, 4), types.Right, types.Point{X: 2, Y: 9})
	st := Observe(s)

	if st.RelativeFoodDir != [2]int{-1, 1} {
		t.Errorf("RelativeFoodDir = %v", st.RelativeFoodDir)
	}
	if st.FoodDistance != 9 {
		t.Errorf("FoodDistance = %d, want 9", st.FoodDistance)
	}
	if st.Travel != types.Right {
		t.Errorf("Travel = %v, want right", st.Travel)
	}
	// Left of the head is the neck.
	want := [4]bool{false, false, false, true}
	if st.DangerDirs != want {
		t.Errorf("DangerDirs = %v, want %v", st.DangerDirs, want)
	}
}

func TestObserveWall(t *testing.T) {
	s := snapshot(pts(17, 0, 18, 0, 19, 0), types.Right, types.Point{X: 0, Y: 10})
	st := Observe(s)
	if !st.DangerDirs[0] || !st.DangerDirs[1] {
		t.Errorf("expected up and right to be dangerous, got %v", st.DangerDirs)
	}
}

func TestNext(t *testing.T) {
	tests := []struct {
		name  string
		body  []types.Point
		dir   types.Direction
		apple types.Point
		want  types.Direction
	}{
		{
			name:  "straight towards apple",
			body:  pts(4, 4, 5, 4, 6, 4),
			dir:   types.Right,
			apple: types.Point{X: 12, Y: 4},
			want:  types.Right,
		},
		{
			name:  "turns towards apple",
			body:  pts(4, 4, 5, 4, 6, 4),
			dir:   types.Right,
			apple: types.Point{X: 6, Y: 12},
			want:  types.Down,
		},
		{
			name:  "never reverses",
			body:  pts(4, 4, 5, 4, 6, 4),
			dir:   types.Right,
			apple: types.Point{X: 0, Y: 4},
			want:  types.Right,
		},
		{
			name:  "avoids wall",
			body:  pts(17, 0, 18, 0, 19, 0),
			dir:   types.Right,
			apple: types.Point{X: 0, Y: 10},
			want:  types.Down,
		},
		{
			name:  "avoids own body",
			body:  pts(7, 3, 6, 3, 5, 3, 4, 3, 4, 4, 5, 4, 6, 4),
			dir:   types.Right,
			apple: types.Point{X: 6, Y: 0},
			want:  types.Right,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewAutopilot().Next(snapshot(tt.body, tt.dir, tt.apple))
			if got != tt.want {
				t.Errorf("Next = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextPrefersRoom(t *testing.T) {
	// Head at (0,2) against the left wall, heading left. Up leads into a
	// two-cell pocket next to the apple; down leads to open board.
	body := pts(3, 0, 2, 0, 1, 0, 1, 1, 1, 2, 0, 2)
	s := snapshot(body, types.Left, types.Point{X: 0, Y: 0})
	st := Observe(s)
	if st.Travel != types.Left {
		t.Fatalf("travel = %v, want left", st.Travel)
	}
	if st.DangerDirs[0] {
		t.Fatal("up should be safe, only cramped")
	}

	got := NewAutopilot().Next(s)
	if got != types.Down {
		t.Errorf("Next = %v, want down", got)
	}
}

func TestNextIsNeverFatalWhenAvoidable(t *testing.T) {
	g := game.New(game.Options{Rand: rand.New(rand.NewSource(7))})
	pilot := NewAutopilot()

	for round := 0; round < 20; round++ {
		g.Start()
		for step := 0; step < 3000 && !g.Over(); step++ {
			s := g.Snapshot()
			dir := pilot.Next(s)
			st := Observe(s)

			anySafe := false
			for i, d := range Directions {
				if d != st.Travel.Opposite() && !st.DangerDirs[i] {
					anySafe = true
				}
			}
			for i, d := range Directions {
				if d == dir && st.DangerDirs[i] && anySafe {
					t.Fatalf("round %d step %d: chose fatal %v with a safe move available", round, step, dir)
				}
			}

			g.SetDirection(dir)
			g.Tick()
		}
	}
}

func TestAutopilotScores(t *testing.T) {
	pilot := NewAutopilot()
	for seed := uint64(1); seed <= 5; seed++ {
		g := game.New(game.Options{Rand: rand.New(rand.NewSource(seed))})
		g.Start()
		for step := 0; step < 5000 && !g.Over(); step++ {
			g.SetDirection(pilot.Next(g.Snapshot()))
			g.Tick()
		}
		if g.Score() < 1 {
			t.Errorf("seed %d: autopilot scored %d", seed, g.Score())
		}
	}
}
