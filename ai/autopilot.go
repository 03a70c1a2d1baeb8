package ai

import (
	"classic-snake/game"
	"classic-snake/game/types"
)

// Autopilot moves towards the apple, never into an immediate collision when
// a safe move exists, and prefers moves that keep enough room for the body.
type Autopilot struct{}

func NewAutopilot() *Autopilot {
	return &Autopilot{}
}

type candidate struct {
	dir      types.Direction
	safe     bool
	roomy    bool
	distance int
	straight bool
}

// better orders candidates: safe, then roomy, then closer to the apple, then
// keeping the current heading.
func (c candidate) better(o candidate) bool {
	if c.safe != o.safe {
		return c.safe
	}
	if c.roomy != o.roomy {
		return c.roomy
	}
	if c.distance != o.distance {
		return c.distance < o.distance
	}
	return c.straight && !o.straight
}

// Next picks the heading for the coming tick.
func (a *Autopilot) Next(s game.Snapshot) types.Direction {
	if len(s.Body) == 0 {
		return s.Direction
	}

	st := Observe(s)
	head := s.Head()
	blocked := obstacles(s)

	var best *candidate
	for i, d := range Directions {
		if len(s.Body) > 1 && d == st.Travel.Opposite() {
			continue
		}
		next := head.Add(d.Vector())
		c := candidate{
			dir:      d,
			safe:     !st.DangerDirs[i],
			distance: distance(next, s.Apple),
			straight: d == st.Travel,
		}
		if c.safe {
			c.roomy = reachable(s.Grid, next, blocked, len(s.Body)) >= len(s.Body)
		}
		if best == nil || c.better(*best) {
			c := c
			best = &c
		}
	}

	if best == nil {
		return st.Travel
	}
	return best.dir
}

// reachable counts free cells connected to start, stopping once limit is hit.
func reachable(grid types.Grid, start types.Point, blocked map[types.Point]bool, limit int) int {
	seen := map[types.Point]bool{start: true}
	queue := []types.Point{start}
	count := 0
	for len(queue) > 0 && count < limit {
		p := queue[0]
		queue = queue[1:]
		count++
		for _, d := range Directions {
			n := p.Add(d.Vector())
			if !grid.Contains(n) || blocked[n] || seen[n] {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return count
}
