// Package ai steers the snake on its own, for headless runs and demos.
package ai

import (
	"classic-snake/game"
	"classic-snake/game/types"
)

// Directions lists the candidate moves in the order ties are broken.
var Directions = [4]types.Direction{types.Up, types.Right, types.Down, types.Left}

// State is what the autopilot sees of a snapshot.
type State struct {
	RelativeFoodDir [2]int  // sign of apple minus head (x, y)
	FoodDistance    int     // Manhattan distance to the apple
	DangerDirs      [4]bool // indexed like Directions
	Travel          types.Direction
}

// Observe extracts the autopilot state from a snapshot.
func Observe(s game.Snapshot) State {
	head := s.Head()
	st := State{
		RelativeFoodDir: [2]int{sign(s.Apple.X - head.X), sign(s.Apple.Y - head.Y)},
		FoodDistance:    distance(head, s.Apple),
		Travel:          travel(s),
	}
	blocked := obstacles(s)
	for i, d := range Directions {
		next := head.Add(d.Vector())
		st.DangerDirs[i] = !s.Grid.Contains(next) || blocked[next]
	}
	return st
}

// travel is the heading the snake actually moved last tick.
func travel(s game.Snapshot) types.Direction {
	if len(s.Body) >= 2 {
		if d, ok := types.DirectionOf(s.Head().Sub(s.Body[len(s.Body)-2])); ok {
			return d
		}
	}
	return s.Direction
}

// obstacles are the cells still occupied after the next move. The tail
// moves away unless the apple is eaten, and the apple never lies on the body.
func obstacles(s game.Snapshot) map[types.Point]bool {
	blocked := make(map[types.Point]bool, len(s.Body))
	for _, p := range s.Body[1:] {
		blocked[p] = true
	}
	return blocked
}

func distance(a, b types.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
