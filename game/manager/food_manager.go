package manager

import (
	"classic-snake/game/entity"
	"classic-snake/game/types"
)

// Rand is the slice of a random source the food manager needs.
// *golang.org/x/exp/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

type FoodManager struct {
	grid         types.Grid
	rng          Rand
	collisionMgr *CollisionManager
	attempts     int
}

func NewFoodManager(grid types.Grid, rng Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// GenerateFood draws cells uniformly until one is free of the snake. There is no
// retry cap; the only case that could spin forever, a board with no free cell,
// is reported with ok == false instead.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (food types.Point, ok bool) {
	fm.attempts = 0
	if fm.freeCells(snake) == 0 {
		return types.Point{}, false
	}
	for {
		fm.attempts++
		food = types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food, true
		}
	}
}

// LastAttempts is the number of draws the most recent GenerateFood needed.
func (fm *FoodManager) LastAttempts() int {
	return fm.attempts
}

func (fm *FoodManager) freeCells(snake *entity.Snake) int {
	inside := 0
	seen := make(map[types.Point]struct{}, snake.Len())
	for _, p := range snake.Body {
		if _, dup := seen[p]; dup || !fm.grid.Contains(p) {
			continue
		}
		seen[p] = struct{}{}
		inside++
	}
	return fm.grid.Cells() - inside
}
