package manager

import (
	"classic-snake/game/entity"
	"classic-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies the snake's current head against the walls and the
// rest of its own body. It runs after the move has been applied, so the head is
// already the last element of the body.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) types.CollisionType {
	head := snake.GetHead()
	if cm.isWallCollision(head) {
		return types.WallCollision
	}
	if cm.isSelfCollision(head, snake) {
		return types.SelfCollision
	}
	return types.NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// isSelfCollision checks the head against every segment except itself
func (cm *CollisionManager) isSelfCollision(pos types.Point, snake *entity.Snake) bool {
	for _, part := range snake.Body[:len(snake.Body)-1] {
		if pos == part {
			return true
		}
	}
	return false
}

// ValidateSpawnPosition checks if a position is valid for placing the apple
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	return !snake.Contains(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
