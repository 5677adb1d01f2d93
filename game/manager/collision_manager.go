package manager

import (
	"fmt"

	"snake-term/game/entity"
	"snake-term/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckSelfCollision reports whether the snake's head landed on its own body.
func (cm *CollisionManager) CheckSelfCollision(snake *entity.Snake) bool {
	return snake.HitsItself()
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// ValidateSpawnPosition checks if a position is valid for spawning food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	return snake == nil || !snake.Occupies(pos)
}

// MustContain panics when pos is outside the grid. Every coordinate the
// simulation produces is wrapped, so a miss here is a programming error.
func (cm *CollisionManager) MustContain(pos types.Point) {
	if !cm.grid.Contains(pos) {
		panic(fmt.Sprintf("coordinate %+v outside %dx%d grid", pos, cm.grid.Size, cm.grid.Size))
	}
}
