package manager

import (
	"golang.org/x/exp/rand"

	"snake-term/game/entity"
	"snake-term/game/types"
)

// maxSpawnTries bounds the rejection sampling before falling back to an
// explicit scan of the free cells.
const maxSpawnTries = 64

type FoodManager struct {
	grid         types.Grid
	food         types.Point
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// GenerateFood draws a cell uniformly among those the snake does not cover.
// When the snake covers the whole grid any cell is returned.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) types.Point {
	for i := 0; i < maxSpawnTries; i++ {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Size),
			Y: fm.rng.Intn(fm.grid.Size),
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food
		}
	}

	free := make([]types.Point, 0, fm.grid.Size*fm.grid.Size)
	for y := 0; y < fm.grid.Size; y++ {
		for x := 0; x < fm.grid.Size; x++ {
			p := types.Point{X: x, Y: y}
			if fm.collisionMgr.ValidateSpawnPosition(p, snake) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{X: fm.rng.Intn(fm.grid.Size), Y: fm.rng.Intn(fm.grid.Size)}
	}
	return free[fm.rng.Intn(len(free))]
}

// Respawn replaces the current food with a freshly generated one.
func (fm *FoodManager) Respawn(snake *entity.Snake) types.Point {
	fm.food = fm.GenerateFood(snake)
	return fm.food
}

func (fm *FoodManager) GetFood() types.Point {
	return fm.food
}

// SetFood places food at an explicit cell.
func (fm *FoodManager) SetFood(food types.Point) {
	fm.collisionMgr.MustContain(food)
	fm.food = food
}
