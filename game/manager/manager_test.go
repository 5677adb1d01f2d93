package manager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"snake-term/game/entity"
	"snake-term/game/types"
)

func newFoodManager(size int, seed uint64) *FoodManager {
	grid := types.Grid{Size: size}
	return NewFoodManager(grid, NewCollisionManager(grid), rand.New(rand.NewSource(seed)))
}

func TestGenerateFoodAvoidsSnake(t *testing.T) {
	fm := newFoodManager(3, 1)
	// Everything except (2,2) is covered.
	body := []types.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 2, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 1},
		{X: 0, Y: 2}, {X: 1, Y: 2},
	}
	snake := entity.NewSnakeWithBody(body, types.Right)

	for i := 0; i < 20; i++ {
		assert.Equal(t, types.Point{X: 2, Y: 2}, fm.GenerateFood(snake))
	}
}

func TestGenerateFoodStaysInGrid(t *testing.T) {
	fm := newFoodManager(7, 42)
	snake := entity.NewSnake(types.Point{X: 3, Y: 3}, types.Up)
	grid := types.Grid{Size: 7}

	for i := 0; i < 500; i++ {
		food := fm.GenerateFood(snake)
		require.True(t, grid.Contains(food), "food %+v outside grid", food)
		require.NotEqual(t, types.Point{X: 3, Y: 3}, food)
	}
}

func TestGenerateFoodFullGrid(t *testing.T) {
	fm := newFoodManager(2, 3)
	snake := entity.NewSnakeWithBody([]types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, types.Up)

	food := fm.GenerateFood(snake)
	assert.True(t, types.Grid{Size: 2}.Contains(food))
}

func TestGenerateFoodDeterministicForSeed(t *testing.T) {
	snake := entity.NewSnake(types.Point{X: 5, Y: 5}, types.Up)
	a, b := newFoodManager(10, 99), newFoodManager(10, 99)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Respawn(snake), b.Respawn(snake))
	}
}

func TestMustContainPanicsOutsideGrid(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Size: 4})

	assert.NotPanics(t, func() { cm.MustContain(types.Point{X: 3, Y: 0}) })
	assert.Panics(t, func() { cm.MustContain(types.Point{X: 4, Y: 0}) })
	assert.Panics(t, func() { cm.MustContain(types.Point{X: 0, Y: -1}) })
}

func TestValidateSpawnPosition(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Size: 4})
	snake := entity.NewSnake(types.Point{X: 1, Y: 1}, types.Up)

	assert.False(t, cm.ValidateSpawnPosition(types.Point{X: 1, Y: 1}, snake))
	assert.True(t, cm.ValidateSpawnPosition(types.Point{X: 2, Y: 1}, snake))
	assert.False(t, cm.ValidateSpawnPosition(types.Point{X: 5, Y: 1}, snake))
}
