package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionOpposite(t *testing.T) {
	cases := map[Direction]Direction{Up: Down, Down: Up, Left: Right, Right: Left}
	for d, want := range cases {
		assert.Equal(t, want, d.Opposite(), d.String())
		assert.Equal(t, d, d.Opposite().Opposite(), d.String())
	}
}

func TestDirectionDeltaCancelsWithOpposite(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		a, b := d.Delta(), d.Opposite().Delta()
		assert.Equal(t, Point{}, Point{X: a.X + b.X, Y: a.Y + b.Y}, d.String())
	}
}

func TestGridWrap(t *testing.T) {
	g := Grid{Size: 5}

	assert.Equal(t, Point{X: 0, Y: 3}, g.Wrap(Point{X: 5, Y: 3}))
	assert.Equal(t, Point{X: 4, Y: 3}, g.Wrap(Point{X: -1, Y: 3}))
	assert.Equal(t, Point{X: 2, Y: 0}, g.Wrap(Point{X: 2, Y: 5}))
	assert.Equal(t, Point{X: 2, Y: 4}, g.Wrap(Point{X: 2, Y: -1}))
	assert.Equal(t, Point{X: 2, Y: 2}, g.Wrap(Point{X: 2, Y: 2}))
}

func TestGridContains(t *testing.T) {
	g := Grid{Size: 3}

	assert.True(t, g.Contains(Point{X: 0, Y: 0}))
	assert.True(t, g.Contains(Point{X: 2, Y: 2}))
	assert.False(t, g.Contains(Point{X: 3, Y: 0}))
	assert.False(t, g.Contains(Point{X: 0, Y: -1}))
}

func TestIntentString(t *testing.T) {
	assert.Equal(t, "quit", Quit.String())
	assert.Equal(t, "left", Move(Left).String())
	assert.Equal(t, "lost", Lost.String())
}
