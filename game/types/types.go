package types

import (
	"fmt"
	"time"
)

// Point is a cell on the grid.
type Point struct {
	X, Y int
}

// Grid represents the game grid dimensions. The grid is square and toroidal.
type Grid struct {
	Size int
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Size && p.Y >= 0 && p.Y < g.Size
}

// Wrap folds a point that stepped one cell off an edge back onto the
// opposite edge, each axis independently.
func (g Grid) Wrap(p Point) Point {
	if p.X > g.Size-1 {
		p.X = 0
	} else if p.X < 0 {
		p.X = g.Size - 1
	}
	if p.Y > g.Size-1 {
		p.Y = 0
	} else if p.Y < 0 {
		p.Y = g.Size - 1
	}
	return p
}

// Center returns the starting cell of a new snake.
func (g Grid) Center() Point {
	return Point{X: g.Size / 2, Y: g.Size / 2}
}

// Direction is a cardinal direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Delta converts a Direction into a unit move vector. Y grows downward.
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 1, Y: 0}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// IntentKind tags what the player asked for.
type IntentKind int

const (
	IntentMove IntentKind = iota
	IntentQuit
)

// Intent is a command produced by input capture that has not been applied
// to the simulation yet.
type Intent struct {
	Kind      IntentKind
	Direction Direction
}

// Move builds a directional intent.
func Move(d Direction) Intent {
	return Intent{Kind: IntentMove, Direction: d}
}

// Quit is the intent to end the game.
var Quit = Intent{Kind: IntentQuit}

func (i Intent) String() string {
	if i.Kind == IntentQuit {
		return "quit"
	}
	return i.Direction.String()
}

// Outcome is the result of a single simulation step.
type Outcome int

const (
	Continued Outcome = iota
	Grew
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Continued:
		return "continued"
	case Grew:
		return "grew"
	case Lost:
		return "lost"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Snapshot is the read-only view of the simulation handed to presenters.
// Body is ordered head first.
type Snapshot struct {
	GridSize  int
	Body      []Point
	Food      Point
	Direction Direction
	Tick      uint64
	Score     int
	Elapsed   time.Duration
}
