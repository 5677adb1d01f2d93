// Package game holds the authoritative snake simulation. A Game is owned by a
// single goroutine and is advanced only through Step.
package game

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"snake-term/config"
	"snake-term/game/entity"
	"snake-term/game/manager"
	"snake-term/game/types"
)

type Game struct {
	UUID      string
	Grid      types.Grid
	StartTime time.Time
	EndTime   time.Time

	now          func() time.Time
	snake        *entity.Snake
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	ticks        uint64
	lost         bool
	logger       *slog.Logger
}

type options struct {
	body   []types.Point
	dir    types.Direction
	food   *types.Point
	rng    *rand.Rand
	now    func() time.Time
	logger *slog.Logger
}

// Option customises a new Game.
type Option func(*options)

// WithSnake starts the game from an explicit body, head first.
func WithSnake(body []types.Point, dir types.Direction) Option {
	return func(o *options) {
		o.body = body
		o.dir = dir
	}
}

// WithFood places the first food at an explicit cell.
func WithFood(p types.Point) Option {
	return func(o *options) {
		o.food = &p
	}
}

// WithRand overrides the random source used for food placement.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithClock replaces the wall clock used for the elapsed play time.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// NewGame creates a game with a one-cell snake in the centre heading Down,
// unless options say otherwise.
func NewGame(cfg config.Config, opts ...Option) *Game {
	grid := types.Grid{Size: cfg.GridSize}

	o := options{dir: types.Down, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		o.rng = rand.New(rand.NewSource(seed))
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	collisionMgr := manager.NewCollisionManager(grid)
	g := &Game{
		UUID:         uuid.New().String(),
		Grid:         grid,
		StartTime:    o.now(),
		now:          o.now,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, collisionMgr, o.rng),
	}
	g.logger = o.logger.With("session", g.UUID)

	if len(o.body) > 0 {
		for _, p := range o.body {
			collisionMgr.MustContain(p)
		}
		g.snake = entity.NewSnakeWithBody(o.body, o.dir)
	} else {
		g.snake = entity.NewSnake(grid.Center(), o.dir)
	}

	if o.food != nil {
		g.foodMgr.SetFood(*o.food)
	} else {
		g.foodMgr.Respawn(g.snake)
	}

	return g
}

// Step advances the simulation by one tick. The last directional intent of
// the batch wins; quit intents are ignored here. Once Lost has been
// returned the state is frozen and every later call returns Lost.
func (g *Game) Step(intents []types.Intent) types.Outcome {
	if g.lost {
		return types.Lost
	}
	g.ticks++

	g.resolveDirection(intents)

	head := g.snake.GetHead()
	delta := g.snake.Direction().Delta()
	newHead := g.Grid.Wrap(types.Point{X: head.X + delta.X, Y: head.Y + delta.Y})
	g.collisionMgr.MustContain(newHead)

	outcome := types.Continued
	if g.collisionMgr.IsFoodCollision(newHead, g.foodMgr.GetFood()) {
		g.snake.Grow(newHead)
		food := g.foodMgr.Respawn(g.snake)
		outcome = types.Grew
		g.logger.Debug("food eaten", "tick", g.ticks, "length", g.snake.Len(), "next_food", food)
	} else {
		g.snake.Move(newHead)
	}

	if g.collisionMgr.CheckSelfCollision(g.snake) {
		g.lost = true
		g.EndTime = g.now()
		return types.Lost
	}
	return outcome
}

func (g *Game) resolveDirection(intents []types.Intent) {
	for i := len(intents) - 1; i >= 0; i-- {
		if intents[i].Kind != types.IntentMove {
			continue
		}
		want := intents[i].Direction
		if want == g.snake.Direction() {
			return
		}
		if g.snake.SetDirection(want) {
			g.logger.Debug("direction changed", "tick", g.ticks, "direction", want)
		} else {
			g.logger.Debug("reversal rejected", "tick", g.ticks, "direction", want)
		}
		return
	}
}

// Snapshot copies the state a presenter needs.
func (g *Game) Snapshot() types.Snapshot {
	return types.Snapshot{
		GridSize:  g.Grid.Size,
		Body:      g.snake.Body(),
		Food:      g.foodMgr.GetFood(),
		Direction: g.snake.Direction(),
		Tick:      g.ticks,
		Score:     g.snake.Len(),
		Elapsed:   g.ElapsedTime(),
	}
}

// Score is the snake length.
func (g *Game) Score() int {
	return g.snake.Len()
}

func (g *Game) Ticks() uint64 {
	return g.ticks
}

func (g *Game) Lost() bool {
	return g.lost
}

// ElapsedTime is the play time so far. It stops counting once the game is
// lost.
func (g *Game) ElapsedTime() time.Duration {
	if g.lost {
		return g.EndTime.Sub(g.StartTime)
	}
	return g.now().Sub(g.StartTime)
}
