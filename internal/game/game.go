package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Game is a single 2048 session. It owns the board and the score and is
// driven by exactly one frontend goroutine.
type Game struct {
	rng   *rand.Rand
	board Board
	score int
	turns int // Moves that changed the board
}

// MoveResult describes the outcome of one Play call.
type MoveResult struct {
	Changed bool   // Board changed and a tile was spawned
	Gained  int    // Score gained by merges in this move
	Status  Status // Board status after the move
}

// New creates a game with two spawned tiles.
func New(cfg core.RuntimeConfig) *Game {
	g := &Game{rng: newRand(cfg.Seed)}
	g.board.Spawn(g.rng)
	g.board.Spawn(g.rng)
	return g
}

// FromBoard creates a game starting from the given board, without spawning.
func FromBoard(b Board, cfg core.RuntimeConfig) *Game {
	return &Game{
		rng:   newRand(cfg.Seed),
		board: b,
	}
}

// newRand returns a seeded RNG; seed 0 means time-based.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Play performs a move. A move that does not change the board neither
// scores nor spawns, and moves are ignored once the game is over.
func (g *Game) Play(dir Direction) MoveResult {
	if status := g.board.Status(); status.Terminal() {
		return MoveResult{Status: status}
	}

	changed, gained := g.board.Move(dir)
	if changed {
		g.score += gained
		g.turns++
		g.board.Spawn(g.rng)
	}

	return MoveResult{
		Changed: changed,
		Gained:  gained,
		Status:  g.board.Status(),
	}
}

// Board returns a copy of the current board.
func (g *Game) Board() Board {
	return g.board
}

// Score returns the accumulated score.
func (g *Game) Score() int {
	return g.score
}

// Turns returns the number of moves that changed the board.
func (g *Game) Turns() int {
	return g.turns
}

// Status returns the current board status.
func (g *Game) Status() Status {
	return g.board.Status()
}
