package game

// Snapshot captures the complete game state for determinism testing and logging.
type Snapshot struct {
	Turns   int
	Score   int
	Board   Board
	MaxTile int // Highest tile on board
	Status  Status
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Turns:   g.turns,
		Score:   g.score,
		Board:   g.board,
		MaxTile: g.board.MaxTile(),
		Status:  g.board.Status(),
	}
}
