package game

// Spawn4Prob is the probability that a spawned tile is a 4 instead of a 2.
const Spawn4Prob = 0.10

// Rand is the subset of *rand.Rand used by the spawner.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Spawn places a new tile (2 or 4) in a uniformly chosen empty cell.
// Returns false without touching the board when it is full.
func (b *Board) Spawn(r Rand) bool {
	emptyCells := b.EmptyCells()
	if len(emptyCells) == 0 {
		return false
	}

	cell := emptyCells[r.Intn(len(emptyCells))]

	value := 2
	if r.Float64() < Spawn4Prob {
		value = 4
	}

	b[cell.Y][cell.X] = value
	return true
}
