package game

import (
	"math/rand"
	"testing"
)

// scriptedRand replays fixed Intn and Float64 results.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) Intn(n int) int {
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRand) Float64() float64 {
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func TestSpawnSingleEmptyCell(t *testing.T) {
	full := Board{
		{2, 4, 2, 4},
		{4, 2, 0, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}

	for seed := int64(1); seed <= 100; seed++ {
		board := full
		if !board.Spawn(rand.New(rand.NewSource(seed))) {
			t.Fatalf("seed %d: Spawn() = false with one empty cell", seed)
		}

		v := board[1][2]
		if v != 2 && v != 4 {
			t.Fatalf("seed %d: spawned value %d, want 2 or 4", seed, v)
		}

		board[1][2] = 0
		if board != full {
			t.Fatalf("seed %d: Spawn() touched a non-empty cell", seed)
		}
	}
}

func TestSpawnFullBoard(t *testing.T) {
	board := Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	before := board

	if board.Spawn(rand.New(rand.NewSource(1))) {
		t.Error("Spawn() = true on a full board")
	}
	if board != before {
		t.Error("Spawn() modified a full board")
	}
}

func TestSpawnValueOdds(t *testing.T) {
	tests := []struct {
		name string
		roll float64
		want int
	}{
		{"low roll spawns four", 0.05, 4},
		{"threshold spawns two", 0.10, 2},
		{"high roll spawns two", 0.95, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var board Board
			r := &scriptedRand{ints: []int{5}, floats: []float64{tt.roll}}

			board.Spawn(r)

			// Index 5 in row-major order is (x=1, y=1)
			if board[1][1] != tt.want {
				t.Errorf("spawned %d at (1,1), want %d\n%v", board[1][1], tt.want, board)
			}
		})
	}
}

func TestSpawnDistribution(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	const trials = 10000

	fours := 0
	cellHits := make(map[Cell]int)
	for i := 0; i < trials; i++ {
		var board Board
		board.Spawn(r)
		for _, c := range allCells() {
			switch board[c.Y][c.X] {
			case 4:
				fours++
				cellHits[c]++
			case 2:
				cellHits[c]++
			}
		}
	}

	ratio := float64(fours) / trials
	if ratio < 0.08 || ratio > 0.12 {
		t.Errorf("four ratio = %.3f, want about %.2f", ratio, Spawn4Prob)
	}

	if len(cellHits) != BoardSize*BoardSize {
		t.Errorf("spawned into %d distinct cells, want %d", len(cellHits), BoardSize*BoardSize)
	}
}

func allCells() []Cell {
	var board Board
	return board.EmptyCells()
}
