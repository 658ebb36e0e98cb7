package game

// Status is the outcome of inspecting a board.
type Status int

const (
	StatusContinue Status = iota
	StatusWon
	StatusLost
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusContinue:
		return "continue"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal returns true for Won and Lost.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// Status inspects the board. A 2048 tile wins even on a full board;
// otherwise the game continues while an empty cell or a mergeable pair exists.
func (b Board) Status() Status {
	hasEmpty := false
	for y := range BoardSize {
		for x := range BoardSize {
			switch b[y][x] {
			case WinTile:
				return StatusWon
			case 0:
				hasEmpty = true
			}
		}
	}

	if hasEmpty || b.HasPossibleMerge() {
		return StatusContinue
	}
	return StatusLost
}

// HasPossibleMerge returns true if any horizontally or vertically adjacent
// tiles hold the same non-zero value.
func (b Board) HasPossibleMerge() bool {
	for i := range BoardSize {
		for j := range BoardSize - 1 {
			// (i,j)-(i,j+1) is a horizontal pair, (j,i)-(j+1,i) a vertical one
			if b[i][j] != 0 && b[i][j] == b[i][j+1] {
				return true
			}
			if b[j][i] != 0 && b[j][i] == b[j+1][i] {
				return true
			}
		}
	}
	return false
}
