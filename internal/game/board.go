// Package game implements the 2048 board engine: row transforms, the four
// directional moves, the terminal-state detector and the tile spawner.
package game

import "github.com/vovakirdan/tui-2048/internal/core"

// BoardSize is the board dimension.
const BoardSize = 4

// WinTile is the tile value that wins the game.
const WinTile = 2048

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DirectionFor converts a movement action to a direction.
// Returns false for non-movement actions.
func DirectionFor(a core.Action) (Direction, bool) {
	if !a.IsMove() {
		return 0, false
	}
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	default:
		return DirRight, true
	}
}

// Row is a single row (or transposed column) of the board.
type Row [BoardSize]int

// Board represents the 4x4 game board. Cells are 0 (empty) or a power of two.
type Board [BoardSize][BoardSize]int

// Cell is a board coordinate.
type Cell struct {
	X, Y int
}

// Compress slides all non-zero values to the left, keeping their order,
// and pads with zeros. Reports whether the result differs from row.
func Compress(row Row) (Row, bool) {
	var result Row
	writePos := 0

	for _, v := range row {
		if v == 0 {
			continue
		}
		result[writePos] = v
		writePos++
	}

	return result, result != row
}

// Merge combines equal adjacent tiles in place, scanning left to right.
// The left cell of a pair doubles and the right one becomes empty, so a
// freshly merged tile cannot merge again in the same pass.
// Returns whether anything merged and the sum of the doubled values.
func Merge(row *Row) (changed bool, gained int) {
	for i := 0; i < BoardSize-1; i++ {
		if row[i] != 0 && row[i] == row[i+1] {
			row[i] *= 2
			row[i+1] = 0
			gained += row[i]
			changed = true
		}
	}
	return changed, gained
}

// slideRow runs compress, merge, compress on a single row.
// Returns the updated row and the score gained from merges.
func slideRow(row Row) (Row, int) {
	result, _ := Compress(row)
	_, score := Merge(&result)
	result, _ = Compress(result)
	return result, score
}

// reverseRow reverses a row.
func reverseRow(row Row) Row {
	var result Row
	for i := range BoardSize {
		result[i] = row[BoardSize-1-i]
	}
	return result
}

// slideLeft slides all rows left and merges.
func (b Board) slideLeft() (Board, int, bool) {
	var next Board
	totalScore := 0
	changed := false

	for y := range BoardSize {
		row := Row(b[y])
		newRow, score := slideRow(row)
		next[y] = newRow
		totalScore += score

		if row != newRow {
			changed = true
		}
	}

	return next, totalScore, changed
}

// slideRight slides all rows right and merges.
func (b Board) slideRight() (Board, int, bool) {
	var next Board
	totalScore := 0
	changed := false

	for y := range BoardSize {
		// Reverse, slide left, reverse back
		newRow, score := slideRow(reverseRow(b[y]))
		next[y] = reverseRow(newRow)
		totalScore += score

		if b[y] != next[y] {
			changed = true
		}
	}

	return next, totalScore, changed
}

// transpose returns the matrix transpose.
func (b Board) transpose() Board {
	var result Board
	for y := range BoardSize {
		for x := range BoardSize {
			result[y][x] = b[x][y]
		}
	}
	return result
}

// slide computes the board after a move without touching the receiver.
func (b Board) slide(dir Direction) (Board, int, bool) {
	switch dir {
	case DirLeft:
		return b.slideLeft()
	case DirRight:
		return b.slideRight()
	case DirUp:
		// Columns become rows, so "up" is "left" on the transpose
		slid, score, changed := b.transpose().slideLeft()
		return slid.transpose(), score, changed
	case DirDown:
		slid, score, changed := b.transpose().slideRight()
		return slid.transpose(), score, changed
	default:
		return b, 0, false
	}
}

// Move applies a move in place. The board is only written when the move
// changed at least one row or column.
// Returns whether the board changed and the score gained from merges.
func (b *Board) Move(dir Direction) (changed bool, score int) {
	next, gained, ok := b.slide(dir)
	if !ok {
		return false, 0
	}
	*b = next
	return true, gained
}

// CanMove reports whether a move in dir would change the board.
func (b Board) CanMove(dir Direction) bool {
	_, _, changed := b.slide(dir)
	return changed
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func (b Board) EmptyCells() []Cell {
	var cells []Cell
	for y := range BoardSize {
		for x := range BoardSize {
			if b[y][x] == 0 {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// MaxTile returns the maximum tile value on the board.
func (b Board) MaxTile() int {
	maxVal := 0
	for y := range BoardSize {
		for x := range BoardSize {
			if b[y][x] > maxVal {
				maxVal = b[y][x]
			}
		}
	}
	return maxVal
}
