package chess

import "strings"

// Board holds the owner of every cell; Empty (0) marks a free cell.
// It is a value: copies never share cells.
type Board [BoardSize][BoardSize]Turn

func (b Board) At(d Dot) Turn {
	return b[d.X()][d.Y()]
}

// Owned reports whether (x, y) lies on the board and belongs to t.
func (b Board) Owned(x, y int, t Turn) bool {
	return InBoard(x, y) && b[x][y] == t
}

// Place returns a copy of b with the occupied cells of s, anchored at (x, y), owned by t.
func (b Board) Place(s Shape, x, y int, t Turn) Board {
	for _, cell := range s.Cells() {
		b[x+cell.X()][y+cell.Y()] = t
	}
	return b
}

// Count is the number of cells owned by t.
func (b Board) Count(t Turn) (count int) {
	for _, row := range b {
		for _, cell := range row {
			if cell == t {
				count++
			}
		}
	}
	return
}

func (b Board) String() string {
	var builder strings.Builder
	for i, row := range b {
		if i > 0 {
			builder.WriteByte('\n')
		}
		for _, cell := range row {
			switch cell {
			case Player1:
				builder.WriteByte('X')
			case Player2:
				builder.WriteByte('O')
			default:
				builder.WriteByte('.')
			}
		}
	}
	return builder.String()
}
