package chess

// StartDot is the cell a player's first piece must cover.
func StartDot(t Turn) Dot {
	if t == Player2 {
		return NewDot(9, 9)
	}
	return NewDot(4, 4)
}

// IsLegal decides whether s may be placed with its top-left corner at (x, y) by player.
// Every occupied cell must be on the board, free, and not edge-adjacent to the player's own cells.
// A first placement must cover the player's start cell; later ones must touch an own cell diagonally.
func IsLegal(b Board, s Shape, x, y int, player Turn, firstMove bool) bool {
	coversStart, touchesCorner := false, false
	start := StartDot(player)

	for _, cell := range s.Cells() {
		bx, by := x+cell.X(), y+cell.Y()
		if !InBoard(bx, by) {
			return false
		}

		if b[bx][by] != Empty {
			return false
		}

		for _, o := range orthogonal {
			if b.Owned(bx+o[0], by+o[1], player) {
				return false
			}
		}

		if firstMove {
			if NewDot(bx, by) == start {
				coversStart = true
			}
			continue
		}

		for _, d := range diagonal {
			if b.Owned(bx+d[0], by+d[1], player) {
				touchesCorner = true
			}
		}
	}

	if firstMove {
		return coversStart
	}
	return touchesCorner
}

// Anchors lists the cells a new piece of player may be aligned to, in row-major order:
// the start cell before the first placement, otherwise every valid corner.
func Anchors(b Board, player Turn, firstMove bool) (anchors []Dot) {
	if firstMove {
		if start := StartDot(player); b.At(start) == Empty {
			anchors = append(anchors, start)
		}
		return
	}

	for _, d := range Dots {
		if b.At(d) == Empty && isCorner(b, d.X(), d.Y(), player) {
			anchors = append(anchors, d)
		}
	}
	return
}

// isCorner reports whether the free cell (x, y) touches player diagonally but not along an edge.
func isCorner(b Board, x, y int, player Turn) bool {
	for _, o := range orthogonal {
		if b.Owned(x+o[0], y+o[1], player) {
			return false
		}
	}
	for _, d := range diagonal {
		if b.Owned(x+d[0], y+d[1], player) {
			return true
		}
	}
	return false
}
