package chess

const (
	AllPlacedBonus    = 15
	MonominoLastBonus = 5
)

// PlacedCellCount is the number of board cells owned by t.
func PlacedCellCount(b Board, t Turn) int {
	return b.Count(t)
}

// FinalScore applies the end-of-game adjustment to the placed cell count:
// an emptied pool earns AllPlacedBonus (plus MonominoLastBonus when the monomino went last),
// otherwise the area of the remaining pieces is subtracted.
func FinalScore(b Board, pool Pool, last Piece, t Turn) int {
	score := PlacedCellCount(b, t)
	if !pool.Empty() {
		return score - pool.Area()
	}

	score += AllPlacedBonus
	if last == Monomino {
		score += MonominoLastBonus
	}
	return score
}

// Decide names the winner of two adjusted scores.
func Decide(player1Score, player2Score int) Winner {
	switch {
	case player1Score > player2Score:
		return Player1Win
	case player1Score < player2Score:
		return Player2Win
	}
	return Draw
}
