package assess

import (
	"math"

	"github.com/HuXin0817/blokus-duo/pkg/models/chess"
)

const (
	boardCenter       = float64(chess.BoardSize-1) / 2
	maxDistFromCenter = float64(chess.BoardSize) / 2
)

// Weights scale the three evaluation terms.
type Weights struct {
	Material       float64
	Mobility       float64
	Centralization float64
}

var DefaultWeights = Weights{
	Material:       1.0,
	Mobility:       0.9,
	Centralization: 0.5,
}

// Evaluate scores g from player's point of view with DefaultWeights.
func Evaluate(g chess.Game, player chess.Turn) float64 {
	return DefaultWeights.Evaluate(g, player)
}

// Evaluate is the weighted sum of placed cells, valid corners and centralization,
// each taken for player minus the opponent.
func (w Weights) Evaluate(g chess.Game, player chess.Turn) float64 {
	opponent := -player

	material := float64(chess.PlacedCellCount(g.Board, player) - chess.PlacedCellCount(g.Board, opponent))
	mobility := float64(len(chess.Anchors(g.Board, player, g.FirstMove(player))) - len(chess.Anchors(g.Board, opponent, g.FirstMove(opponent))))
	centralization := Centralization(g.Board, player) - Centralization(g.Board, opponent)

	return w.Material*material + w.Mobility*mobility + w.Centralization*centralization
}

// Centralization sums maxDistFromCenter minus the Chebyshev distance to the board center over t's cells.
func Centralization(b chess.Board, t chess.Turn) (score float64) {
	for _, d := range chess.Dots {
		if b.At(d) != t {
			continue
		}
		dist := math.Max(math.Abs(float64(d.X())-boardCenter), math.Abs(float64(d.Y())-boardCenter))
		score += maxDistFromCenter - dist
	}
	return
}
