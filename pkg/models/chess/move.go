package chess

import "fmt"

// Move places a piece instance with its shape's top-left corner at (Row, Col).
type Move struct {
	PieceInstance
	Row int `json:"row"`
	Col int `json:"col"`
}

func (m Move) String() string {
	return fmt.Sprintf("%s %s rot=%d mirrored=%t at (%d, %d)", m.Player, m.Piece, m.Rotation, m.Mirrored, m.Row, m.Col)
}

// Size is the occupied cell count of the placed piece.
func (m Move) Size() int {
	return m.Piece.Size()
}

// originSpan covers every origin that can put a shape cell on the board.
const originSpan = BoardSize + shapeSpan - 1

// GenerateMoves enumerates the legal moves of the player to move.
func GenerateMoves(g Game) []Move {
	return g.MovesFor(g.NowPlayer)
}

// Moves is GenerateMoves(g).
func (g Game) Moves() []Move {
	return g.MovesFor(g.NowPlayer)
}

// MovesFor enumerates every distinct legal (piece, rotation, mirrored, origin) for player.
// The order is deterministic: catalog order, then orientation order, then anchor and cell order.
func (g Game) MovesFor(player Turn) (moves []Move) {
	g.eachMove(player, func(m Move) bool {
		moves = append(moves, m)
		return true
	})
	return
}

// HasMoves reports whether player has at least one legal move.
func (g Game) HasMoves(player Turn) (has bool) {
	g.eachMove(player, func(Move) bool {
		has = true
		return false
	})
	return
}

// eachMove aligns every occupied cell of every distinct orientation of every held piece
// with every anchor, and visits the legal results until visit returns false.
func (g Game) eachMove(player Turn, visit func(Move) bool) {
	pool := g.Pool(player)
	firstMove := pool.Full()
	anchors := Anchors(g.Board, player, firstMove)
	if len(anchors) == 0 {
		return
	}

	for _, piece := range pool.Pieces() {
		for _, o := range Orientations(piece) {
			var tried [originSpan][originSpan]bool
			for _, a := range anchors {
				for _, cell := range o.Cells {
					x, y := a.X()-cell.X(), a.Y()-cell.Y()
					if tried[x+shapeSpan-1][y+shapeSpan-1] {
						continue
					}
					tried[x+shapeSpan-1][y+shapeSpan-1] = true

					if !IsLegal(g.Board, o.Shape, x, y, player, firstMove) {
						continue
					}

					m := Move{
						PieceInstance: PieceInstance{
							Piece:    piece,
							Player:   player,
							Rotation: o.Rotation,
							Mirrored: o.Mirrored,
						},
						Row: x,
						Col: y,
					}
					if !visit(m) {
						return
					}
				}
			}
		}
	}
}
