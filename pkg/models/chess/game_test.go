package chess

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type placement struct {
	piece    Piece
	shape    Shape
	row, col int
}

// bruteForce tries every distinct orientation at every origin that could reach the board.
func bruteForce(g Game, player Turn) map[placement]struct{} {
	found := make(map[placement]struct{})
	pool := g.Pool(player)
	for _, piece := range pool.Pieces() {
		for _, o := range Orientations(piece) {
			for x := -shapeSpan; x < BoardSize; x++ {
				for y := -shapeSpan; y < BoardSize; y++ {
					if IsLegal(g.Board, o.Shape, x, y, player, pool.Full()) {
						found[placement{piece, o.Shape, x, y}] = struct{}{}
					}
				}
			}
		}
	}
	return found
}

func assertSoundAndComplete(t *testing.T, g Game) {
	t.Helper()
	moves := g.Moves()
	generated := make(map[placement]struct{}, len(moves))
	for _, m := range moves {
		require.True(t, IsLegal(g.Board, m.Shape(), m.Row, m.Col, m.Player, g.FirstMove(m.Player)), m.String())
		require.NoError(t, g.Validate(m))
		key := placement{m.Piece, m.Shape(), m.Row, m.Col}
		_, dup := generated[key]
		require.False(t, dup, "duplicate %s", m)
		generated[key] = struct{}{}
	}
	assert.Equal(t, bruteForce(g, g.NowPlayer), generated)
}

func TestOpeningMoves(t *testing.T) {
	g := NewGame()
	moves := GenerateMoves(g)
	require.NotEmpty(t, moves)

	monomino := 0
	perPiece := make(map[Piece]int)
	for _, m := range moves {
		perPiece[m.Piece]++
		covers := false
		for _, cell := range m.Shape().Cells() {
			if m.Row+cell.X() == 4 && m.Col+cell.Y() == 4 {
				covers = true
			}
		}
		assert.True(t, covers, m.String())
		if m.Piece == Monomino {
			monomino++
			assert.Equal(t, 4, m.Row)
			assert.Equal(t, 4, m.Col)
		}
	}
	assert.Equal(t, 1, monomino)
	assert.Len(t, perPiece, PiecesCount)

	assertSoundAndComplete(t, g)
}

func TestMovesAreSoundAndCompleteMidGame(t *testing.T) {
	g := NewGame()
	for range 6 {
		moves := g.Moves()
		require.NotEmpty(t, moves)
		next, err := g.Apply(moves[len(moves)/2])
		require.NoError(t, err)
		g = next
	}
	assertSoundAndComplete(t, g)
}

func TestApplyIsPure(t *testing.T) {
	g := NewGame()
	m := g.Moves()[0]
	before := g

	next, err := g.Apply(m)
	require.NoError(t, err)

	assert.Equal(t, before, g)
	assert.Equal(t, g.Player1Pool.Len()-1, next.Player1Pool.Len())
	assert.Equal(t, g.Board.Count(Player1)+m.Size(), next.Board.Count(Player1))
	assert.Equal(t, next.Board.Count(Player1), next.Player1Score)
	assert.Equal(t, m.Piece, next.Player1Last)
	assert.Equal(t, Player2, next.NowPlayer)
	assert.Equal(t, 1, next.StepCount())
	assert.Equal(t, TotalArea-next.Player1Pool.Area(), next.Board.Count(Player1))
}

func TestValidate(t *testing.T) {
	g := NewGame()
	mono := Move{PieceInstance: PieceInstance{Piece: Monomino, Player: Player1}, Row: 4, Col: 4}

	wrongTurn := mono
	wrongTurn.Player = Player2
	assert.ErrorIs(t, g.Validate(wrongTurn), ErrNotYourTurn)

	missStart := mono
	missStart.Col = 5
	_, err := g.Apply(missStart)
	assert.ErrorIs(t, err, ErrIllegalMove)

	badRotation := mono
	badRotation.Rotation = 45
	assert.ErrorIs(t, g.Validate(badRotation), ErrIllegalMove)

	g.Player1Pool = g.Player1Pool.Remove(Monomino)
	assert.ErrorIs(t, g.Validate(mono), ErrPieceUnavailable)
	assert.Panics(t, func() { g.Place(mono) })

	g.GameOver = true
	assert.ErrorIs(t, g.Validate(mono), ErrGameOver)
}

func TestForcedPass(t *testing.T) {
	g := NewGame()
	g.NowPlayer = Player2
	g.Player2Pool = 0

	settled := g.settle()
	assert.False(t, settled.GameOver)
	assert.Equal(t, Player1, settled.NowPlayer)

	g.Player1Pool = 0
	over := g.settle()
	assert.True(t, over.GameOver)
	assert.Equal(t, Draw, over.Winner)
	assert.Equal(t, AllPlacedBonus, over.Player1Score)
}

func TestFinalScoring(t *testing.T) {
	var b Board
	// Player1 owns 89 cells, Player2 owns 83.
	for i, d := range Dots {
		switch {
		case i < TotalArea:
			b[d.X()][d.Y()] = Player1
		case i < TotalArea+TotalArea-6:
			b[d.X()][d.Y()] = Player2
		}
	}

	g := Game{
		Board:       b,
		Player1Pool: 0,
		Player2Pool: poolOf(t, "I1", "I2", "I3"),
		NowPlayer:   Player1,
		Player1Last: Monomino,
		Player2Last: mustPiece(t, "Z5"),
	}
	require.Equal(t, 6, g.Player2Pool.Area())

	over := g.finish()
	require.True(t, over.GameOver)
	assert.Equal(t, 89+15+5, over.Player1Score)
	assert.Equal(t, 83-6, over.Player2Score)
	assert.Equal(t, Player1Win, over.Winner)

	g.Player1Last = mustPiece(t, "X5")
	assert.Equal(t, 89+15, g.finish().Player1Score)
}

func TestDecide(t *testing.T) {
	assert.Equal(t, Player1Win, Decide(10, 9))
	assert.Equal(t, Player2Win, Decide(9, 10))
	assert.Equal(t, Draw, Decide(10, 10))
}

func TestHashTracksSideAndPools(t *testing.T) {
	g := NewGame()
	other := g
	other.NowPlayer = Player2
	assert.NotEqual(t, g.Hash(), other.Hash())

	other = g
	other.Player2Pool = other.Player2Pool.Remove(Monomino)
	assert.NotEqual(t, g.Hash(), other.Hash())

	next, err := g.Apply(g.Moves()[0])
	require.NoError(t, err)
	assert.NotEqual(t, g.Hash(), next.Hash())
	assert.Equal(t, next.Hash(), next.Hash())
}

func TestGameString(t *testing.T) {
	g := NewGame()
	next, err := g.Apply(g.Moves()[0])
	require.NoError(t, err)

	str := fmt.Sprint(next)
	assert.True(t, strings.HasPrefix(str, "step 1, Player2 to move, Player1 1, Player2 0\n"), str)
	assert.True(t, strings.HasSuffix(str, next.Board.String()))

	over := next.finish()
	assert.Contains(t, over.String(), "game over, winner Player1")
}

func poolOf(t *testing.T, ids ...string) (p Pool) {
	for _, id := range ids {
		p |= 1 << mustPiece(t, id)
	}
	return p
}
