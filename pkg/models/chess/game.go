package chess

import (
	"errors"
	"fmt"
)

var (
	ErrGameOver         = errors.New("game is over")
	ErrNotYourTurn      = errors.New("not this player's turn")
	ErrPieceUnavailable = errors.New("piece is not in the player's pool")
	ErrIllegalMove      = errors.New("illegal placement")
)

type Turn int8

const (
	Empty   Turn = 0
	Player1 Turn = 1
	Player2 Turn = -1
)

func (t Turn) String() string {
	switch t {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	}
	return ""
}

type Winner int8

const (
	NoWinner Winner = iota
	Player1Win
	Player2Win
	Draw
)

func (w Winner) String() string {
	switch w {
	case Player1Win:
		return Player1.String()
	case Player2Win:
		return Player2.String()
	case Draw:
		return "Draw"
	}
	return ""
}

// Game is an immutable snapshot: every transition returns a new value.
type Game struct {
	Board        Board  `json:"board"`
	Player1Pool  Pool   `json:"player1Pool"`
	Player2Pool  Pool   `json:"player2Pool"`
	NowPlayer    Turn   `json:"nowPlayer"`
	Player1Score int    `json:"player1Score"`
	Player2Score int    `json:"player2Score"`
	GameOver     bool   `json:"gameOver"`
	Winner       Winner `json:"winner"`
	Player1Last  Piece  `json:"player1Last"`
	Player2Last  Piece  `json:"player2Last"`
}

func NewGame() Game {
	return Game{
		Player1Pool: FullPool,
		Player2Pool: FullPool,
		NowPlayer:   Player1,
		Player1Last: NoPiece,
		Player2Last: NoPiece,
	}
}

func (g Game) String() string {
	status := fmt.Sprintf("%s to move", g.NowPlayer)
	if g.GameOver {
		status = fmt.Sprintf("game over, winner %s", g.Winner)
	}
	return fmt.Sprintf("step %d, %s, %s %d, %s %d\n%s",
		g.StepCount(), status, Player1, g.Player1Score, Player2, g.Player2Score, g.Board)
}

func (g Game) Pool(t Turn) Pool {
	if t == Player2 {
		return g.Player2Pool
	}
	return g.Player1Pool
}

func (g Game) Score(t Turn) int {
	if t == Player2 {
		return g.Player2Score
	}
	return g.Player1Score
}

func (g Game) LastPiece(t Turn) Piece {
	if t == Player2 {
		return g.Player2Last
	}
	return g.Player1Last
}

// FirstMove reports whether t has not placed anything yet.
func (g Game) FirstMove(t Turn) bool {
	return g.Pool(t).Full()
}

// StepCount is the number of pieces placed by both players.
func (g Game) StepCount() int {
	return 2*PiecesCount - g.Player1Pool.Len() - g.Player2Pool.Len()
}

// Validate explains why m cannot be applied, or returns nil.
func (g Game) Validate(m Move) error {
	switch {
	case g.GameOver:
		return ErrGameOver
	case m.Player != g.NowPlayer:
		return ErrNotYourTurn
	case !m.Piece.Valid():
		return ErrUnknownPiece
	case !g.Pool(m.Player).Has(m.Piece):
		return fmt.Errorf("%w: %s", ErrPieceUnavailable, m.Piece)
	case !m.Rotation.Valid():
		return fmt.Errorf("%w: rotation %d", ErrIllegalMove, m.Rotation)
	case !IsLegal(g.Board, m.Shape(), m.Row, m.Col, m.Player, g.FirstMove(m.Player)):
		return fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}
	return nil
}

// Apply validates m, places it and settles whose turn it is, ending the game when nobody can move.
func (g Game) Apply(m Move) (Game, error) {
	if err := g.Validate(m); err != nil {
		return g, err
	}
	return g.Place(m).settle(), nil
}

// Place stamps m onto a copy of g without validation or turn settling: the mover's pool loses the
// piece, running scores are recounted and the other player is to move. Search expands nodes with it.
// A piece missing from the mover's pool is a broken invariant and panics.
func (g Game) Place(m Move) Game {
	if !g.Pool(m.Player).Has(m.Piece) {
		panic(fmt.Sprintf("chess: %s does not hold %s", m.Player, m.Piece))
	}

	g.Board = g.Board.Place(m.Shape(), m.Row, m.Col, m.Player)
	switch m.Player {
	case Player1:
		g.Player1Pool = g.Player1Pool.Remove(m.Piece)
		g.Player1Last = m.Piece
	case Player2:
		g.Player2Pool = g.Player2Pool.Remove(m.Piece)
		g.Player2Last = m.Piece
	}

	g.Player1Score = PlacedCellCount(g.Board, Player1)
	g.Player2Score = PlacedCellCount(g.Board, Player2)
	g.NowPlayer = -m.Player
	return g
}

// settle keeps the turn when the active player can move, passes it when only the
// other player can, and finishes the game when neither can.
func (g Game) settle() Game {
	if g.HasMoves(g.NowPlayer) {
		return g
	}

	if g.HasMoves(-g.NowPlayer) {
		g.NowPlayer = -g.NowPlayer
		return g
	}

	return g.finish()
}

func (g Game) finish() Game {
	g.Player1Score = FinalScore(g.Board, g.Player1Pool, g.Player1Last, Player1)
	g.Player2Score = FinalScore(g.Board, g.Player2Pool, g.Player2Last, Player2)
	g.GameOver = true
	g.Winner = Decide(g.Player1Score, g.Player2Score)
	return g
}
