package main

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/HuXin0817/blokus-duo/pkg/models/chess"
	"github.com/HuXin0817/blokus-duo/serve/types"
	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	m, err := ParseMove("L5 90 m 4 3", chess.Player2)
	require.NoError(t, err)
	assert.Equal(t, "L5", m.Piece.ID())
	assert.Equal(t, chess.Rotate90, m.Rotation)
	assert.True(t, m.Mirrored)
	assert.Equal(t, 4, m.Row)
	assert.Equal(t, 3, m.Col)
	assert.Equal(t, chess.Player2, m.Player)

	_, err = ParseMove("L5 90 4 3", chess.Player1)
	assert.ErrorIs(t, err, ErrBadInput)
	_, err = ParseMove("Q9 0 - 4 4", chess.Player1)
	assert.ErrorIs(t, err, chess.ErrUnknownPiece)
	_, err = ParseMove("I1 0 x 4 4", chess.Player1)
	assert.ErrorIs(t, err, ErrBadInput)
}

func TestHumanPlayerRetriesInvalidInput(t *testing.T) {
	var out strings.Builder
	p := &HumanPlayer{
		Input:  bufioScanner("nonsense\nI1 0 - 0 0\nI1 0 - 4 4\n"),
		Output: &out,
	}

	m, ok, err := p.NextMove(context.Background(), chess.NewGame())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 4, m.Row)
	assert.Contains(t, out.String(), ErrBadInput.Error())
	assert.Contains(t, out.String(), chess.ErrIllegalMove.Error())
}

func TestLocalSelfPlay(t *testing.T) {
	s := LocalSession{}
	g, err := s.Start(context.Background())
	require.NoError(t, err)

	players := map[chess.Turn]Player{
		chess.Player1: &AIPlayer{Session: s, Depth: 1},
		chess.Player2: &AIPlayer{Session: s, Depth: 1},
	}

	for plies := 0; !g.GameOver; plies++ {
		require.Less(t, plies, 2*chess.PiecesCount)
		m, ok, err := players[g.NowPlayer].NextMove(context.Background(), g)
		require.NoError(t, err)
		require.True(t, ok)

		g, err = s.Play(context.Background(), g, m)
		require.NoError(t, err)
	}

	assert.NotEqual(t, chess.NoWinner, g.Winner)
	assert.Equal(t, chess.Decide(g.Player1Score, g.Player2Score), g.Winner)

	board := NewPainter(false).Board(g)
	assert.Equal(t, chess.PlacedCellCount(g.Board, chess.Player1)+chess.PlacedCellCount(g.Board, chess.Player2),
		strings.Count(board, "■"))
}

func TestRemoteBestMoveFallsBackToServe(t *testing.T) {
	g := chess.NewGame()
	want := chess.GenerateMoves(g)[3]

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/game/analysis":
			http.Error(w, "task queue is not configured", http.StatusBadRequest)
		case "/game/best-move":
			var req types.BestMoveRequest
			assert.NoError(t, sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, 2, req.Depth)
			body, _ := sonic.Marshal(types.BestMoveResponse{Move: &want, Depth: req.Depth})
			_, _ = w.Write(body)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	s := NewRemoteSession(srv.URL + "/")
	m, ok, err := s.BestMove(context.Background(), g, 2, func(int, int) {})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, m)
}

func bufioScanner(s string) *bufio.Scanner {
	return bufio.NewScanner(strings.NewReader(s))
}
