package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/HuXin0817/blokus-duo/pkg/models/chess"
	"github.com/HuXin0817/blokus-duo/serve/internal/config"
	"github.com/HuXin0817/blokus-duo/serve/internal/svc"
	"github.com/HuXin0817/blokus-duo/serve/types"
	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() *svc.ServiceContext {
	var c config.Config
	c.Search.DefaultDepth = 1
	c.Search.MaxDepth = 2
	return svc.NewServiceContext(c)
}

func post(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h(w, r)
	return w
}

func openingBody(t *testing.T, piece string) string {
	t.Helper()
	game, err := sonic.MarshalString(chess.NewGame())
	require.NoError(t, err)
	return fmt.Sprintf(`{"game":%s,"move":{"piece":%q,"player":1,"rotation":0,"mirrored":false,"row":4,"col":4}}`, game, piece)
}

func TestPlayMoveHandlerDecodesPieceCodes(t *testing.T) {
	w := post(t, PlayMoveHandler(testContext()), openingBody(t, "I1"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp types.PlayMoveResponse
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, chess.Player1, resp.Game.Board[4][4])
	assert.Equal(t, chess.Player2, resp.Game.NowPlayer)
	assert.Equal(t, chess.Monomino, resp.Game.Player1Last)
	assert.False(t, resp.Game.Player1Pool.Has(chess.Monomino))
	assert.True(t, resp.Game.Player2Pool.Full())
	assert.Contains(t, w.Body.String(), `"player1Last":"I1"`)
}

func TestPlayMoveHandlerRejectsUnknownPiece(t *testing.T) {
	w := post(t, PlayMoveHandler(testContext()), openingBody(t, "Q9"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlayMoveHandlerRejectsIllegalMove(t *testing.T) {
	body := strings.Replace(openingBody(t, "I1"), `"row":4`, `"row":0`, 1)
	w := post(t, PlayMoveHandler(testContext()), body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), chess.ErrIllegalMove.Error())
}

func TestMoveListHandler(t *testing.T) {
	game, err := sonic.MarshalString(chess.NewGame())
	require.NoError(t, err)

	w := post(t, MoveListHandler(testContext()), fmt.Sprintf(`{"game":%s}`, game))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp types.MovesResponse
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, len(chess.GenerateMoves(chess.NewGame())), resp.Count)
	assert.Equal(t, chess.GenerateMoves(chess.NewGame())[0], resp.Moves[0])
}

func TestBestMoveHandlerRejectsDepth(t *testing.T) {
	game, err := sonic.MarshalString(chess.NewGame())
	require.NoError(t, err)

	w := post(t, BestMoveHandler(testContext()), fmt.Sprintf(`{"game":%s,"depth":9}`, game))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMalformedBody(t *testing.T) {
	w := post(t, StartGameHandler(testContext()), `{"ai1":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
