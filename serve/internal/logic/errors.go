package logic

import (
	"errors"

	"github.com/HuXin0817/blokus-duo/pkg/models/chess"
)

var (
	ErrDepthOutOfRange = errors.New("search depth out of range")
	ErrQueueDisabled   = errors.New("task queue is not configured")
	ErrInvalidGameUid  = errors.New("invalid game uid")
	ErrInvalidGame     = errors.New("invalid game: unknown player to move")
	ErrRecordDisabled  = errors.New("game records are not configured")
	ErrGameNotFound    = errors.New("game not found")
)

func checkGame(g chess.Game) error {
	if g.NowPlayer != chess.Player1 && g.NowPlayer != chess.Player2 {
		return ErrInvalidGame
	}
	return nil
}
