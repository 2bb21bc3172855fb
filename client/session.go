package main

import (
	"context"

	"github.com/HuXin0817/blokus-duo/pkg/assess"
	"github.com/HuXin0817/blokus-duo/pkg/models/chess"
)

// Session owns the authoritative game transitions.
type Session interface {
	Start(ctx context.Context) (chess.Game, error)
	Play(ctx context.Context, g chess.Game, m chess.Move) (chess.Game, error)
	BestMove(ctx context.Context, g chess.Game, depth int, progress func(done, total int)) (chess.Move, bool, error)
}

// LocalSession plays in-process.
type LocalSession struct{}

func (LocalSession) Start(context.Context) (chess.Game, error) {
	return chess.NewGame(), nil
}

func (LocalSession) Play(_ context.Context, g chess.Game, m chess.Move) (chess.Game, error) {
	return g.Apply(m)
}

func (LocalSession) BestMove(_ context.Context, g chess.Game, depth int, progress func(done, total int)) (chess.Move, bool, error) {
	m, ok := assess.FindBestMove(g, depth, assess.WithProgress(progress))
	return m, ok, nil
}
