package logic

import (
	"context"

	"github.com/HuXin0817/blokus-duo/pkg/assess"
	"github.com/HuXin0817/blokus-duo/pkg/models/chess"
	"github.com/HuXin0817/blokus-duo/serve/internal/svc"
	"github.com/HuXin0817/blokus-duo/serve/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type BestMoveLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewBestMoveLogic(ctx context.Context, svcCtx *svc.ServiceContext) *BestMoveLogic {
	return &BestMoveLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// BestMove runs the search in-process. A pass is reported when the player to move has no legal move.
func (l *BestMoveLogic) BestMove(req *types.BestMoveRequest) (*types.BestMoveResponse, error) {
	if err := checkGame(req.Game); err != nil {
		return nil, err
	}

	if req.Game.GameOver {
		return nil, chess.ErrGameOver
	}

	depth, err := searchDepth(l.svcCtx.Config, req.Depth)
	if err != nil {
		return nil, err
	}

	var stats assess.Stats
	move, ok := assess.FindBestMove(req.Game, depth,
		assess.WithStats(&stats),
		assess.WithTableLimit(l.svcCtx.Config.Search.TableLimit),
	)

	l.Infof("searched %d root moves at depth %d: %d nodes, %d table hits, %d cutoffs in %s",
		stats.RootMoves, depth, stats.Nodes, stats.TableHits, stats.Cutoffs, stats.Elapsed)

	resp := &types.BestMoveResponse{
		Pass:      !ok,
		Depth:     depth,
		Nodes:     stats.Nodes,
		TableHits: stats.TableHits,
		Cutoffs:   stats.Cutoffs,
		ElapsedMs: stats.Elapsed.Milliseconds(),
	}
	if ok {
		resp.Move = &move
	}

	return resp, nil
}
