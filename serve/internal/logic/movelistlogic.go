package logic

import (
	"context"

	"github.com/HuXin0817/blokus-duo/pkg/models/chess"
	"github.com/HuXin0817/blokus-duo/serve/internal/svc"
	"github.com/HuXin0817/blokus-duo/serve/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type MoveListLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewMoveListLogic(ctx context.Context, svcCtx *svc.ServiceContext) *MoveListLogic {
	return &MoveListLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *MoveListLogic) MoveList(req *types.MovesRequest) (*types.MovesResponse, error) {
	if err := checkGame(req.Game); err != nil {
		return nil, err
	}

	if req.Game.GameOver {
		return &types.MovesResponse{Moves: []chess.Move{}}, nil
	}

	moves := chess.GenerateMoves(req.Game)
	if moves == nil {
		moves = []chess.Move{}
	}

	return &types.MovesResponse{
		Moves: moves,
		Count: len(moves),
	}, nil
}
