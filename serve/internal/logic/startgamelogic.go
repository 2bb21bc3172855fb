package logic

import (
	"context"

	"github.com/HuXin0817/blokus-duo/pkg/models/chess"
	"github.com/HuXin0817/blokus-duo/pkg/models/message"
	"github.com/HuXin0817/blokus-duo/serve/internal/svc"
	"github.com/HuXin0817/blokus-duo/serve/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type StartGameLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewStartGameLogic(ctx context.Context, svcCtx *svc.ServiceContext) *StartGameLogic {
	return &StartGameLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *StartGameLogic) StartGame(req *types.StartGameRequest) (*types.StartGameResponse, error) {
	depth, err := searchDepth(l.svcCtx.Config, req.Depth)
	if err != nil {
		return nil, err
	}

	resp := &types.StartGameResponse{
		GameUid: message.NewGameUid(),
		Game:    chess.NewGame(),
	}

	if err = RecordGameStart(l.ctx, l.svcCtx, resp.GameUid, req.AI1, req.AI2, depth); err != nil {
		return nil, err
	}

	if l.svcCtx.QueueEnabled() && aiToMove(resp.Game, req.AI1, req.AI2) {
		if resp.Queued, err = EnqueueRootMoves(l.svcCtx, resp.GameUid, resp.Game, depth, nil); err != nil {
			return nil, err
		}
	}

	l.Infof("game %s started, ai1=%t ai2=%t depth=%d", resp.GameUid, req.AI1, req.AI2, depth)
	return resp, nil
}
