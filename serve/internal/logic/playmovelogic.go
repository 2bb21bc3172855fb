package logic

import (
	"context"

	"github.com/HuXin0817/blokus-duo/serve/internal/svc"
	"github.com/HuXin0817/blokus-duo/serve/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type PlayMoveLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewPlayMoveLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PlayMoveLogic {
	return &PlayMoveLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *PlayMoveLogic) PlayMove(req *types.PlayMoveRequest) (*types.PlayMoveResponse, error) {
	if err := checkGame(req.Game); err != nil {
		return nil, err
	}

	if req.GameUid != "" && !req.GameUid.Valid() {
		return nil, ErrInvalidGameUid
	}

	next, err := req.Game.Apply(req.Move)
	if err != nil {
		return nil, err
	}

	resp := &types.PlayMoveResponse{
		Game:   next,
		Passed: !next.GameOver && next.NowPlayer == req.Move.Player,
	}

	if req.GameUid == "" {
		return resp, nil
	}

	if err = RecordMove(l.ctx, l.svcCtx, req.GameUid, req.Move, next); err != nil {
		return nil, err
	}

	if next.GameOver {
		l.Infof("game %s over: %s, %d to %d", req.GameUid, next.Winner, next.Player1Score, next.Player2Score)
		if err = RecordGameEnd(l.ctx, l.svcCtx, req.GameUid, next); err != nil {
			return nil, err
		}

		if l.svcCtx.QueueEnabled() {
			if _, err = l.svcCtx.RedisClient.Del(req.GameUid.StepKey()); err != nil {
				return nil, err
			}
		}

		return resp, nil
	}

	if l.svcCtx.QueueEnabled() && aiToMove(next, req.AI1, req.AI2) {
		depth, err := searchDepth(l.svcCtx.Config, req.Depth)
		if err != nil {
			return nil, err
		}

		if resp.Queued, err = EnqueueRootMoves(l.svcCtx, req.GameUid, next, depth, nil); err != nil {
			return nil, err
		}
	}

	return resp, nil
}
