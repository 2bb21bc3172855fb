package logic

import (
	"context"

	"github.com/HuXin0817/blokus-duo/pkg/assess"
	"github.com/HuXin0817/blokus-duo/pkg/models/message"
	"github.com/HuXin0817/blokus-duo/serve/internal/svc"
	"github.com/HuXin0817/blokus-duo/serve/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type AnalysisLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewAnalysisLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AnalysisLogic {
	return &AnalysisLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// Analysis reports the root moves of the current step scored by engine workers so far.
func (l *AnalysisLogic) Analysis(req *types.AnalysisRequest) (*types.AnalysisResponse, error) {
	if !l.svcCtx.QueueEnabled() {
		return nil, ErrQueueDisabled
	}

	if !req.GameUid.Valid() {
		return nil, ErrInvalidGameUid
	}

	if err := checkGame(req.Game); err != nil {
		return nil, err
	}

	key := message.AssessMessageKey{
		GameUid: req.GameUid,
		Step:    req.Game.StepCount(),
	}

	members, err := l.svcCtx.RedisClient.Smembers(key.String())
	if err != nil {
		return nil, err
	}

	resp := &types.AnalysisResponse{
		Total: len(assess.OrderedMoves(req.Game)),
	}

	scored := make(map[int]bool)
	for _, m := range members {
		v, err := message.NewAssessMessageValue(m)
		if err != nil {
			l.Errorf("drop undecodable result %q: %v", m, err)
			continue
		}
		scored[v.Order] = true
	}
	resp.Scored = len(scored)

	if best, ok := message.BestAssessMessageValue(members); ok {
		resp.Best = &best.Move
		resp.Score = best.Score
	}

	if req.Requeue && resp.Scored < resp.Total {
		depth, err := searchDepth(l.svcCtx.Config, req.Depth)
		if err != nil {
			return nil, err
		}

		if resp.Queued, err = EnqueueRootMoves(l.svcCtx, req.GameUid, req.Game, depth, scored); err != nil {
			return nil, err
		}
	}

	return resp, nil
}
