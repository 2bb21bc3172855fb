package logic

import (
	"context"
	"errors"

	"github.com/HuXin0817/blokus-duo/pkg/models/chess"
	"github.com/HuXin0817/blokus-duo/pkg/models/message/moverecord"
	"github.com/HuXin0817/blokus-duo/serve/internal/svc"
	"github.com/HuXin0817/blokus-duo/serve/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type HistoryLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewHistoryLogic(ctx context.Context, svcCtx *svc.ServiceContext) *HistoryLogic {
	return &HistoryLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// History replays a recorded game: its settings, every move in order and the result once it is over.
func (l *HistoryLogic) History(req *types.HistoryRequest) (*types.HistoryResponse, error) {
	if !l.svcCtx.RecordEnabled() {
		return nil, ErrRecordDisabled
	}

	if !req.GameUid.Valid() {
		return nil, ErrInvalidGameUid
	}

	start, err := l.svcCtx.GameStartModel.FindByGame(l.ctx, req.GameUid)
	if errors.Is(err, moverecord.ErrNotFound) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, err
	}

	recodes, err := l.svcCtx.MoveModel.FindByGame(l.ctx, req.GameUid)
	if err != nil {
		return nil, err
	}

	resp := &types.HistoryResponse{
		GameUid: req.GameUid,
		AI1:     start.AI1,
		AI2:     start.AI2,
		Depth:   start.Depth,
		Moves:   make([]types.HistoryMove, 0, len(recodes)),
	}

	for _, r := range recodes {
		resp.Moves = append(resp.Moves, types.HistoryMove{
			Step:         r.Step,
			Player:       r.Player,
			Piece:        r.Piece,
			Rotation:     chess.Rotation(r.Rotation),
			Mirrored:     r.Mirrored,
			Row:          r.Row,
			Col:          r.Col,
			Player1Score: r.Player1Score,
			Player2Score: r.Player2Score,
			NowPlayer:    r.NowPlayer,
		})
	}

	end, err := l.svcCtx.GameEndModel.FindByGame(l.ctx, req.GameUid)
	switch {
	case errors.Is(err, moverecord.ErrNotFound):
	case err != nil:
		return nil, err
	default:
		resp.Over = true
		resp.Winner = end.Winner
		resp.Player1Score = end.Player1Score
		resp.Player2Score = end.Player2Score
	}

	return resp, nil
}
