package logic

import (
	"context"

	"github.com/HuXin0817/blokus-duo/pkg/models/chess"
	"github.com/HuXin0817/blokus-duo/pkg/models/message"
	"github.com/HuXin0817/blokus-duo/pkg/models/message/moverecord"
	"github.com/HuXin0817/blokus-duo/serve/internal/svc"
)

func RecordGameStart(ctx context.Context, svcCtx *svc.ServiceContext, GameUid message.GameUid, AI1, AI2 bool, depth int) error {
	if !svcCtx.RecordEnabled() {
		return nil
	}

	recode := &moverecord.GameStartRecode{
		GameUid: GameUid,
		AI1:     AI1,
		AI2:     AI2,
		Depth:   depth,
	}

	return svcCtx.GameStartModel.Insert(ctx, recode)
}

func RecordMove(ctx context.Context, svcCtx *svc.ServiceContext, GameUid message.GameUid, m chess.Move, next chess.Game) error {
	if !svcCtx.RecordEnabled() {
		return nil
	}

	recode := &moverecord.MoveRecode{
		GameUid:      GameUid,
		Step:         next.StepCount(),
		Player:       m.Player.String(),
		Piece:        m.Piece.ID(),
		Rotation:     int(m.Rotation),
		Mirrored:     m.Mirrored,
		Row:          m.Row,
		Col:          m.Col,
		Player1Score: next.Player1Score,
		Player2Score: next.Player2Score,
		NowPlayer:    next.NowPlayer.String(),
	}

	return svcCtx.MoveModel.Insert(ctx, recode)
}

func RecordGameEnd(ctx context.Context, svcCtx *svc.ServiceContext, GameUid message.GameUid, g chess.Game) error {
	if !svcCtx.RecordEnabled() {
		return nil
	}

	recode := &moverecord.GameEndRecode{
		GameUid:      GameUid,
		Winner:       g.Winner.String(),
		Player1Score: g.Player1Score,
		Player2Score: g.Player2Score,
	}

	return svcCtx.GameEndModel.Insert(ctx, recode)
}
