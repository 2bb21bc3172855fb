package moverecord

import (
	"context"

	"github.com/HuXin0817/blokus-duo/pkg/models/message"
	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
)

var _ GameEndRecodeModel = (*customGameEndRecodeModel)(nil)

type (
	// GameEndRecodeModel stores the adjusted final scores; a game still running has none.
	GameEndRecodeModel interface {
		gameEndRecodeModel
		FindByGame(ctx context.Context, uid message.GameUid) (*GameEndRecode, error)
	}

	customGameEndRecodeModel struct {
		*defaultGameEndRecodeModel
	}
)

func NewGameEndRecodeModel(url, db, collection string) GameEndRecodeModel {
	conn := mon.MustNewModel(url, db, collection)
	return &customGameEndRecodeModel{
		defaultGameEndRecodeModel: newDefaultGameEndRecodeModel(conn),
	}
}

// FindByGame returns ErrNotFound until the game is over.
func (m *customGameEndRecodeModel) FindByGame(ctx context.Context, uid message.GameUid) (*GameEndRecode, error) {
	var data GameEndRecode
	if err := m.conn.FindOne(ctx, &data, bson.M{"gameUid": uid}); err != nil {
		return nil, err
	}
	return &data, nil
}
