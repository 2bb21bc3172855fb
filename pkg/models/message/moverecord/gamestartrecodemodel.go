package moverecord

import (
	"context"

	"github.com/HuXin0817/blokus-duo/pkg/models/message"
	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
)

var _ GameStartRecodeModel = (*customGameStartRecodeModel)(nil)

type (
	// GameStartRecodeModel stores the settings a game was started with.
	GameStartRecodeModel interface {
		gameStartRecodeModel
		FindByGame(ctx context.Context, uid message.GameUid) (*GameStartRecode, error)
	}

	customGameStartRecodeModel struct {
		*defaultGameStartRecodeModel
	}
)

// NewGameStartRecodeModel opens collection in db, normally GameStartRecodeCollectionName.
func NewGameStartRecodeModel(url, db, collection string) GameStartRecodeModel {
	conn := mon.MustNewModel(url, db, collection)
	return &customGameStartRecodeModel{
		defaultGameStartRecodeModel: newDefaultGameStartRecodeModel(conn),
	}
}

func (m *customGameStartRecodeModel) FindByGame(ctx context.Context, uid message.GameUid) (*GameStartRecode, error) {
	var data GameStartRecode
	if err := m.conn.FindOne(ctx, &data, bson.M{"gameUid": uid}); err != nil {
		return nil, err
	}
	return &data, nil
}
