package moverecord

import (
	"context"

	"github.com/HuXin0817/blokus-duo/pkg/models/message"
	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ MoveRecodeModel = (*customMoveRecodeModel)(nil)

type (
	// MoveRecodeModel stores one document per applied move.
	MoveRecodeModel interface {
		moveRecodeModel
		FindByGame(ctx context.Context, uid message.GameUid) ([]*MoveRecode, error)
	}

	customMoveRecodeModel struct {
		*defaultMoveRecodeModel
	}
)

func NewMoveRecodeModel(url, db, collection string) MoveRecodeModel {
	conn := mon.MustNewModel(url, db, collection)
	return &customMoveRecodeModel{
		defaultMoveRecodeModel: newDefaultMoveRecodeModel(conn),
	}
}

// FindByGame returns the moves of one game in play order.
func (m *customMoveRecodeModel) FindByGame(ctx context.Context, uid message.GameUid) ([]*MoveRecode, error) {
	var data []*MoveRecode
	opts := options.Find().SetSort(bson.D{{Key: "step", Value: 1}})
	if err := m.conn.Find(ctx, &data, bson.M{"gameUid": uid}, opts); err != nil {
		return nil, err
	}
	return data, nil
}
