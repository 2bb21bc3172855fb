package moverecord

import (
	"time"

	"github.com/HuXin0817/blokus-duo/pkg/models/message"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GameEndRecode struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid      message.GameUid `bson:"gameUid"`
	Winner       string          `bson:"winner"`
	Player1Score int             `bson:"player1Score"`
	Player2Score int             `bson:"player2Score"`
}
