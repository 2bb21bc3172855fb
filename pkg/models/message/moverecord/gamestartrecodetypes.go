package moverecord

import (
	"time"

	"github.com/HuXin0817/blokus-duo/pkg/models/message"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GameStartRecode struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid message.GameUid `bson:"gameUid"`
	AI1     bool            `bson:"ai1"`
	AI2     bool            `bson:"ai2"`
	Depth   int             `bson:"depth"`
}
