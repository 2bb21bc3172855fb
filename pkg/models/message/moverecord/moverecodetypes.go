package moverecord

import (
	"time"

	"github.com/HuXin0817/blokus-duo/pkg/models/message"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MoveRecode struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid      message.GameUid `bson:"gameUid"`
	Step         int             `bson:"step"`
	Player       string          `bson:"player"`
	Piece        string          `bson:"piece"`
	Rotation     int             `bson:"rotation"`
	Mirrored     bool            `bson:"mirrored"`
	Row          int             `bson:"row"`
	Col          int             `bson:"col"`
	Player1Score int             `bson:"player1Score"`
	Player2Score int             `bson:"player2Score"`
	NowPlayer    string          `bson:"nowPlayer"`
}
