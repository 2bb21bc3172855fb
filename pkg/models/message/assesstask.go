package message

import (
	"github.com/HuXin0817/blokus-duo/pkg/models/chess"
	"github.com/bytedance/sonic"
)

// AssessTaskMessage asks a worker to score one root move of Game at Depth.
type AssessTaskMessage struct {
	TimeStamp
	GameUid
	Step  int
	Depth int
	Order int
	Game  chess.Game
	Move  chess.Move
}

func NewAssessTaskMessage(str string) (newAssessTaskMessage AssessTaskMessage, err error) {
	err = sonic.UnmarshalString(str, &newAssessTaskMessage)
	return
}

func (m AssessTaskMessage) String() string {
	str, _ := sonic.MarshalString(m)
	return str
}

func (m AssessTaskMessage) Key() AssessMessageKey {
	return AssessMessageKey{GameUid: m.GameUid, Step: m.Step}
}

func (m AssessTaskMessage) AssessedKey() MovingHasBeenAssessedKey {
	return MovingHasBeenAssessedKey{GameUid: m.GameUid, Step: m.Step, Order: m.Order}
}
