package message

import (
	"github.com/HuXin0817/blokus-duo/pkg/models/chess"
	"github.com/bytedance/sonic"
)

// AssessMessageKey names the redis set collecting root move scores of one position.
type AssessMessageKey struct {
	GameUid
	Step int
}

func (a AssessMessageKey) String() string {
	str, _ := sonic.MarshalString(a)
	return "assess:" + str
}

// AssessMessageValue is one scored root move. Order is the move's index in
// assess.OrderedMoves and breaks ties between equal scores.
type AssessMessageValue struct {
	Move  chess.Move
	Order int
	Score float64
}

func NewAssessMessageValue(s string) (newAssessMessageValue AssessMessageValue, err error) {
	err = sonic.UnmarshalString(s, &newAssessMessageValue)
	return
}

func (a AssessMessageValue) String() string {
	str, _ := sonic.MarshalString(a)
	return str
}

// Better reports whether a should be preferred over b.
func (a AssessMessageValue) Better(b AssessMessageValue) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Order < b.Order
}

// BestAssessMessageValue picks the preferred value among encoded members; ok is false when none decode.
func BestAssessMessageValue(members []string) (best AssessMessageValue, ok bool) {
	for _, m := range members {
		v, err := NewAssessMessageValue(m)
		if err != nil {
			continue
		}
		if !ok || v.Better(best) {
			best, ok = v, true
		}
	}
	return
}

// MovingHasBeenAssessedKey marks a root move as already scored.
type MovingHasBeenAssessedKey struct {
	GameUid
	Step  int
	Order int
}

func (m MovingHasBeenAssessedKey) String() string {
	s, _ := sonic.MarshalString(m)
	return "assessed:" + s
}
