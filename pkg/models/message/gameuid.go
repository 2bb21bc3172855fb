package message

import (
	"strconv"

	"github.com/google/uuid"
)

type GameUid string

func NewGameUid() GameUid {
	return GameUid(uuid.New().String())
}

func (g GameUid) Valid() bool {
	_, err := uuid.Parse(string(g))
	return err == nil
}

// StepKey holds the step the game is currently at; workers drop tasks for other steps.
func (g GameUid) StepKey() string {
	return "step:" + string(g)
}

func StepValue(step int) string {
	return strconv.Itoa(step)
}
