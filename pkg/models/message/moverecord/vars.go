package moverecord

import (
	"errors"

	"github.com/zeromicro/go-zero/core/stores/mon"
)

// Collections shared by every game; documents carry their game's uid.
const (
	GameStartRecodeCollectionName = "game_start_recode"
	MoveRecodeCollectionName      = "move_recode"
	GameEndRecodeCollectionName   = "game_end_recode"
)

var (
	ErrNotFound        = mon.ErrNotFound
	ErrInvalidObjectId = errors.New("invalid objectId")
)
