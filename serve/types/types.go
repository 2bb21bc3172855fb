package types

import (
	"github.com/HuXin0817/blokus-duo/pkg/models/chess"
	"github.com/HuXin0817/blokus-duo/pkg/models/message"
)

type StartGameRequest struct {
	AI1   bool `json:"ai1"`
	AI2   bool `json:"ai2"`
	Depth int  `json:"depth,omitempty"`
}

type StartGameResponse struct {
	GameUid message.GameUid `json:"gameUid"`
	Game    chess.Game      `json:"game"`
	Queued  int             `json:"queued"`
}

type MovesRequest struct {
	Game chess.Game `json:"game"`
}

type MovesResponse struct {
	Moves []chess.Move `json:"moves"`
	Count int          `json:"count"`
}

type PlayMoveRequest struct {
	GameUid message.GameUid `json:"gameUid"`
	Game    chess.Game      `json:"game"`
	Move    chess.Move      `json:"move"`
	AI1     bool            `json:"ai1"`
	AI2     bool            `json:"ai2"`
	Depth   int             `json:"depth,omitempty"`
}

type PlayMoveResponse struct {
	Game chess.Game `json:"game"`
	// Passed is set when the opponent had no legal move and the turn came straight back.
	Passed bool `json:"passed"`
	Queued int  `json:"queued"`
}

type BestMoveRequest struct {
	Game  chess.Game `json:"game"`
	Depth int        `json:"depth,omitempty"`
}

type BestMoveResponse struct {
	Move      *chess.Move `json:"move,omitempty"`
	Pass      bool        `json:"pass"`
	Depth     int         `json:"depth"`
	Nodes     int         `json:"nodes"`
	TableHits int         `json:"tableHits"`
	Cutoffs   int         `json:"cutoffs"`
	ElapsedMs int64       `json:"elapsedMs"`
}

type AnalysisRequest struct {
	GameUid message.GameUid `json:"gameUid"`
	Game    chess.Game      `json:"game"`
	Depth   int             `json:"depth,omitempty"`
	// Requeue sends the root moves no worker has scored yet back to the queue.
	Requeue bool `json:"requeue"`
}

type AnalysisResponse struct {
	Scored int         `json:"scored"`
	Total  int         `json:"total"`
	Best   *chess.Move `json:"best,omitempty"`
	Score  float64     `json:"score"`
	Queued int         `json:"queued"`
}

type HistoryRequest struct {
	GameUid message.GameUid `json:"gameUid"`
}

type HistoryMove struct {
	Step         int            `json:"step"`
	Player       string         `json:"player"`
	Piece        string         `json:"piece"`
	Rotation     chess.Rotation `json:"rotation"`
	Mirrored     bool           `json:"mirrored"`
	Row          int            `json:"row"`
	Col          int            `json:"col"`
	Player1Score int            `json:"player1Score"`
	Player2Score int            `json:"player2Score"`
	NowPlayer    string         `json:"nowPlayer"`
}

type HistoryResponse struct {
	GameUid message.GameUid `json:"gameUid"`
	AI1     bool            `json:"ai1"`
	AI2     bool            `json:"ai2"`
	Depth   int             `json:"depth"`
	Moves   []HistoryMove   `json:"moves"`
	// Over is false while no end record exists; Winner and the scores are empty then.
	Over         bool   `json:"over"`
	Winner       string `json:"winner,omitempty"`
	Player1Score int    `json:"player1Score"`
	Player2Score int    `json:"player2Score"`
}
