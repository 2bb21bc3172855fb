package logic

import (
	"context"
	"sort"
	"sync"

	"github.com/HuXin0817/blokus-duo/pkg/models/message"
	"github.com/HuXin0817/blokus-duo/pkg/models/message/moverecord"
	"github.com/HuXin0817/blokus-duo/serve/internal/svc"
	"go.mongodb.org/mongo-driver/mongo"
)

// memoryRecords keeps game records in memory behind the moverecord model interfaces.
type memoryRecords struct {
	mu     sync.Mutex
	starts []moverecord.GameStartRecode
	moves  []moverecord.MoveRecode
	ends   []moverecord.GameEndRecode
}

func (r *memoryRecords) attach(svcCtx *svc.ServiceContext) {
	svcCtx.GameStartModel = startModel{r}
	svcCtx.MoveModel = moveModel{r}
	svcCtx.GameEndModel = endModel{r}
}

type (
	startModel struct{ *memoryRecords }
	moveModel  struct{ *memoryRecords }
	endModel   struct{ *memoryRecords }
)

func (startModel) FindOne(context.Context, string) (*moverecord.GameStartRecode, error) {
	return nil, moverecord.ErrNotFound
}

func (startModel) Update(context.Context, *moverecord.GameStartRecode) (*mongo.UpdateResult, error) {
	return &mongo.UpdateResult{}, nil
}

func (startModel) Delete(context.Context, string) (int64, error) { return 0, nil }

func (m startModel) Insert(_ context.Context, data *moverecord.GameStartRecode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.starts = append(m.starts, *data)
	return nil
}

func (m startModel) FindByGame(_ context.Context, uid message.GameUid) (*moverecord.GameStartRecode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.starts {
		if s.GameUid == uid {
			return &s, nil
		}
	}
	return nil, moverecord.ErrNotFound
}

func (moveModel) FindOne(context.Context, string) (*moverecord.MoveRecode, error) {
	return nil, moverecord.ErrNotFound
}

func (moveModel) Update(context.Context, *moverecord.MoveRecode) (*mongo.UpdateResult, error) {
	return &mongo.UpdateResult{}, nil
}

func (moveModel) Delete(context.Context, string) (int64, error) { return 0, nil }

func (m moveModel) Insert(_ context.Context, data *moverecord.MoveRecode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.moves = append(m.moves, *data)
	return nil
}

func (m moveModel) FindByGame(_ context.Context, uid message.GameUid) (moves []*moverecord.MoveRecode, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, mv := range m.moves {
		if mv.GameUid == uid {
			moves = append(moves, &mv)
		}
	}
	sort.Slice(moves, func(i, j int) bool { return moves[i].Step < moves[j].Step })
	return moves, nil
}

func (endModel) FindOne(context.Context, string) (*moverecord.GameEndRecode, error) {
	return nil, moverecord.ErrNotFound
}

func (endModel) Update(context.Context, *moverecord.GameEndRecode) (*mongo.UpdateResult, error) {
	return &mongo.UpdateResult{}, nil
}

func (endModel) Delete(context.Context, string) (int64, error) { return 0, nil }

func (m endModel) Insert(_ context.Context, data *moverecord.GameEndRecode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ends = append(m.ends, *data)
	return nil
}

func (m endModel) FindByGame(_ context.Context, uid message.GameUid) (*moverecord.GameEndRecode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.ends {
		if e.GameUid == uid {
			return &e, nil
		}
	}
	return nil, moverecord.ErrNotFound
}
