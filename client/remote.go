package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/HuXin0817/blokus-duo/pkg/models/chess"
	"github.com/HuXin0817/blokus-duo/pkg/models/message"
	"github.com/HuXin0817/blokus-duo/serve/types"
	"github.com/bytedance/sonic"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpc"
)

const (
	pollInterval = time.Second
	// requeueEvery polls, root moves that no worker picked up are queued again.
	requeueEvery = 60
)

// RemoteSession plays through serve. AI moves come from engine workers and fall back
// to an in-process search on serve when the workers are too slow or absent.
type RemoteSession struct {
	Address string
	GameUid message.GameUid
}

func NewRemoteSession(address string) *RemoteSession {
	return &RemoteSession{Address: strings.TrimRight(address, "/")}
}

func (s *RemoteSession) post(ctx context.Context, path string, req, resp any) error {
	body, err := sonic.Marshal(req)
	if err != nil {
		return err
	}

	r, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Address+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	r.Header.Set("Content-Type", "application/json")

	res, err := httpc.DoRequest(r)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: %s: %s", path, res.Status, strings.TrimSpace(string(data)))
	}

	return sonic.Unmarshal(data, resp)
}

func (s *RemoteSession) Start(ctx context.Context) (chess.Game, error) {
	var resp types.StartGameResponse
	err := s.post(ctx, "/game/start", &types.StartGameRequest{
		AI1:   bool(AI1),
		AI2:   bool(AI2),
		Depth: *Depth1Conf,
	}, &resp)
	if err != nil {
		return chess.Game{}, err
	}

	s.GameUid = resp.GameUid
	logx.Infof("=> game %s, %d root moves queued", resp.GameUid, resp.Queued)
	return resp.Game, nil
}

func (s *RemoteSession) Play(ctx context.Context, g chess.Game, m chess.Move) (chess.Game, error) {
	depth := *Depth1Conf
	if m.Player == chess.Player1 {
		depth = *Depth2Conf
	}

	var resp types.PlayMoveResponse
	err := s.post(ctx, "/game/play", &types.PlayMoveRequest{
		GameUid: s.GameUid,
		Game:    g,
		Move:    m,
		AI1:     bool(AI1),
		AI2:     bool(AI2),
		Depth:   depth,
	}, &resp)
	return resp.Game, err
}

func (s *RemoteSession) BestMove(ctx context.Context, g chess.Game, depth int, progress func(done, total int)) (chess.Move, bool, error) {
	if m, ok, err := s.collect(ctx, g, depth, progress); err == nil && ok {
		return m, true, nil
	} else if err != nil {
		logx.Infof("engine results unavailable, searching on serve: %v", err)
	}

	var resp types.BestMoveResponse
	if err := s.post(ctx, "/game/best-move", &types.BestMoveRequest{Game: g, Depth: depth}, &resp); err != nil {
		return chess.Move{}, false, err
	}

	if resp.Pass || resp.Move == nil {
		return chess.Move{}, false, nil
	}

	return *resp.Move, true, nil
}

// collect polls the engine results of g until every root move is scored or the wait runs out.
func (s *RemoteSession) collect(ctx context.Context, g chess.Game, depth int, progress func(done, total int)) (best chess.Move, ok bool, err error) {
	ctx, cancel := context.WithTimeout(ctx, *WaitConf)
	defer cancel()

	for polls := 0; ; polls++ {
		var resp types.AnalysisResponse
		err = s.post(ctx, "/game/analysis", &types.AnalysisRequest{
			GameUid: s.GameUid,
			Game:    g,
			Depth:   depth,
			Requeue: polls > 0 && polls%requeueEvery == 0,
		}, &resp)
		if err != nil {
			return best, ok, err
		}

		if resp.Best != nil {
			best, ok = *resp.Best, true
		}

		if resp.Total > 0 {
			progress(resp.Scored, resp.Total)
		}

		if resp.Scored >= resp.Total {
			return best, ok, nil
		}

		select {
		case <-ctx.Done():
			return best, false, ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}
