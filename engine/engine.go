package main

import (
	"context"
	"errors"
	"time"

	"github.com/HuXin0817/blokus-duo/pkg/models/pusher"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"golang.org/x/sync/errgroup"
)

const (
	OnceWorkingTime = 180                 // second
	SetExpireTime   = OnceWorkingTime * 3 // second
	idleInterval    = time.Second
)

// Engine scores root moves queued by serve and publishes them to per-step result sets.
type Engine struct {
	RedisClient *redis.Redis
	Pusher      *pusher.Pusher[AssessMessage]
	TableLimit  int
}

func NewEngine(rds *redis.Redis, tableLimit int) *Engine {
	e := &Engine{
		RedisClient: rds,
		TableLimit:  tableLimit,
	}

	e.Pusher = pusher.NewPusher(
		pusher.WithPushInterval[AssessMessage](time.Second),
		pusher.WithPushLogic(e.push),
	)
	return e
}

func (e *Engine) Start() {
	e.Pusher.Start()
}

func (e *Engine) Stop() {
	e.Pusher.Stop()
}

// Run serves with workers consumers until ctx is done or one of them fails.
// Cancelling ctx is a clean stop and returns nil.
func (e *Engine) Run(ctx context.Context, workers int) error {
	eg, workCtx := errgroup.WithContext(ctx)
	for i := range workers {
		eg.Go(func() error {
			logx.Infof("worker %d started", i)
			return e.Serve(workCtx)
		})
	}

	err := eg.Wait()
	if ctx.Err() != nil && errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

// Serve claims free partitions and drains them until ctx is done.
func (e *Engine) Serve(ctx context.Context) error {
	for {
		topic, err := e.GetFreeTopic(ctx)
		if err != nil {
			return err
		}

		if err = e.OnceIntervalWorking(ctx, topic); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(idleInterval):
		}
	}
}
