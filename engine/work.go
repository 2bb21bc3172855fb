package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/HuXin0817/blokus-duo/pkg/assess"
	"github.com/HuXin0817/blokus-duo/pkg/models/message"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

const rollBackAttempts = 20

func (e *Engine) RollBack(t, m string) {
	for range rollBackAttempts {
		if _, err := e.RedisClient.Rpush(t, m); err == nil {
			return
		}
		time.Sleep(time.Second / 2)
	}

	logx.Errorf("lost task after %d attempts: %s", rollBackAttempts, m)
}

// OnceIntervalWorking drains the partition it owns, then releases it.
func (e *Engine) OnceIntervalWorking(ctx context.Context, NowTopic message.RedisPartition) (err error) {
	logx.Infof("start working at partition %d", NowTopic)

	defer func() {
		if _, delErr := e.RedisClient.Del(NowTopic.OwnerKey()); delErr != nil && err == nil {
			err = delErr
		}
	}()

	for ctx.Err() == nil {
		if err = e.RedisClient.Expire(NowTopic.OwnerKey(), OnceWorkingTime); err != nil {
			return err
		}

		l, err := e.RedisClient.Llen(NowTopic.ListKey())
		if err != nil || l == 0 {
			return err
		}

		m, err := e.RedisClient.Rpop(NowTopic.ListKey())
		if errors.Is(err, redis.Nil) {
			return nil
		}

		if err != nil {
			return err
		}

		if m == "" {
			continue
		}

		if err = e.assess(m); err != nil {
			e.RollBack(NowTopic.ListKey(), m)
			return err
		}
	}

	return nil
}

func (e *Engine) assess(m string) error {
	task, err := message.NewAssessTaskMessage(m)
	if err != nil {
		logx.Errorf("drop undecodable task %q: %v", m, err)
		return nil
	}

	assessedKey := task.AssessedKey()
	done, err := e.RedisClient.Exists(assessedKey.String())
	if err != nil {
		return err
	}

	if done {
		return nil
	}

	nowStep, err := e.RedisClient.Get(task.GameUid.StepKey())
	if err != nil {
		return err
	}

	if nowStep != message.StepValue(task.Step) {
		logx.Infof("skip stale task of game %s step %d", task.GameUid, task.Step)
		return nil
	}

	var stats assess.Stats
	value := message.AssessMessageValue{
		Move:  task.Move,
		Order: task.Order,
		Score: assess.ScoreMove(task.Game, task.Move, task.Depth,
			assess.WithStats(&stats),
			assess.WithTableLimit(e.TableLimit),
		),
	}
	logx.Infof("=> game %s step %d order %d scored %v (%d nodes in %s, queued %s ago)",
		task.GameUid, task.Step, task.Order, value.Score, stats.Nodes, stats.Elapsed, task.TimeStamp.Age(time.Now()))

	e.Pusher.AddMessages(AssessMessage{
		AssessMessageKey:   task.Key(),
		AssessMessageValue: value,
	})

	return e.RedisClient.Setex(assessedKey.String(), fmt.Sprint(value.Score), SetExpireTime)
}
