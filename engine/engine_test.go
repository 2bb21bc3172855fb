package main

import (
	"context"
	"testing"
	"time"

	"github.com/HuXin0817/blokus-duo/pkg/assess"
	"github.com/HuXin0817/blokus-duo/pkg/models/chess"
	"github.com/HuXin0817/blokus-duo/pkg/models/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/stores/redis/redistest"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e := NewEngine(redistest.CreateRedis(t), 0)
	e.Start()
	t.Cleanup(e.Stop)
	return e
}

func queueTask(t *testing.T, e *Engine, topic message.RedisPartition, task message.AssessTaskMessage) {
	t.Helper()
	_, err := e.RedisClient.Lpush(topic.ListKey(), task.String())
	require.NoError(t, err)
}

func openingTask(uid message.GameUid, order int) message.AssessTaskMessage {
	g := chess.NewGame()
	return message.AssessTaskMessage{
		TimeStamp: message.NewTimeStamp(time.Now()),
		GameUid:   uid,
		Step:      g.StepCount(),
		Depth:     1,
		Order:     order,
		Game:      g,
		Move:      assess.OrderedMoves(g)[order],
	}
}

func TestOnceIntervalWorkingScoresTasks(t *testing.T) {
	e := newTestEngine(t)
	uid := message.NewGameUid()
	topic := message.RedisPartitions[0]
	require.NoError(t, e.RedisClient.Setex(uid.StepKey(), "0", 60))

	first, second := openingTask(uid, 0), openingTask(uid, 1)
	queueTask(t, e, topic, first)
	queueTask(t, e, topic, second)

	require.NoError(t, e.OnceIntervalWorking(context.Background(), topic))
	e.Stop()

	members, err := e.RedisClient.Smembers(first.Key().String())
	require.NoError(t, err)
	require.Len(t, members, 2)

	for _, m := range members {
		v, err := message.NewAssessMessageValue(m)
		require.NoError(t, err)
		task := []message.AssessTaskMessage{first, second}[v.Order]
		assert.Equal(t, task.Move, v.Move)
		assert.Equal(t, assess.ScoreMove(task.Game, task.Move, task.Depth), v.Score)
	}

	done, err := e.RedisClient.Exists(first.AssessedKey().String())
	require.NoError(t, err)
	assert.True(t, done)

	owner, err := e.RedisClient.Get(topic.OwnerKey())
	require.NoError(t, err)
	assert.Empty(t, owner)
}

func TestStaleTasksAreDropped(t *testing.T) {
	e := newTestEngine(t)
	uid := message.NewGameUid()
	topic := message.RedisPartitions[1]
	require.NoError(t, e.RedisClient.Setex(uid.StepKey(), "3", 60))

	task := openingTask(uid, 0)
	queueTask(t, e, topic, task)

	require.NoError(t, e.OnceIntervalWorking(context.Background(), topic))
	e.Stop()

	members, err := e.RedisClient.Smembers(task.Key().String())
	require.NoError(t, err)
	assert.Empty(t, members)

	l, err := e.RedisClient.Llen(topic.ListKey())
	require.NoError(t, err)
	assert.Zero(t, l)
}

func TestGetFreeTopicClaimsOnce(t *testing.T) {
	e := newTestEngine(t)
	topic := message.RedisPartitions[2]
	queueTask(t, e, topic, openingTask(message.NewGameUid(), 0))

	claimed, err := e.GetFreeTopic(context.Background())
	require.NoError(t, err)
	assert.Equal(t, topic, claimed)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = e.GetFreeTopic(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunStopsCleanlyOnCancel(t *testing.T) {
	e := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	assert.NoError(t, e.Run(ctx, 2))
}

func TestRunReportsWorkerFailure(t *testing.T) {
	rds, clean := redistest.CreateRedisWithClean(t)
	clean()
	e := NewEngine(rds, 0)

	done := make(chan error, 1)
	go func() { done <- e.Run(context.Background(), 2) }()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.NotErrorIs(t, err, context.Canceled)
	case <-time.After(10 * time.Second):
		t.Fatal("engine kept running without redis")
	}
}

func TestFailedPushIsRetriedFromBuffer(t *testing.T) {
	e := NewEngine(redistest.CreateRedis(t), 0)
	task := openingTask(message.NewGameUid(), 0)
	key := task.Key().String()
	value := message.AssessMessageValue{Move: task.Move, Order: task.Order, Score: 1.5}

	// A string under the set key makes Sadd fail with WRONGTYPE.
	require.NoError(t, e.RedisClient.Set(key, "occupied"))
	e.Pusher.AddMessages(AssessMessage{AssessMessageKey: task.Key(), AssessMessageValue: value})

	assert.Error(t, e.Pusher.PushAll())
	assert.Equal(t, 1, e.Pusher.Len())
	for _, p := range message.RedisPartitions {
		l, err := e.RedisClient.Llen(p.ListKey())
		require.NoError(t, err)
		assert.Zero(t, l, "failed results must not requeue tasks")
	}

	_, err := e.RedisClient.Del(key)
	require.NoError(t, err)
	require.NoError(t, e.Pusher.PushAll())
	assert.Zero(t, e.Pusher.Len())

	members, err := e.RedisClient.Smembers(key)
	require.NoError(t, err)
	assert.Equal(t, []string{value.String()}, members)
}
