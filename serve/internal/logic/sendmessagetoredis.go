package logic

import (
	"time"

	"github.com/HuXin0817/blokus-duo/pkg/assess"
	"github.com/HuXin0817/blokus-duo/pkg/models/chess"
	"github.com/HuXin0817/blokus-duo/pkg/models/message"
	"github.com/HuXin0817/blokus-duo/pkg/models/pusher"
	"github.com/HuXin0817/blokus-duo/serve/internal/svc"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// GetMessages builds one task per root move. skip holds orders that need no task.
func GetMessages(GameUid message.GameUid, g chess.Game, depth int, skip map[int]bool) (messages []string) {
	timeStamp := message.NewTimeStamp(time.Now())
	for order, m := range assess.OrderedMoves(g) {
		if skip[order] {
			continue
		}

		task := message.AssessTaskMessage{
			TimeStamp: timeStamp,
			GameUid:   GameUid,
			Step:      g.StepCount(),
			Depth:     depth,
			Order:     order,
			Game:      g,
			Move:      m,
		}
		messages = append(messages, task.String())
	}

	return
}

// GetTopicMessageList spreads messages over the partitions, shortest list first.
func GetTopicMessageList(RedisClient *redis.Redis, messages []string) (topicMessageList map[message.RedisPartition][]string, err error) {
	topicListLen := make(map[message.RedisPartition]int)
	for _, t := range message.RedisPartitions {
		topicListLen[t], err = RedisClient.Llen(t.ListKey())
		if err != nil {
			return nil, err
		}
	}

	topicMessageList = make(map[message.RedisPartition][]string)
	for _, m := range messages {
		minTopic := message.RedisPartitions[0]
		for _, t := range message.RedisPartitions[1:] {
			if topicListLen[t] < topicListLen[minTopic] {
				minTopic = t
			}
		}

		topicListLen[minTopic]++
		topicMessageList[minTopic] = append(topicMessageList[minTopic], m)
	}

	return topicMessageList, nil
}

func SendMessageToRedisLists(RedisClient *redis.Redis, PartitionPusher map[message.RedisPartition]*pusher.Pusher[string], messages []string) error {
	topicMessageList, err := GetTopicMessageList(RedisClient, messages)
	if err != nil {
		return err
	}

	for part, mess := range topicMessageList {
		PartitionPusher[part].AddMessages(mess...)
	}

	return nil
}

// EnqueueRootMoves marks g as the current step of the game and queues its root moves for the engine.
func EnqueueRootMoves(svcCtx *svc.ServiceContext, GameUid message.GameUid, g chess.Game, depth int, skip map[int]bool) (int, error) {
	if err := svcCtx.RedisClient.Setex(GameUid.StepKey(), stepValue(g), svc.StepExpireTime); err != nil {
		return 0, err
	}

	messages := GetMessages(GameUid, g, depth, skip)
	if err := SendMessageToRedisLists(svcCtx.RedisClient, svcCtx.PartitionPusher, messages); err != nil {
		return 0, err
	}

	return len(messages), nil
}

func stepValue(g chess.Game) string {
	return message.StepValue(g.StepCount())
}

// aiToMove reports whether the player to move is computer controlled.
func aiToMove(g chess.Game, AI1, AI2 bool) bool {
	if g.GameOver {
		return false
	}

	switch g.NowPlayer {
	case chess.Player1:
		return AI1
	case chess.Player2:
		return AI2
	}

	return false
}
