package svc

import (
	"fmt"
	"strings"
	"time"

	"github.com/HuXin0817/blokus-duo/pkg/env"
	"github.com/HuXin0817/blokus-duo/pkg/models/message"
	"github.com/HuXin0817/blokus-duo/pkg/models/message/moverecord"
	"github.com/HuXin0817/blokus-duo/pkg/models/model"
	"github.com/HuXin0817/blokus-duo/pkg/models/pusher"
	"github.com/HuXin0817/blokus-duo/serve/internal/config"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

const (
	// PartitionExpirePerMessage keeps a partition list alive while workers drain it.
	PartitionExpirePerMessage = 120 // second
	// StepExpireTime bounds how long a game may idle before its queued tasks go stale.
	StepExpireTime = 600 // second
)

type ServiceContext struct {
	Config          config.Config
	RedisClient     *redis.Redis
	PartitionPusher map[message.RedisPartition]*pusher.Pusher[string]

	// Record models are nil unless MongoConf.Url is set.
	GameStartModel moverecord.GameStartRecodeModel
	MoveModel      moverecord.MoveRecodeModel
	GameEndModel   moverecord.GameEndRecodeModel
}

func NewServiceContext(c config.Config) *ServiceContext {
	if c.Redis.Pass == "" {
		c.Redis.Pass = env.RedisPassWord
	}

	if c.MongoConf.PassWord == "" {
		c.MongoConf.PassWord = env.MongoPassWord
	}

	if strings.Contains(c.MongoConf.Url, "%s") {
		c.MongoConf.Url = fmt.Sprintf(c.MongoConf.Url, c.MongoConf.PassWord)
	}

	svcCtx := &ServiceContext{Config: c}
	if c.MongoConf.Url != "" {
		svcCtx.GameStartModel = moverecord.NewGameStartRecodeModel(c.MongoConf.Url, c.MongoConf.DataBaseName, moverecord.GameStartRecodeCollectionName)
		svcCtx.MoveModel = moverecord.NewMoveRecodeModel(c.MongoConf.Url, c.MongoConf.DataBaseName, moverecord.MoveRecodeCollectionName)
		svcCtx.GameEndModel = moverecord.NewGameEndRecodeModel(c.MongoConf.Url, c.MongoConf.DataBaseName, moverecord.GameEndRecodeCollectionName)
	}

	if c.Redis.Host != "" {
		svcCtx.AttachRedis(redis.MustNewRedis(c.Redis))
	}

	return svcCtx
}

// AttachRedis turns on the task queue backed by rds.
func (svcCtx *ServiceContext) AttachRedis(rds *redis.Redis) {
	svcCtx.RedisClient = rds
	svcCtx.PartitionPusher = make(map[message.RedisPartition]*pusher.Pusher[string])

	for _, redisPartition := range message.RedisPartitions {
		lock := model.NewLock(rds, redisPartition.LockName())

		svcCtx.PartitionPusher[redisPartition] = pusher.NewPusher(
			pusher.WithPushInterval[string](time.Second/2),
			pusher.WithPushLogic(func(pushMessages ...string) error {
				return lock.Do(func() error {
					messages := make([]any, 0, len(pushMessages))
					for _, m := range pushMessages {
						messages = append(messages, m)
					}

					redisPartitionLength, err := rds.Lpush(redisPartition.ListKey(), messages...)
					if err != nil {
						return err
					}

					return rds.Expire(redisPartition.ListKey(), PartitionExpirePerMessage*redisPartitionLength)
				})
			}),
		)

		svcCtx.PartitionPusher[redisPartition].Start()
	}
}

func (svcCtx *ServiceContext) QueueEnabled() bool {
	return svcCtx.RedisClient != nil
}

func (svcCtx *ServiceContext) RecordEnabled() bool {
	return svcCtx.GameStartModel != nil && svcCtx.MoveModel != nil && svcCtx.GameEndModel != nil
}

// Stop flushes pending task batches.
func (svcCtx *ServiceContext) Stop() {
	for _, p := range svcCtx.PartitionPusher {
		p.Stop()
	}
}
