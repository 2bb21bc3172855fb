package main

import (
	"context"
	"time"

	"github.com/HuXin0817/blokus-duo/pkg/models/message"
)

// GetFreeTopic blocks until it claims an unowned partition that has pending tasks.
func (e *Engine) GetFreeTopic(ctx context.Context) (topic message.RedisPartition, err error) {
	for {
		for _, t := range message.RedisPartitions {
			length, err := e.RedisClient.Llen(t.ListKey())
			if err != nil {
				return -1, err
			}

			if length == 0 {
				continue
			}

			claimed, err := e.RedisClient.SetnxEx(t.OwnerKey(), string(message.NewTimeStamp(time.Now())), OnceWorkingTime)
			if err != nil {
				return -1, err
			}

			if claimed {
				return t, nil
			}
		}

		select {
		case <-ctx.Done():
			return -1, ctx.Err()
		case <-time.After(idleInterval):
		}
	}
}
