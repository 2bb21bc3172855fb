package main

import (
	"github.com/HuXin0817/blokus-duo/pkg/models/message"
	"github.com/zeromicro/go-zero/core/logx"
)

type AssessMessage struct {
	message.AssessMessageKey
	message.AssessMessageValue
}

// push writes scored moves to their result sets. On failure the pusher keeps the whole
// batch and retries it; Sadd makes the members already written harmless to resend.
func (e *Engine) push(assessMessages ...AssessMessage) error {
	for _, assessMessage := range assessMessages {
		keyStr := assessMessage.AssessMessageKey.String()

		if _, err := e.RedisClient.Sadd(keyStr, assessMessage.AssessMessageValue.String()); err != nil {
			return err
		}

		if err := e.RedisClient.Expire(keyStr, SetExpireTime); err != nil {
			logx.Errorf("expire %s: %v", keyStr, err)
		}
	}

	return nil
}
