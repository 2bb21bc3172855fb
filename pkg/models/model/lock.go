package model

import (
	"time"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

const lockRetryInterval = time.Second / 5

type RedisLock struct {
	*redis.RedisLock
}

func NewLock(rds *redis.Redis, LockName string) *RedisLock {
	return &RedisLock{
		RedisLock: redis.NewRedisLock(rds, LockName),
	}
}

// Do runs f while holding the lock.
func (l *RedisLock) Do(f func() error) (err error) {
	if err = l.Lock(); err != nil {
		return err
	}

	defer func() {
		if unlockErr := l.UnLock(); err == nil {
			err = unlockErr
		}
	}()

	return f()
}

func (l *RedisLock) Lock() error {
	for {
		acquire, err := l.Acquire()
		if err != nil {
			return err
		}

		if acquire {
			return nil
		}

		time.Sleep(lockRetryInterval)
	}
}

// UnLock releases the lock. A lock that already expired is not an error.
func (l *RedisLock) UnLock() error {
	_, err := l.Release()
	return err
}
