package main

import (
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type Config struct {
	Redis redis.RedisConf
	Log   logx.LogConf `json:",optional"`
	// Workers is the number of partitions served concurrently.
	Workers    int    `json:",default=2"`
	TableLimit int    `json:",optional"`
	Pprof      string `json:",optional"`
}
