package config

import (
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf
	// Redis enables the distributed root split when Host is set.
	Redis     redis.RedisConf `json:",optional"`
	MongoConf struct {
		Url          string `json:",optional"`
		DataBaseName string `json:",optional"`
		PassWord     string `json:",optional"`
	} `json:",optional"`
	Search struct {
		DefaultDepth int `json:",default=2"`
		MaxDepth     int `json:",default=4"`
		TableLimit   int `json:",optional"`
	}
	Pprof string `json:",optional"`
}
