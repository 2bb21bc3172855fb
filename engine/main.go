package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	"github.com/HuXin0817/blokus-duo/pkg/env"
	"github.com/HuXin0817/blokus-duo/pkg/pprof"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

var configFile = flag.String("f", "etc/engine.yaml", "the config file")

func main() {
	flag.Parse()

	var c Config
	conf.MustLoad(*configFile, &c)
	logx.MustSetup(c.Log)

	if c.Redis.Pass == "" {
		c.Redis.Pass = env.RedisPassWord
	}

	pprof.Start(c.Pprof)

	e := NewEngine(redis.MustNewRedis(c.Redis), c.TableLimit)
	e.Start()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := e.Run(ctx, c.Workers)
	cancel()
	e.Stop()

	// Must logs a worker failure and exits non-zero.
	logx.Must(err)
	logx.Info("engine stopped")
	_ = logx.Close()
}
