package main

import (
	"flag"

	"github.com/HuXin0817/blokus-duo/pkg/pprof"
	"github.com/HuXin0817/blokus-duo/serve/internal/config"
	"github.com/HuXin0817/blokus-duo/serve/internal/handler"
	"github.com/HuXin0817/blokus-duo/serve/internal/svc"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/serve.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)
	pprof.Start(c.Pprof)

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	ctx := svc.NewServiceContext(c)
	defer ctx.Stop()
	handler.RegisterHandlers(server, ctx)

	logx.Infof("Starting server at %s:%d...", c.Host, c.Port)
	server.Start()
}
