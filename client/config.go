package main

import (
	"flag"
	"time"

	"github.com/HuXin0817/blokus-duo/pkg/models/model"
)

var (
	AI1Conf      = flag.String("AI1", "ON", "AI1")
	AI2Conf      = flag.String("AI2", "ON", "AI2")
	Depth1Conf   = flag.Int("Depth1", 2, "search depth of AI1")
	Depth2Conf   = flag.Int("Depth2", 2, "search depth of AI2")
	ColorConf    = flag.String("Color", "ON", "Color")
	ProgressConf = flag.String("Progress", "ON", "Progress")
	ServerConf   = flag.String("Server", "", "serve address, e.g. http://127.0.0.1:8888; empty plays locally")
	WaitConf     = flag.Duration("Wait", time.Minute, "how long to wait for engine workers before asking serve directly")

	AI1      model.Config
	AI2      model.Config
	Color    model.Config
	Progress model.Config
)

func initConfig() {
	flag.Parse()
	AI1 = model.NewConfig(*AI1Conf)
	AI2 = model.NewConfig(*AI2Conf)
	Color = model.NewConfig(*ColorConf)
	Progress = model.NewConfig(*ProgressConf)
}
