package pprof

import (
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

// Start serves the net/http/pprof handlers on addr in the background.
// An empty addr disables profiling.
func Start(addr string) {
	if addr == "" {
		return
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	pprof.Register(router)

	go func() {
		logx.Infof("pprof listening on %s", addr)
		if err := router.Run(addr); err != nil {
			logx.Errorf("pprof stopped: %v", err)
		}
	}()
}
