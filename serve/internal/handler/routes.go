package handler

import (
	"net/http"

	"github.com/HuXin0817/blokus-duo/serve/internal/svc"
	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/game/start",
				Handler: StartGameHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/game/moves",
				Handler: MoveListHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/game/play",
				Handler: PlayMoveHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/game/best-move",
				Handler: BestMoveHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/game/analysis",
				Handler: AnalysisHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/game/history",
				Handler: HistoryHandler(serverCtx),
			},
		},
	)
}
