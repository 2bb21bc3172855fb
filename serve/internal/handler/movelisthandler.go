package handler

import (
	"net/http"

	"github.com/HuXin0817/blokus-duo/serve/internal/logic"
	"github.com/HuXin0817/blokus-duo/serve/internal/svc"
	"github.com/HuXin0817/blokus-duo/serve/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func MoveListHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.MovesRequest
		if err := parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewMoveListLogic(r.Context(), svcCtx)
		resp, err := l.MoveList(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
