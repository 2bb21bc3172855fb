package handler

import (
	"net/http"

	"github.com/bytedance/sonic"
)

// parse decodes the JSON body with sonic so the chess types' own JSON encodings apply.
func parse(r *http.Request, v any) error {
	return sonic.ConfigDefault.NewDecoder(r.Body).Decode(v)
}
