package api

import (
	"encoding/json"
	"net/http"

	"github.com/stsysd/tasktrack/model"
)

// decodeBody はリクエストボディをJSONとして v に読み込みます。
// 失敗した場合は検証エラーを返します。
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return model.NewValidationError("invalid request body: " + err.Error())
	}
	return nil
}

// pathID はパスパラメータ name をIDとして解釈します。
func pathID(r *http.Request, name string) (int64, error) {
	return model.ParseID(name, r.PathValue(name))
}
