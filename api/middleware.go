package api

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/stsysd/tasktrack/model"
)

// SessionHeader と SessionCookie はセッショントークンの受け渡しに使います。
const (
	SessionHeader = "X-Session-Token"
	SessionCookie = "tasktrack_session"
)

type userKey struct{}

// sessionToken はヘッダー、なければクッキーからトークンを取得します。
func sessionToken(r *http.Request) string {
	if token := r.Header.Get(SessionHeader); token != "" {
		return token
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		return c.Value
	}
	return ""
}

// authMiddleware はセッショントークンを検証し、ユーザーをリクエストのコンテキストに格納するミドルウェアです。
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := s.svc.Authenticate(r.Context(), sessionToken(r))
		if err != nil {
			if !errors.Is(err, model.ErrUnauthenticated) {
				log.Printf("Error authenticating request: %v", err)
				writeJSONError(w, "Failed to authenticate", http.StatusInternalServerError)
				return
			}
			writeJSONError(w, "Unauthorized: invalid or missing session", http.StatusUnauthorized)
			return
		}

		// 認証成功：次のハンドラーを呼び出し
		ctx := context.WithValue(r.Context(), userKey{}, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// currentUser は authMiddleware が格納したユーザーを返します。
func currentUser(r *http.Request) *model.User {
	user, _ := r.Context().Value(userKey{}).(*model.User)
	return user
}

// principal は現在のユーザーの Principal を返します。
func principal(r *http.Request) model.Principal {
	if user := currentUser(r); user != nil {
		return user.Principal()
	}
	return model.Principal{}
}
