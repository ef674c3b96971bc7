// Package api はtasktrackのAPIサーバー実装を提供します。
package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/stsysd/tasktrack/model"
	"github.com/stsysd/tasktrack/tracker"
)

// Server はAPIサーバーの構造体です。
type Server struct {
	router *http.ServeMux
	svc    *tracker.Service
}

// ErrorResponse はエラーレスポンスの構造体です。
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
	Kind  string `json:"kind"`
}

// MessageResponse は本文を持たない成功レスポンスの構造体です。
type MessageResponse struct {
	Message string `json:"message"`
}

// writeJSONError はJSON形式でエラーレスポンスを返却します。
func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp := ErrorResponse{
		Error: message,
		Code:  statusCode,
		Kind:  kindForStatus(statusCode),
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Error encoding error response: %v", err)
	}
}

// writeServiceError はサービス層のエラーを種類に応じたステータスコードで返却します。
// 内部エラーの詳細はログにのみ出力します。
func writeServiceError(w http.ResponseWriter, err error, action string) {
	kind := model.KindOf(err)
	status := statusForKind(kind)
	if status == http.StatusInternalServerError {
		log.Printf("Error %s: %v", action, err)
		writeJSONError(w, "Failed "+action, status)
		return
	}
	writeJSONError(w, err.Error(), status)
}

func statusForKind(kind string) int {
	switch kind {
	case model.KindValidation:
		return http.StatusBadRequest
	case model.KindUnauthenticated:
		return http.StatusUnauthorized
	case model.KindForbidden:
		return http.StatusForbidden
	case model.KindNotFound:
		return http.StatusNotFound
	case model.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func kindForStatus(code int) string {
	switch code {
	case http.StatusBadRequest:
		return model.KindValidation
	case http.StatusUnauthorized:
		return model.KindUnauthenticated
	case http.StatusForbidden:
		return model.KindForbidden
	case http.StatusNotFound:
		return model.KindNotFound
	case http.StatusConflict:
		return model.KindConflict
	default:
		return model.KindInternal
	}
}

// writeJSON は v をJSONとして返却します。
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// NewServer は新しいAPIサーバーインスタンスを生成します。
func NewServer(svc *tracker.Service) *Server {
	s := &Server{
		router: http.NewServeMux(),
		svc:    svc,
	}
	s.routes()
	return s
}

// routes はAPIエンドポイントのルーティングを設定します。
func (s *Server) routes() {
	// ヘルスチェックとサインアップ・サインインは認証不要
	s.router.HandleFunc("GET /healthz", s.handleHealthCheck)
	s.router.HandleFunc("POST /api/v0/auth/signup", s.handleSignUp)
	s.router.HandleFunc("POST /api/v0/auth/login", s.handleLogin)

	// すべての保護されたエンドポイントをまずセキュアなルータに登録
	securedHandler := http.NewServeMux()

	// Auth endpoints
	securedHandler.HandleFunc("POST /api/v0/auth/logout", s.handleLogout)
	securedHandler.HandleFunc("GET /api/v0/auth/me", s.handleMe)

	// User endpoints
	securedHandler.HandleFunc("GET /api/v0/users", s.handleListUsers)
	securedHandler.HandleFunc("PATCH /api/v0/users/{user_id}", s.handleChangeRole)

	// Project endpoints
	securedHandler.HandleFunc("GET /api/v0/projects", s.handleListProjects)
	securedHandler.HandleFunc("POST /api/v0/projects", s.handleCreateProject)
	securedHandler.HandleFunc("GET /api/v0/projects/{project_id}", s.handleGetProject)
	securedHandler.HandleFunc("DELETE /api/v0/projects/{project_id}", s.handleDeleteProject)
	securedHandler.HandleFunc("GET /api/v0/projects/{project_id}/requirements", s.handleListRequirements)
	securedHandler.HandleFunc("POST /api/v0/projects/{project_id}/requirements", s.handleCreateRequirement)
	securedHandler.HandleFunc("GET /api/v0/projects/{project_id}/resources", s.handleListResources)
	securedHandler.HandleFunc("POST /api/v0/projects/{project_id}/resources", s.handleCreateResource)

	// Module endpoints
	securedHandler.HandleFunc("GET /api/v0/modules", s.handleListModules)
	securedHandler.HandleFunc("POST /api/v0/modules", s.handleCreateModule)
	securedHandler.HandleFunc("DELETE /api/v0/modules/{module_id}", s.handleDeleteModule)

	// Task endpoints
	securedHandler.HandleFunc("GET /api/v0/tasks", s.handleListTasks)
	securedHandler.HandleFunc("POST /api/v0/tasks", s.handleCreateTask)
	securedHandler.HandleFunc("GET /api/v0/tasks/{task_id}", s.handleGetTask)
	securedHandler.HandleFunc("PATCH /api/v0/tasks/{task_id}", s.handleUpdateTask)
	securedHandler.HandleFunc("DELETE /api/v0/tasks/{task_id}", s.handleDeleteTask)
	securedHandler.HandleFunc("POST /api/v0/tasks/{task_id}/time-logs", s.handleLogTime)

	// Notification endpoints
	securedHandler.HandleFunc("GET /api/v0/notifications", s.handleListNotifications)
	securedHandler.HandleFunc("PATCH /api/v0/notifications", s.handleMarkNotifications)

	// 認証ミドルウェアを適用し、メインルータにマウント
	s.router.Handle("/api/", s.authMiddleware(securedHandler))
}

// ServeHTTP はServer構造体をhttp.Handlerとして実装します。
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// routesに設定されたルーティングを使用する
	s.router.ServeHTTP(w, r)
}

// handleHealthCheck はヘルスチェックエンドポイントのハンドラーです。
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Run はサーバーを指定されたアドレスで起動し、ctx がキャンセルされるとグレースフルに停止します。
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Printf("Server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
