package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stsysd/tasktrack/db"
	"github.com/stsysd/tasktrack/model"
	"github.com/stsysd/tasktrack/notify"
	"github.com/stsysd/tasktrack/store"
	"github.com/stsysd/tasktrack/tracker"
)

// テスト用の管理者メールアドレス
const testAdminEmail = "admin@example.com"

// setupTestServer は一時ディレクトリのSQLiteストアを使ったサーバーを生成します。
func setupTestServer(t *testing.T) *Server {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "tasktrack-api-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	st, err := store.NewSQLiteStore(tempDir, db.Migrate)
	if err != nil {
		os.RemoveAll(tempDir)
		t.Fatalf("Failed to create test store: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
		os.RemoveAll(tempDir)
	})

	svc := tracker.NewService(st, notify.NewStoreNotifier(st), tracker.Options{
		AdminEmails: []string{testAdminEmail},
	})
	return NewServer(svc)
}

// doRequest はリクエストを送信し、レスポンスを返します。token が空なら認証ヘッダーを付けません。
func doRequest(t *testing.T, s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(SessionHeader, token)
	}

	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	return w
}

func decodeResponse[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("Failed to decode response body: %v", err)
	}
	return v
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, code int) {
	t.Helper()
	if w.Code != code {
		t.Fatalf("Expected status code %d, got %d: %s", code, w.Code, w.Body.String())
	}
}

func signUp(t *testing.T, s *Server, name, email string) AuthResponse {
	t.Helper()
	w := doRequest(t, s, http.MethodPost, "/api/v0/auth/signup", "", map[string]string{
		"name":  name,
		"email": email,
	})
	expectStatus(t, w, http.StatusCreated)
	return decodeResponse[AuthResponse](t, w)
}

type apiFixture struct {
	server  *Server
	admin   AuthResponse
	dev     AuthResponse
	other   AuthResponse
	project *model.Project
}

func setupAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	s := setupTestServer(t)
	f := &apiFixture{
		server: s,
		admin:  signUp(t, s, "Admin", testAdminEmail),
		dev:    signUp(t, s, "Dev", "dev@example.com"),
		other:  signUp(t, s, "Other", "other@example.com"),
	}

	w := doRequest(t, s, http.MethodPost, "/api/v0/projects", f.admin.Token, map[string]any{
		"name":      "E-commerce",
		"startDate": "2025-05-01",
	})
	expectStatus(t, w, http.StatusCreated)
	f.project = decodeResponse[*model.Project](t, w)
	return f
}

func (f *apiFixture) createTask(t *testing.T, assignees ...int64) *model.Task {
	t.Helper()
	w := doRequest(t, f.server, http.MethodPost, "/api/v0/tasks", f.admin.Token, map[string]any{
		"title":           "Implement JWT Authentication",
		"priority":        "HIGH",
		"estimatedHours":  8,
		"dueDate":         "2025-06-01",
		"projectId":       f.project.ID,
		"assignedUserIds": assignees,
	})
	expectStatus(t, w, http.StatusCreated)
	return decodeResponse[*model.Task](t, w)
}

func TestHealthCheck(t *testing.T) {
	s := setupTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/healthz", "", nil)
	expectStatus(t, w, http.StatusOK)

	body := decodeResponse[map[string]string](t, w)
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", body)
	}
}

func TestAuthMiddleware(t *testing.T) {
	s := setupTestServer(t)
	user := signUp(t, s, "Dev", "dev@example.com")

	tests := []struct {
		name       string
		token      string
		cookie     string
		expectCode int
	}{
		{"No token", "", "", http.StatusUnauthorized},
		{"Unknown token", "not-a-session", "", http.StatusUnauthorized},
		{"Header token", user.Token, "", http.StatusOK},
		{"Cookie token", "", user.Token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v0/auth/me", nil)
			if tt.token != "" {
				req.Header.Set(SessionHeader, tt.token)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			s.ServeHTTP(w, req)

			if w.Code != tt.expectCode {
				t.Errorf("Expected status code %d, got %d", tt.expectCode, w.Code)
			}
			if tt.expectCode == http.StatusUnauthorized {
				resp := decodeResponse[ErrorResponse](t, w)
				if resp.Kind != model.KindUnauthenticated {
					t.Errorf("Expected kind %s, got %s", model.KindUnauthenticated, resp.Kind)
				}
			}
		})
	}
}

func TestSignUpAndLogin(t *testing.T) {
	s := setupTestServer(t)

	admin := signUp(t, s, "Admin", testAdminEmail)
	if admin.User.Role != model.RoleAdmin {
		t.Errorf("Expected role ADMIN, got %s", admin.User.Role)
	}
	dev := signUp(t, s, "Dev", "dev@example.com")
	if dev.User.Role != model.RoleDeveloper {
		t.Errorf("Expected role DEVELOPER, got %s", dev.User.Role)
	}

	// 重複登録
	w := doRequest(t, s, http.MethodPost, "/api/v0/auth/signup", "", map[string]string{
		"name": "Dev", "email": "dev@example.com",
	})
	expectStatus(t, w, http.StatusConflict)

	// サインインで新しいセッションが発行され、古いセッションは無効になる
	w = doRequest(t, s, http.MethodPost, "/api/v0/auth/login", "", map[string]string{"email": "dev@example.com"})
	expectStatus(t, w, http.StatusOK)
	login := decodeResponse[AuthResponse](t, w)
	if login.Token == "" || login.Token == dev.Token {
		t.Errorf("Expected a fresh token, got %q", login.Token)
	}
	if len(w.Result().Cookies()) == 0 {
		t.Error("Expected a session cookie")
	}

	expectStatus(t, doRequest(t, s, http.MethodGet, "/api/v0/auth/me", dev.Token, nil), http.StatusUnauthorized)
	expectStatus(t, doRequest(t, s, http.MethodGet, "/api/v0/auth/me", login.Token, nil), http.StatusOK)

	// サインアウト後はトークンが使えない
	expectStatus(t, doRequest(t, s, http.MethodPost, "/api/v0/auth/logout", login.Token, nil), http.StatusOK)
	expectStatus(t, doRequest(t, s, http.MethodGet, "/api/v0/auth/me", login.Token, nil), http.StatusUnauthorized)

	// 未登録のメールアドレス
	w = doRequest(t, s, http.MethodPost, "/api/v0/auth/login", "", map[string]string{"email": "nobody@example.com"})
	expectStatus(t, w, http.StatusUnauthorized)
}

func TestUserManagement(t *testing.T) {
	f := setupAPIFixture(t)
	s := f.server

	// 開発者はユーザー一覧を取得できない
	expectStatus(t, doRequest(t, s, http.MethodGet, "/api/v0/users", f.dev.Token, nil), http.StatusForbidden)

	w := doRequest(t, s, http.MethodGet, "/api/v0/users", f.admin.Token, nil)
	expectStatus(t, w, http.StatusOK)
	if users := decodeResponse[[]*model.User](t, w); len(users) != 3 {
		t.Errorf("Expected 3 users, got %d", len(users))
	}

	path := fmt.Sprintf("/api/v0/users/%d", f.dev.User.ID)
	w = doRequest(t, s, http.MethodPatch, path, f.admin.Token, map[string]string{"role": "ADMIN"})
	expectStatus(t, w, http.StatusOK)
	if user := decodeResponse[*model.User](t, w); user.Role != model.RoleAdmin {
		t.Errorf("Expected role ADMIN, got %s", user.Role)
	}

	w = doRequest(t, s, http.MethodPatch, path, f.admin.Token, map[string]string{"role": "OWNER"})
	expectStatus(t, w, http.StatusBadRequest)
}

func TestErrorKinds(t *testing.T) {
	f := setupAPIFixture(t)
	s := f.server

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		body       any
		expectCode int
		expectKind string
	}{
		{"Invalid task ID", http.MethodGet, "/api/v0/tasks/abc", f.dev.Token, nil, http.StatusBadRequest, model.KindValidation},
		{"Missing task", http.MethodGet, "/api/v0/tasks/9999", f.dev.Token, nil, http.StatusNotFound, model.KindNotFound},
		{"Missing project", http.MethodGet, "/api/v0/projects/9999", f.dev.Token, nil, http.StatusNotFound, model.KindNotFound},
		{"Invalid status filter", http.MethodGet, "/api/v0/tasks?status=DONE", f.dev.Token, nil, http.StatusBadRequest, model.KindValidation},
		{"Malformed body", http.MethodPost, "/api/v0/projects", f.admin.Token, "not an object", http.StatusBadRequest, model.KindValidation},
		{"Project without name", http.MethodPost, "/api/v0/projects", f.admin.Token, map[string]string{}, http.StatusBadRequest, model.KindValidation},
		{"Bad project date", http.MethodPost, "/api/v0/projects", f.admin.Token, map[string]string{"name": "X", "startDate": "May 1st"}, http.StatusBadRequest, model.KindValidation},
		{"Developer creates project", http.MethodPost, "/api/v0/projects", f.dev.Token, map[string]string{"name": "X"}, http.StatusForbidden, model.KindForbidden},
		{"Module for missing project", http.MethodPost, "/api/v0/modules", f.admin.Token, map[string]any{"name": "Auth", "projectId": 9999}, http.StatusNotFound, model.KindNotFound},
		{"Empty notification patch", http.MethodPatch, "/api/v0/notifications", f.dev.Token, map[string]any{}, http.StatusBadRequest, model.KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, s, tt.method, tt.path, tt.token, tt.body)
			if w.Code != tt.expectCode {
				t.Fatalf("Expected status code %d, got %d: %s", tt.expectCode, w.Code, w.Body.String())
			}
			resp := decodeResponse[ErrorResponse](t, w)
			if resp.Kind != tt.expectKind || resp.Code != tt.expectCode {
				t.Errorf("Expected kind %s code %d, got %+v", tt.expectKind, tt.expectCode, resp)
			}
		})
	}
}

func TestProjectsAndModules(t *testing.T) {
	f := setupAPIFixture(t)
	s := f.server
	projectPath := fmt.Sprintf("/api/v0/projects/%d", f.project.ID)

	w := doRequest(t, s, http.MethodPost, "/api/v0/modules", f.admin.Token, map[string]any{
		"name":      "Authentication",
		"priority":  "HIGH",
		"projectId": f.project.ID,
		"functionalities": []map[string]string{
			{"name": "Login form", "type": "FRONTEND"},
			{"name": "Token issuing", "type": "BACKEND"},
		},
	})
	expectStatus(t, w, http.StatusCreated)
	module := decodeResponse[*model.Module](t, w)
	if len(module.Functionalities) != 2 {
		t.Errorf("Expected 2 functionalities, got %d", len(module.Functionalities))
	}

	w = doRequest(t, s, http.MethodGet, fmt.Sprintf("/api/v0/modules?projectId=%d", f.project.ID), f.dev.Token, nil)
	expectStatus(t, w, http.StatusOK)
	if modules := decodeResponse[[]*model.Module](t, w); len(modules) != 1 {
		t.Errorf("Expected 1 module, got %d", len(modules))
	}

	w = doRequest(t, s, http.MethodPost, projectPath+"/requirements", f.admin.Token, map[string]string{"title": "Users can sign in"})
	expectStatus(t, w, http.StatusCreated)
	if req := decodeResponse[*model.Requirement](t, w); req.Status != "DRAFT" {
		t.Errorf("Expected default status DRAFT, got %s", req.Status)
	}

	w = doRequest(t, s, http.MethodPost, projectPath+"/resources", f.admin.Token, map[string]string{"kind": "API_ENDPOINT", "name": "POST /login"})
	expectStatus(t, w, http.StatusCreated)
	w = doRequest(t, s, http.MethodPost, projectPath+"/resources", f.admin.Token, map[string]string{"kind": "QUEUE", "name": "jobs"})
	expectStatus(t, w, http.StatusBadRequest)

	w = doRequest(t, s, http.MethodGet, projectPath+"/resources", f.dev.Token, nil)
	expectStatus(t, w, http.StatusOK)
	if resources := decodeResponse[[]*model.Resource](t, w); len(resources) != 1 {
		t.Errorf("Expected 1 resource, got %d", len(resources))
	}

	w = doRequest(t, s, http.MethodGet, projectPath, f.dev.Token, nil)
	expectStatus(t, w, http.StatusOK)
	if project := decodeResponse[*model.Project](t, w); len(project.Modules) != 1 {
		t.Errorf("Expected project with 1 module, got %d", len(project.Modules))
	}

	modulePath := fmt.Sprintf("/api/v0/modules/%d", module.ID)
	expectStatus(t, doRequest(t, s, http.MethodDelete, modulePath, f.dev.Token, nil), http.StatusForbidden)
	expectStatus(t, doRequest(t, s, http.MethodDelete, modulePath, f.admin.Token, nil), http.StatusOK)
	expectStatus(t, doRequest(t, s, http.MethodDelete, modulePath, f.admin.Token, nil), http.StatusNotFound)

	expectStatus(t, doRequest(t, s, http.MethodDelete, projectPath, f.admin.Token, nil), http.StatusOK)
	expectStatus(t, doRequest(t, s, http.MethodGet, projectPath, f.admin.Token, nil), http.StatusNotFound)
}

func TestCreateAndGetTask(t *testing.T) {
	f := setupAPIFixture(t)
	created := f.createTask(t, f.dev.User.ID, f.other.User.ID)

	if created.Status != model.StatusPending {
		t.Errorf("Expected status PENDING, got %s", created.Status)
	}
	if len(created.Assignments) != 2 {
		t.Errorf("Expected 2 assignments, got %d", len(created.Assignments))
	}

	w := doRequest(t, f.server, http.MethodGet, fmt.Sprintf("/api/v0/tasks/%d", created.ID), f.dev.Token, nil)
	expectStatus(t, w, http.StatusOK)
	got := decodeResponse[*model.Task](t, w)
	if got.Title != created.Title || got.Priority != model.PriorityHigh {
		t.Errorf("Unexpected task %+v", got)
	}
	if got.EstimatedHours == nil || *got.EstimatedHours != 8 {
		t.Errorf("Expected estimatedHours 8, got %v", got.EstimatedHours)
	}

	// 担当者ごとに割り当て通知が届く
	for _, token := range []string{f.dev.Token, f.other.Token} {
		w = doRequest(t, f.server, http.MethodGet, "/api/v0/notifications", token, nil)
		expectStatus(t, w, http.StatusOK)
		ns := decodeResponse[[]*model.Notification](t, w)
		if len(ns) != 1 || ns[0].Type != model.NotificationTaskAssigned {
			t.Errorf("Expected one TASK_ASSIGNED notification, got %+v", ns)
		}
	}

	// userId=me の絞り込み
	w = doRequest(t, f.server, http.MethodGet, "/api/v0/tasks?userId=me", f.admin.Token, nil)
	expectStatus(t, w, http.StatusOK)
	if tasks := decodeResponse[[]*model.Task](t, w); len(tasks) != 0 {
		t.Errorf("Expected no tasks for admin, got %d", len(tasks))
	}
	w = doRequest(t, f.server, http.MethodGet, "/api/v0/tasks?userId=me&status=PENDING", f.dev.Token, nil)
	expectStatus(t, w, http.StatusOK)
	if tasks := decodeResponse[[]*model.Task](t, w); len(tasks) != 1 {
		t.Errorf("Expected 1 task for dev, got %d", len(tasks))
	}
}

func TestDeleteTaskByDeveloper(t *testing.T) {
	f := setupAPIFixture(t)
	task := f.createTask(t, f.dev.User.ID)
	path := fmt.Sprintf("/api/v0/tasks/%d", task.ID)

	w := doRequest(t, f.server, http.MethodDelete, path, f.dev.Token, nil)
	expectStatus(t, w, http.StatusForbidden)
	if resp := decodeResponse[ErrorResponse](t, w); resp.Kind != model.KindForbidden {
		t.Errorf("Expected kind %s, got %s", model.KindForbidden, resp.Kind)
	}

	// タスクは残っている
	expectStatus(t, doRequest(t, f.server, http.MethodGet, path, f.dev.Token, nil), http.StatusOK)

	expectStatus(t, doRequest(t, f.server, http.MethodDelete, path, f.admin.Token, nil), http.StatusOK)
	expectStatus(t, doRequest(t, f.server, http.MethodGet, path, f.dev.Token, nil), http.StatusNotFound)
	expectStatus(t, doRequest(t, f.server, http.MethodDelete, path, f.admin.Token, nil), http.StatusNotFound)
}

func TestUpdateTask(t *testing.T) {
	f := setupAPIFixture(t)
	task := f.createTask(t, f.dev.User.ID)
	path := fmt.Sprintf("/api/v0/tasks/%d", task.ID)

	tests := []struct {
		name       string
		token      string
		body       map[string]any
		expectCode int
	}{
		{"Empty patch", f.dev.Token, map[string]any{}, http.StatusBadRequest},
		{"Invalid status", f.dev.Token, map[string]any{"status": "DONE"}, http.StatusBadRequest},
		{"Invalid priority", f.dev.Token, map[string]any{"priority": "SOON"}, http.StatusBadRequest},
		{"Negative estimate", f.dev.Token, map[string]any{"estimatedHours": -1}, http.StatusBadRequest},
		{"Not assigned", f.other.Token, map[string]any{"status": "IN_PROGRESS"}, http.StatusForbidden},
		{"Assignee starts work", f.dev.Token, map[string]any{"status": "IN_PROGRESS"}, http.StatusOK},
		{"Admin retitles", f.admin.Token, map[string]any{"title": "Implement OAuth"}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, f.server, http.MethodPatch, path, tt.token, tt.body)
			if w.Code != tt.expectCode {
				t.Errorf("Expected status code %d, got %d: %s", tt.expectCode, w.Code, w.Body.String())
			}
		})
	}

	w := doRequest(t, f.server, http.MethodGet, path, f.dev.Token, nil)
	expectStatus(t, w, http.StatusOK)
	got := decodeResponse[*model.Task](t, w)
	if got.Status != model.StatusInProgress || got.Title != "Implement OAuth" {
		t.Errorf("Unexpected task after updates: status %s title %q", got.Status, got.Title)
	}
}

func TestTaskCompletionFlow(t *testing.T) {
	f := setupAPIFixture(t)
	task := f.createTask(t, f.dev.User.ID)
	taskPath := fmt.Sprintf("/api/v0/tasks/%d", task.ID)

	expectStatus(t, doRequest(t, f.server, http.MethodPatch, taskPath, f.dev.Token, map[string]string{"status": "IN_PROGRESS"}), http.StatusOK)

	logs := []struct {
		start, end  string
		expectHours int
	}{
		{"2025-05-21T09:00:00Z", "2025-05-21T09:30:00Z", 1},
		{"2025-05-21T10:00:00Z", "2025-05-21T10:45:00Z", 1},
		{"2025-05-21T13:00:00Z", "2025-05-21T14:00:00Z", 2},
	}
	for _, l := range logs {
		w := doRequest(t, f.server, http.MethodPost, taskPath+"/time-logs", f.dev.Token, map[string]string{
			"startTime": l.start, "endTime": l.end, "description": "work",
		})
		expectStatus(t, w, http.StatusCreated)
		resp := decodeResponse[TimeLogResponse](t, w)
		if resp.ActualHours != l.expectHours {
			t.Errorf("After %s-%s expected actualHours %d, got %d", l.start, l.end, l.expectHours, resp.ActualHours)
		}
		if resp.TimeLog == nil || resp.TaskID != task.ID {
			t.Errorf("Unexpected time log %+v", resp.TimeLog)
		}
	}

	// 担当外のユーザーと不正な区間
	w := doRequest(t, f.server, http.MethodPost, taskPath+"/time-logs", f.other.Token, map[string]string{
		"startTime": "2025-05-21T09:00:00Z", "endTime": "2025-05-21T10:00:00Z",
	})
	expectStatus(t, w, http.StatusForbidden)
	w = doRequest(t, f.server, http.MethodPost, taskPath+"/time-logs", f.dev.Token, map[string]string{
		"startTime": "2025-05-21T10:00:00Z", "endTime": "2025-05-21T09:00:00Z",
	})
	expectStatus(t, w, http.StatusBadRequest)
	w = doRequest(t, f.server, http.MethodPost, taskPath+"/time-logs", f.dev.Token, map[string]string{
		"startTime": "yesterday", "endTime": "2025-05-21T09:00:00Z",
	})
	expectStatus(t, w, http.StatusBadRequest)

	w = doRequest(t, f.server, http.MethodPatch, taskPath, f.dev.Token, map[string]string{"status": "COMPLETED"})
	expectStatus(t, w, http.StatusOK)
	done := decodeResponse[*model.Task](t, w)
	if done.CompletedAt == nil {
		t.Error("Expected completedAt to be set")
	}
	if done.ActualHours == nil || *done.ActualHours != 2 {
		t.Errorf("Expected actualHours 2, got %v", done.ActualHours)
	}
	if len(done.TimeLogs) != 3 {
		t.Errorf("Expected 3 time logs, got %d", len(done.TimeLogs))
	}

	// 管理者に完了通知が届き、既読にできる
	w = doRequest(t, f.server, http.MethodGet, "/api/v0/notifications", f.admin.Token, nil)
	expectStatus(t, w, http.StatusOK)
	ns := decodeResponse[[]*model.Notification](t, w)
	if len(ns) != 1 || ns[0].Type != model.NotificationTaskCompleted {
		t.Fatalf("Expected one TASK_COMPLETED notification, got %+v", ns)
	}
	var payload model.TaskPayload
	if err := json.Unmarshal(ns[0].Data, &payload); err != nil || payload.TaskID != task.ID {
		t.Errorf("Unexpected notification data %s", ns[0].Data)
	}

	w = doRequest(t, f.server, http.MethodPatch, "/api/v0/notifications", f.admin.Token, map[string]any{
		"notificationIds": []int64{ns[0].ID},
	})
	expectStatus(t, w, http.StatusOK)
	if resp := decodeResponse[MarkNotificationsResponse](t, w); resp.Updated != 1 {
		t.Errorf("Expected 1 updated, got %d", resp.Updated)
	}

	// 再オープンで completedAt がクリアされる
	w = doRequest(t, f.server, http.MethodPatch, taskPath, f.admin.Token, map[string]string{"status": "IN_PROGRESS"})
	expectStatus(t, w, http.StatusOK)
	if reopened := decodeResponse[*model.Task](t, w); reopened.CompletedAt != nil {
		t.Errorf("Expected completedAt to be cleared, got %v", reopened.CompletedAt)
	}
}

func TestMarkAllNotificationsRead(t *testing.T) {
	f := setupAPIFixture(t)
	f.createTask(t, f.dev.User.ID)
	f.createTask(t, f.dev.User.ID)

	w := doRequest(t, f.server, http.MethodPatch, "/api/v0/notifications", f.dev.Token, map[string]any{"markAllAsRead": true})
	expectStatus(t, w, http.StatusOK)
	if resp := decodeResponse[MarkNotificationsResponse](t, w); resp.Updated != 2 {
		t.Errorf("Expected 2 updated, got %d", resp.Updated)
	}

	w = doRequest(t, f.server, http.MethodGet, "/api/v0/notifications", f.dev.Token, nil)
	expectStatus(t, w, http.StatusOK)
	for _, n := range decodeResponse[[]*model.Notification](t, w) {
		if !n.IsRead {
			t.Errorf("Expected notification %d to be read", n.ID)
		}
	}
}
