package api

import (
	"net/http"
	"strings"

	"github.com/stsysd/tasktrack/model"
)

// AuthResponse はサインアップ・サインインのレスポンスです。
type AuthResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// SignUpParams represents parameters for signing up.
type SignUpParams struct {
	Name  string
	Email string
}

// NewSignUpParams creates sign-up parameters from HTTP request.
func NewSignUpParams(r *http.Request) (*SignUpParams, error) {
	var requestBody struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := decodeBody(r, &requestBody); err != nil {
		return nil, err
	}
	if strings.TrimSpace(requestBody.Email) == "" {
		return nil, model.NewValidationError("email is required")
	}
	return &SignUpParams{Name: requestBody.Name, Email: requestBody.Email}, nil
}

func setSessionCookie(w http.ResponseWriter, session *model.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// handleSignUp はユーザー登録エンドポイントのハンドラーです。
func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	params, err := NewSignUpParams(r)
	if err != nil {
		writeServiceError(w, err, "to sign up")
		return
	}

	user, session, err := s.svc.SignUp(r.Context(), params.Name, params.Email)
	if err != nil {
		writeServiceError(w, err, "to sign up")
		return
	}

	setSessionCookie(w, session)
	writeJSON(w, http.StatusCreated, AuthResponse{Token: session.Token, User: user})
}

// handleLogin はサインインエンドポイントのハンドラーです。
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var requestBody struct {
		Email string `json:"email"`
	}
	if err := decodeBody(r, &requestBody); err != nil {
		writeServiceError(w, err, "to sign in")
		return
	}

	user, session, err := s.svc.SignIn(r.Context(), requestBody.Email)
	if err != nil {
		writeServiceError(w, err, "to sign in")
		return
	}

	setSessionCookie(w, session)
	writeJSON(w, http.StatusOK, AuthResponse{Token: session.Token, User: user})
}

// handleLogout は現在のセッションを破棄します。
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.SignOut(r.Context(), sessionToken(r)); err != nil {
		writeServiceError(w, err, "to sign out")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Signed out"})
}

// handleMe は認証済みユーザー自身を返します。
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, currentUser(r))
}

// handleListUsers はアクティブなユーザー一覧を返します。管理者のみ。
func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.svc.ListUsers(r.Context(), principal(r))
	if err != nil {
		writeServiceError(w, err, "to list users")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// ChangeRoleParams represents parameters for changing a user's role.
type ChangeRoleParams struct {
	UserID int64
	Role   string
}

// NewChangeRoleParams creates role change parameters from HTTP request.
func NewChangeRoleParams(r *http.Request) (*ChangeRoleParams, error) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		return nil, err
	}

	var requestBody struct {
		Role string `json:"role"`
	}
	if err := decodeBody(r, &requestBody); err != nil {
		return nil, err
	}

	return &ChangeRoleParams{UserID: userID, Role: requestBody.Role}, nil
}

// handleChangeRole はユーザーのロールを変更します。管理者のみ。
func (s *Server) handleChangeRole(w http.ResponseWriter, r *http.Request) {
	params, err := NewChangeRoleParams(r)
	if err != nil {
		writeServiceError(w, err, "to change role")
		return
	}

	user, err := s.svc.ChangeRole(r.Context(), principal(r), params.UserID, params.Role)
	if err != nil {
		writeServiceError(w, err, "to change role")
		return
	}
	writeJSON(w, http.StatusOK, user)
}
