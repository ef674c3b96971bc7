package store

import (
	"context"
	"fmt"
	"time"

	"github.com/stsysd/tasktrack/db"
	"github.com/stsysd/tasktrack/model"
)

// CreateUser は新しいユーザーをデータベースに保存します。
func (s *SQLiteStore) CreateUser(ctx context.Context, user *model.User) error {
	// バリデーション
	if err := user.Validate(); err != nil {
		return err
	}

	id, err := s.queries.CreateUser(ctx, db.CreateUserParams{
		Email:     user.Email,
		Name:      user.Name,
		Role:      string(user.Role),
		IsActive:  user.IsActive,
		CreatedAt: formatTime(user.CreatedAt),
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", mapError(err))
	}
	user.ID = id

	return nil
}

// GetUser は指定されたIDのユーザーを取得します。
func (s *SQLiteStore) GetUser(ctx context.Context, id int64) (*model.User, error) {
	row, err := s.queries.GetUser(ctx, id)
	if err != nil {
		return nil, notFound(err, model.ErrUserNotFound)
	}
	return toUser(row)
}

// GetUserByEmail は指定されたメールアドレスのユーザーを取得します。
func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	row, err := s.queries.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, notFound(err, model.ErrUserNotFound)
	}
	return toUser(row)
}

// ListUsers はユーザー一覧を新しい順に取得します。
func (s *SQLiteStore) ListUsers(ctx context.Context, activeOnly bool) ([]*model.User, error) {
	var (
		rows []db.User
		err  error
	)
	if activeOnly {
		rows, err = s.queries.ListActiveUsers(ctx)
	} else {
		rows, err = s.queries.ListUsers(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*model.User, 0, len(rows))
	for _, row := range rows {
		user, err := toUser(row)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// ListUserIDsByRole は指定されたロールを持つユーザーのIDを取得します。
func (s *SQLiteStore) ListUserIDsByRole(ctx context.Context, role model.Role) ([]int64, error) {
	ids, err := s.queries.ListUserIDsByRole(ctx, string(role))
	if err != nil {
		return nil, fmt.Errorf("failed to list users by role: %w", err)
	}
	return ids, nil
}

// UpdateUserRole はユーザーのロールを変更し、変更後のユーザーを返します。
func (s *SQLiteStore) UpdateUserRole(ctx context.Context, id int64, role model.Role) (*model.User, error) {
	if !role.IsValid() {
		return nil, model.NewValidationError("invalid role: " + string(role))
	}

	n, err := s.queries.UpdateUserRole(ctx, db.UpdateUserRoleParams{Role: string(role), ID: id})
	if err != nil {
		return nil, fmt.Errorf("failed to update user role: %w", mapError(err))
	}
	if n == 0 {
		return nil, model.ErrUserNotFound
	}

	return s.GetUser(ctx, id)
}

func toUser(row db.User) (*model.User, error) {
	createdAt, err := parseTime(row.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &model.User{
		ID:        row.ID,
		Email:     row.Email,
		Name:      row.Name,
		Role:      model.Role(row.Role),
		IsActive:  row.IsActive,
		CreatedAt: createdAt,
	}, nil
}

// CreateSession はユーザーの既存セッションを削除してから新しいセッションを保存します。
func (s *SQLiteStore) CreateSession(ctx context.Context, session *model.Session) error {
	return s.withTx(ctx, func(q *db.Queries) error {
		if err := q.DeleteUserSessions(ctx, session.UserID); err != nil {
			return fmt.Errorf("failed to delete previous sessions: %w", err)
		}
		err := q.CreateSession(ctx, db.CreateSessionParams{
			Token:     session.Token,
			UserID:    session.UserID,
			ExpiresAt: formatTime(session.ExpiresAt),
		})
		if err != nil {
			return fmt.Errorf("failed to create session: %w", mapError(err))
		}
		return nil
	})
}

// GetSession は指定されたトークンのセッションを取得します。
func (s *SQLiteStore) GetSession(ctx context.Context, token string) (*model.Session, error) {
	row, err := s.queries.GetSession(ctx, token)
	if err != nil {
		return nil, notFound(err, model.ErrSessionNotFound)
	}
	expiresAt, err := parseTime(row.ExpiresAt)
	if err != nil {
		return nil, err
	}
	return &model.Session{Token: row.Token, UserID: row.UserID, ExpiresAt: expiresAt}, nil
}

// DeleteSession は指定されたトークンのセッションを削除します。
func (s *SQLiteStore) DeleteSession(ctx context.Context, token string) error {
	if err := s.queries.DeleteSession(ctx, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteExpiredSessions は now 時点で期限切れのセッションを削除し、削除件数を返します。
func (s *SQLiteStore) DeleteExpiredSessions(ctx context.Context, now time.Time) (int, error) {
	n, err := s.queries.DeleteExpiredSessions(ctx, formatTime(now))
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return int(n), nil
}
