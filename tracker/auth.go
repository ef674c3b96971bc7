package tracker

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/stsysd/tasktrack/model"
)

// SignUp creates a user and opens a session for it. Emails listed in
// Options.AdminEmails become admins; everyone else is a developer.
func (s *Service) SignUp(ctx context.Context, name, email string) (*model.User, *model.Session, error) {
	email = normalizeEmail(email)
	role := model.RoleDeveloper
	if s.adminEmails[email] {
		role = model.RoleAdmin
	}

	user, err := model.NewUser(email, name, role)
	if err != nil {
		return nil, nil, err
	}
	if user.Name == "" {
		return nil, nil, model.NewValidationError("name is required")
	}
	user.CreatedAt = s.now()

	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, nil, fmt.Errorf("email already registered: %w", model.ErrConflict)
		}
		return nil, nil, err
	}

	session, err := s.openSession(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// SignIn opens a session for the active user with the given email. Any
// previous session of the user is revoked.
func (s *Service) SignIn(ctx context.Context, email string) (*model.User, *model.Session, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, nil, model.NewValidationError("email is required")
	}

	user, err := s.store.GetUserByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return nil, nil, model.ErrUnauthenticated
	}
	if err != nil {
		return nil, nil, err
	}
	if !user.IsActive {
		return nil, nil, model.ErrForbidden
	}

	session, err := s.openSession(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

func (s *Service) openSession(ctx context.Context, user *model.User) (*model.Session, error) {
	session := &model.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: s.now().Add(s.sessionTTL),
	}
	if err := s.store.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SignOut revokes the session identified by token.
func (s *Service) SignOut(ctx context.Context, token string) error {
	return s.store.DeleteSession(ctx, token)
}

// Authenticate resolves a session token to its user. Unknown, expired and
// inactive sessions all yield ErrUnauthenticated.
func (s *Service) Authenticate(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, model.ErrUnauthenticated
	}

	session, err := s.store.GetSession(ctx, token)
	if errors.Is(err, model.ErrNotFound) {
		return nil, model.ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}
	if session.Expired(s.now()) {
		return nil, model.ErrUnauthenticated
	}

	user, err := s.store.GetUser(ctx, session.UserID)
	if errors.Is(err, model.ErrNotFound) {
		return nil, model.ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, model.ErrUnauthenticated
	}
	return user, nil
}

// PurgeSessions removes expired sessions and reports how many were removed.
func (s *Service) PurgeSessions(ctx context.Context) (int, error) {
	return s.store.DeleteExpiredSessions(ctx, s.now())
}

// ListUsers returns the active users. Admin only.
func (s *Service) ListUsers(ctx context.Context, p model.Principal) ([]*model.User, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	return s.store.ListUsers(ctx, true)
}

// ChangeRole sets the role of userID. Admin only.
func (s *Service) ChangeRole(ctx context.Context, p model.Principal, userID int64, role string) (*model.User, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	r, err := model.ParseRole(role)
	if err != nil {
		return nil, err
	}
	return s.store.UpdateUserRole(ctx, userID, r)
}

// SetRoleByEmail sets the role of the user with the given email. It is meant
// for operator tooling and performs no authorization.
func (s *Service) SetRoleByEmail(ctx context.Context, email string, role model.Role) (*model.User, error) {
	user, err := s.store.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	return s.store.UpdateUserRole(ctx, user.ID, role)
}
