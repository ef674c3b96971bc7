package model

import (
	"strings"
	"time"
)

// Role is the authorization role of a user.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleDeveloper Role = "DEVELOPER"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleDeveloper
}

// ParseRole converts s into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", NewValidationError("invalid role: " + s)
	}
	return r, nil
}

// User is a person who can sign in.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUser creates a new active user. The ID is assigned by the store.
func NewUser(email, name string, role Role) (*User, error) {
	u := &User{
		Email:     strings.TrimSpace(email),
		Name:      strings.TrimSpace(name),
		Role:      role,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// Validate checks the required fields of the user.
func (u *User) Validate() error {
	if u.Email == "" {
		return NewValidationError("email is required")
	}
	if !strings.Contains(u.Email, "@") {
		return NewValidationError("invalid email format")
	}
	if !u.Role.IsValid() {
		return NewValidationError("invalid role: " + string(u.Role))
	}
	return nil
}

// Principal returns the acting identity of u.
func (u *User) Principal() Principal {
	return Principal{ID: u.ID, Role: u.Role}
}

// Principal is the authenticated caller of an operation.
type Principal struct {
	ID   int64
	Role Role
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// Session binds an opaque token to a user until it expires.
type Session struct {
	Token     string    `json:"token"`
	UserID    int64     `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session is no longer valid at now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
