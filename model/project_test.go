package model

import (
	"errors"
	"testing"
	"time"
)

// TestNewProject tests the NewProject constructor
func TestNewProject(t *testing.T) {
	project, err := NewProject("E-commerce", "Shop rewrite", nil, nil, 1)
	if err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}
	if project.Status != ProjectPlanning {
		t.Errorf("Expected status %s, got %s", ProjectPlanning, project.Status)
	}
	if project.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}
}

// TestProjectValidate tests the Validate method
func TestProjectValidate(t *testing.T) {
	start := testTime()
	before := start.Add(-24 * time.Hour)

	tests := []struct {
		name        string
		project     *Project
		expectError bool
	}{
		{"Valid project", &Project{Name: "p", Status: ProjectPlanning}, false},
		{"Empty name", &Project{Name: "", Status: ProjectPlanning}, true},
		{"Bad status", &Project{Name: "p", Status: "DONE"}, true},
		{"Progress too high", &Project{Name: "p", Status: ProjectPlanning, Progress: 101}, true},
		{"End before start", &Project{Name: "p", Status: ProjectPlanning, StartDate: &start, EndDate: &before}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.project.Validate()
			if tt.expectError && err == nil {
				t.Error("expected error but got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewModuleWithFunctionalities(t *testing.T) {
	m, err := NewModule("User Management", "", "", 1, 1)
	if err != nil {
		t.Fatalf("Failed to create module: %v", err)
	}
	if m.Priority != PriorityMedium {
		t.Errorf("Expected default priority MEDIUM, got %s", m.Priority)
	}

	m.Functionalities = append(m.Functionalities, &Functionality{Name: "Login", Type: FunctionalityBackend})
	if err := m.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Functionalities[0].Status != ProjectPlanning {
		t.Errorf("Expected functionality status to default to PLANNING, got %s", m.Functionalities[0].Status)
	}

	m.Functionalities = append(m.Functionalities, &Functionality{Name: "Magic", Type: "SORCERY"})
	var validationErr *ValidationError
	if err := m.Validate(); !errors.As(err, &validationErr) {
		t.Errorf("Expected ValidationError for bad functionality type, got %v", err)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrTaskNotFound, KindNotFound},
		{ErrForbidden, KindForbidden},
		{ErrUnauthenticated, KindUnauthenticated},
		{ErrConflict, KindConflict},
		{NewValidationError("x"), KindValidation},
		{errors.New("boom"), KindInternal},
	}

	for _, tt := range tests {
		if got := KindOf(tt.err); got != tt.want {
			t.Errorf("KindOf(%v) = %s, want %s", tt.err, got, tt.want)
		}
	}
}

func TestParseRole(t *testing.T) {
	if r, err := ParseRole("admin"); err != nil || r != RoleAdmin {
		t.Errorf("expected ADMIN, got %s (%v)", r, err)
	}
	if _, err := ParseRole("OWNER"); err == nil {
		t.Error("expected error for unknown role")
	}
}
