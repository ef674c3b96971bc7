package model

import (
	"testing"
)

// TestParseID tests the ParseID function
func TestParseID(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    int64
	}{
		{name: "Valid ID", input: "42", expected: 42},
		{name: "Empty", input: "", expectError: true},
		{name: "Zero", input: "0", expectError: true},
		{name: "Negative", input: "-3", expectError: true},
		{name: "Non-numeric", input: "abc", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseID("task_id", tt.input)
			if tt.expectError {
				if err == nil {
					t.Errorf("expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, id)
			}
		})
	}
}

// TestNewTaskFilter tests building task filters from query values
func TestNewTaskFilter(t *testing.T) {
	caller := Principal{ID: 9, Role: RoleDeveloper}

	t.Run("Empty filter", func(t *testing.T) {
		f, err := NewTaskFilter("", "", "", "", caller)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !f.IsEmpty() {
			t.Errorf("expected empty filter, got %+v", f)
		}
	})

	t.Run("Me resolves to caller", func(t *testing.T) {
		f, err := NewTaskFilter("", "", "me", "", caller)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.AssigneeID == nil || *f.AssigneeID != caller.ID {
			t.Errorf("expected assignee %d, got %v", caller.ID, f.AssigneeID)
		}
	})

	t.Run("All fields", func(t *testing.T) {
		f, err := NewTaskFilter("1", "2", "3", "completed", caller)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *f.ProjectID != 1 || *f.ModuleID != 2 || *f.AssigneeID != 3 || *f.Status != StatusCompleted {
			t.Errorf("unexpected filter %+v", f)
		}
	})

	t.Run("Invalid status", func(t *testing.T) {
		if _, err := NewTaskFilter("", "", "", "DONE", caller); err == nil {
			t.Error("expected error for invalid status")
		}
	})

	t.Run("Invalid project", func(t *testing.T) {
		if _, err := NewTaskFilter("x", "", "", "", caller); err == nil {
			t.Error("expected error for invalid projectId")
		}
	})
}

// TestNewTimestamp tests the NewTimestamp function
func TestNewTimestamp(t *testing.T) {
	ts, err := NewTimestamp("startTime", "2025-05-21T14:30:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ts.Time().Hour() != 14 {
		t.Errorf("expected hour 14, got %d", ts.Time().Hour())
	}

	if _, err := NewTimestamp("startTime", ""); err == nil {
		t.Error("expected error for empty timestamp")
	}
	if _, err := NewTimestamp("startTime", "2025-05-21"); err == nil {
		t.Error("expected error for date-only timestamp")
	}
}

// TestParseOptionalDate tests the ParseOptionalDate function
func TestParseOptionalDate(t *testing.T) {
	if d, err := ParseOptionalDate("dueDate", nil); err != nil || d != nil {
		t.Errorf("expected nil date, got %v (%v)", d, err)
	}
	s := "2025-06-01"
	d, err := ParseOptionalDate("dueDate", &s)
	if err != nil || d == nil || d.Month() != 6 {
		t.Errorf("expected June date, got %v (%v)", d, err)
	}
	bad := "tomorrow"
	if _, err := ParseOptionalDate("dueDate", &bad); err == nil {
		t.Error("expected error for invalid date")
	}
}
