package model

import (
	"errors"
	"testing"
	"time"
)

func testTime() time.Time {
	return time.Date(2025, 5, 21, 14, 30, 0, 0, time.UTC)
}

func TestNewTask(t *testing.T) {
	task, err := NewTask("Write login page", "desc", 1, "")
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}
	if task.Status != StatusPending {
		t.Errorf("Expected status %s, got %s", StatusPending, task.Status)
	}
	if task.Priority != PriorityMedium {
		t.Errorf("Expected default priority %s, got %s", PriorityMedium, task.Priority)
	}
	if task.CompletedAt != nil {
		t.Error("Expected CompletedAt to be nil for a new task")
	}
}

func TestNewTaskRequiredFields(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		projectID int64
	}{
		{"Empty title", "", 1},
		{"Blank title", "   ", 1},
		{"Missing project", "title", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTask(tt.title, "", tt.projectID, "")
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Errorf("Expected ValidationError, got %v", err)
			}
		})
	}
}

func TestApplyStatusChange(t *testing.T) {
	now := testTime()
	earlier := now.Add(-time.Hour)

	tests := []struct {
		name          string
		from          TaskStatus
		completedAt   *time.Time
		to            TaskStatus
		wantCompleted *time.Time
	}{
		{"Pending to completed", StatusPending, nil, StatusCompleted, &now},
		{"In progress to completed", StatusInProgress, nil, StatusCompleted, &now},
		{"Completed again refreshes timestamp", StatusCompleted, &earlier, StatusCompleted, &now},
		{"Completed to in progress clears", StatusCompleted, &earlier, StatusInProgress, nil},
		{"Completed to cancelled clears", StatusCompleted, &earlier, StatusCancelled, nil},
		{"Pending to delayed stays nil", StatusPending, nil, StatusDelayed, nil},
		{"Cancelled to pending stays nil", StatusCancelled, nil, StatusPending, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := &Task{Status: tt.from, CompletedAt: tt.completedAt}
			change := ApplyStatusChange(task, tt.to, now)

			if task.Status != tt.to {
				t.Errorf("Expected status %s, got %s", tt.to, task.Status)
			}
			if change.From != tt.from || change.To != tt.to {
				t.Errorf("Unexpected change %+v", change)
			}
			switch {
			case tt.wantCompleted == nil && task.CompletedAt != nil:
				t.Errorf("Expected CompletedAt nil, got %v", task.CompletedAt)
			case tt.wantCompleted != nil && task.CompletedAt == nil:
				t.Errorf("Expected CompletedAt %v, got nil", tt.wantCompleted)
			case tt.wantCompleted != nil && !task.CompletedAt.Equal(*tt.wantCompleted):
				t.Errorf("Expected CompletedAt %v, got %v", tt.wantCompleted, task.CompletedAt)
			}
		})
	}
}

func TestStatusChangeFlags(t *testing.T) {
	if !(StatusChange{From: StatusPending, To: StatusCompleted}).Completed() {
		t.Error("Expected Completed for transition into COMPLETED")
	}
	if (StatusChange{From: StatusCompleted, To: StatusCompleted}).Reopened() {
		t.Error("Did not expect Reopened when staying COMPLETED")
	}
	if !(StatusChange{From: StatusCompleted, To: StatusPending}).Reopened() {
		t.Error("Expected Reopened when leaving COMPLETED")
	}
}

func TestTaskPatchApply(t *testing.T) {
	task, err := NewTask("Original", "", 1, PriorityLow)
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	title := "Renamed"
	priority := PriorityUrgent
	hours := 8
	status := StatusCompleted
	patch := &TaskPatch{Title: &title, Priority: &priority, EstimatedHours: &hours, Status: &status}

	change, err := patch.Apply(task, nil, testTime())
	if err != nil {
		t.Fatalf("Failed to apply patch: %v", err)
	}
	if change == nil || !change.Completed() {
		t.Fatalf("Expected completed status change, got %+v", change)
	}
	if task.Title != title || task.Priority != priority || *task.EstimatedHours != hours {
		t.Errorf("Patch fields not applied: %+v", task)
	}
	if task.CompletedAt == nil {
		t.Error("Expected CompletedAt to be set")
	}
	if !task.UpdatedAt.Equal(testTime()) {
		t.Errorf("Expected UpdatedAt %v, got %v", testTime(), task.UpdatedAt)
	}
}

func TestTaskPatchApplyWithoutStatus(t *testing.T) {
	task, _ := NewTask("Original", "", 1, "")
	desc := "more detail"
	change, err := (&TaskPatch{Description: &desc}).Apply(task, nil, testTime())
	if err != nil {
		t.Fatalf("Failed to apply patch: %v", err)
	}
	if change != nil {
		t.Errorf("Expected no status change, got %+v", change)
	}
	if task.Description != desc {
		t.Errorf("Expected description %q, got %q", desc, task.Description)
	}
}

func TestTaskPatchApplyRuleRejects(t *testing.T) {
	task, _ := NewTask("Original", "", 1, "")
	status := StatusCompleted
	errNoSkip := errors.New("cannot skip IN_PROGRESS")
	rule := func(from, to TaskStatus) error {
		if from == StatusPending && to == StatusCompleted {
			return errNoSkip
		}
		return nil
	}

	_, err := (&TaskPatch{Status: &status}).Apply(task, rule, testTime())
	if !errors.Is(err, errNoSkip) {
		t.Fatalf("Expected rule error, got %v", err)
	}
	if task.Status != StatusPending || task.CompletedAt != nil {
		t.Errorf("Task must be unchanged when the rule rejects: %+v", task)
	}
}

func TestTaskPatchApplyInvalidPriority(t *testing.T) {
	task, _ := NewTask("Original", "", 1, "")
	priority := Priority("SOMEDAY")
	_, err := (&TaskPatch{Priority: &priority}).Apply(task, nil, testTime())
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Errorf("Expected ValidationError, got %v", err)
	}
}

func TestCanModify(t *testing.T) {
	task := &Task{Assignments: []*Assignment{{TaskID: 1, UserID: 7}}}

	tests := []struct {
		name      string
		principal Principal
		want      bool
	}{
		{"Admin", Principal{ID: 1, Role: RoleAdmin}, true},
		{"Assignee", Principal{ID: 7, Role: RoleDeveloper}, true},
		{"Other developer", Principal{ID: 8, Role: RoleDeveloper}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := task.CanModify(tt.principal); got != tt.want {
				t.Errorf("CanModify = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseTaskStatus(t *testing.T) {
	st, err := ParseTaskStatus("in_progress")
	if err != nil || st != StatusInProgress {
		t.Errorf("Expected IN_PROGRESS, got %s (%v)", st, err)
	}
	if _, err := ParseTaskStatus("DONE"); err == nil {
		t.Error("Expected error for unknown status")
	}
}
