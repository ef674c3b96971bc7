package model

import (
	"slices"
	"strings"
	"time"
)

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "PENDING"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDelayed    TaskStatus = "DELAYED"
	StatusCompleted  TaskStatus = "COMPLETED"
	StatusCancelled  TaskStatus = "CANCELLED"
)

// IsValid reports whether s is a known task status.
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDelayed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ParseTaskStatus converts s into a TaskStatus.
func ParseTaskStatus(s string) (TaskStatus, error) {
	st := TaskStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", NewValidationError("invalid status: " + s)
	}
	return st, nil
}

// Priority is shared by tasks and modules.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// IsValid reports whether p is a known priority.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// TaskLinks are the optional categorization references of a task. Each is a
// weak link: deleting the referenced row clears it.
type TaskLinks struct {
	ModuleID           *int64 `json:"moduleId"`
	FunctionalityID    *int64 `json:"functionalityId"`
	RequirementID      *int64 `json:"requirementId"`
	FrontendResourceID *int64 `json:"frontendResourceId"`
	BackendResourceID  *int64 `json:"backendResourceId"`
	APIEndpointID      *int64 `json:"apiEndpointId"`
	DatabaseTableID    *int64 `json:"databaseTableId"`
}

// Assignment links a user to a task.
type Assignment struct {
	TaskID     int64     `json:"taskId"`
	UserID     int64     `json:"userId"`
	AssignedBy int64     `json:"assignedBy"`
	CreatedAt  time.Time `json:"createdAt"`

	UserName  string `json:"userName,omitempty"`
	UserEmail string `json:"userEmail,omitempty"`
}

// Task is the unit of trackable work.
type Task struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Status         TaskStatus `json:"status"`
	Priority       Priority   `json:"priority"`
	EstimatedHours *int       `json:"estimatedHours"`
	ActualHours    *int       `json:"actualHours"`
	StartDate      *time.Time `json:"startDate"`
	DueDate        *time.Time `json:"dueDate"`
	CompletedAt    *time.Time `json:"completedAt"`
	ProjectID      int64      `json:"projectId"`
	TaskLinks
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Assignments []*Assignment `json:"assignments"`
	TimeLogs    []*TimeLog    `json:"timeLogs"`
}

// NewTask creates a PENDING task. An empty priority defaults to MEDIUM.
func NewTask(title, description string, projectID int64, priority Priority) (*Task, error) {
	if priority == "" {
		priority = PriorityMedium
	}
	now := time.Now()
	t := &Task{
		Title:       strings.TrimSpace(title),
		Description: description,
		Status:      StatusPending,
		Priority:    priority,
		ProjectID:   projectID,
		CreatedAt:   now,
		UpdatedAt:   now,
		Assignments: []*Assignment{},
		TimeLogs:    []*TimeLog{},
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the task fields.
func (t *Task) Validate() error {
	if t.Title == "" || t.ProjectID <= 0 {
		return NewValidationError("task title and project ID are required")
	}
	if !t.Status.IsValid() {
		return NewValidationError("invalid status: " + string(t.Status))
	}
	if !t.Priority.IsValid() {
		return NewValidationError("invalid priority: " + string(t.Priority))
	}
	if t.EstimatedHours != nil && *t.EstimatedHours < 0 {
		return NewValidationError("estimatedHours must not be negative")
	}
	if (t.Status == StatusCompleted) != (t.CompletedAt != nil) {
		return NewValidationError("completedAt must be set exactly when the task is completed")
	}
	return nil
}

// IsAssignedTo reports whether userID holds an assignment on the task.
func (t *Task) IsAssignedTo(userID int64) bool {
	return slices.ContainsFunc(t.Assignments, func(a *Assignment) bool {
		return a.UserID == userID
	})
}

// CanModify reports whether p may update the task: admins always may,
// other users only when assigned.
func (t *Task) CanModify(p Principal) bool {
	return p.IsAdmin() || t.IsAssignedTo(p.ID)
}

// TransitionRule decides whether a task may move from one status to another.
type TransitionRule func(from, to TaskStatus) error

// AnyTransition allows every status change.
func AnyTransition(from, to TaskStatus) error {
	return nil
}

// StatusChange describes the outcome of ApplyStatusChange.
type StatusChange struct {
	From TaskStatus
	To   TaskStatus
}

// Completed reports whether the change requested COMPLETED.
func (c StatusChange) Completed() bool {
	return c.To == StatusCompleted
}

// Reopened reports whether the task left COMPLETED.
func (c StatusChange) Reopened() bool {
	return c.From == StatusCompleted && c.To != StatusCompleted
}

// ApplyStatusChange moves t to next and maintains CompletedAt: it is set to
// now whenever next is COMPLETED and cleared when leaving COMPLETED.
func ApplyStatusChange(t *Task, next TaskStatus, now time.Time) StatusChange {
	change := StatusChange{From: t.Status, To: next}
	t.Status = next
	switch {
	case change.Completed():
		completedAt := now
		t.CompletedAt = &completedAt
	case change.Reopened():
		t.CompletedAt = nil
	}
	return change
}

// TaskPatch holds the fields of a partial task update. Nil fields are left
// unchanged.
type TaskPatch struct {
	Title          *string
	Description    *string
	Priority       *Priority
	EstimatedHours *int
	DueDate        *time.Time
	Status         *TaskStatus
}

// IsEmpty reports whether the patch changes nothing.
func (p *TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil &&
		p.EstimatedHours == nil && p.DueDate == nil && p.Status == nil
}

// Apply writes the patch onto t. Status side effects go through
// ApplyStatusChange after rule approves the transition. The returned change
// is nil when the patch has no status.
func (p *TaskPatch) Apply(t *Task, rule TransitionRule, now time.Time) (*StatusChange, error) {
	if p.Title != nil {
		t.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.EstimatedHours != nil {
		hours := *p.EstimatedHours
		t.EstimatedHours = &hours
	}
	if p.DueDate != nil {
		due := *p.DueDate
		t.DueDate = &due
	}

	var change *StatusChange
	if p.Status != nil {
		if rule == nil {
			rule = AnyTransition
		}
		if err := rule(t.Status, *p.Status); err != nil {
			return nil, err
		}
		c := ApplyStatusChange(t, *p.Status, now)
		change = &c
	}
	t.UpdatedAt = now

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return change, nil
}
