// Package model provides value objects for API parameter validation.
package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseID parses a positive integer identifier.
func ParseID(name, s string) (int64, error) {
	if s == "" {
		return 0, NewValidationError(name + " is required")
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, NewValidationError("invalid " + name)
	}
	return id, nil
}

// ParseOptionalID parses s as an identifier, returning nil for an empty
// string.
func ParseOptionalID(name, s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	id, err := ParseID(name, s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// ParseDateTime parses date string with flexible format support.
func ParseDateTime(dateStr string) (time.Time, error) {
	// Try RFC3339 format first (with time)
	if t, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return t, nil
	}

	// Try date-only format (YYYY-MM-DD)
	if t, err := time.Parse("2006-01-02", dateStr); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unable to parse date")
}

// ParseOptionalDate parses an optional date field named name.
func ParseOptionalDate(name string, s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := ParseDateTime(*s)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("invalid %s. Use ISO8601 format (YYYY-MM-DD or YYYY-MM-DDThh:mm:ssZ)", name))
	}
	return &t, nil
}

// Timestamp represents a required timestamp value object.
type Timestamp struct {
	value time.Time
}

// NewTimestamp creates a new timestamp value object.
func NewTimestamp(name, timestampStr string) (*Timestamp, error) {
	if timestampStr == "" {
		return nil, NewValidationError(name + " is required")
	}

	timestamp, err := time.Parse(time.RFC3339, timestampStr)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("invalid %s format. Use ISO8601 format (YYYY-MM-DDThh:mm:ssZ)", name))
	}

	return &Timestamp{value: timestamp}, nil
}

// Time returns the time value.
func (t *Timestamp) Time() time.Time {
	return t.value
}

// MeToken is accepted in place of a user ID to mean the caller.
const MeToken = "me"

// TaskFilter narrows a task listing. Nil fields do not filter.
type TaskFilter struct {
	ProjectID  *int64
	ModuleID   *int64
	AssigneeID *int64
	Status     *TaskStatus
}

// NewTaskFilter builds a filter from query values. userID may be "me",
// which resolves to caller.
func NewTaskFilter(projectID, moduleID, userID, status string, caller Principal) (*TaskFilter, error) {
	f := &TaskFilter{}
	var err error

	if f.ProjectID, err = ParseOptionalID("projectId", projectID); err != nil {
		return nil, err
	}
	if f.ModuleID, err = ParseOptionalID("moduleId", moduleID); err != nil {
		return nil, err
	}

	if strings.EqualFold(userID, MeToken) {
		id := caller.ID
		f.AssigneeID = &id
	} else if f.AssigneeID, err = ParseOptionalID("userId", userID); err != nil {
		return nil, err
	}

	if status != "" {
		st, err := ParseTaskStatus(status)
		if err != nil {
			return nil, err
		}
		f.Status = &st
	}

	return f, nil
}

// IsEmpty reports whether the filter matches every task.
func (f *TaskFilter) IsEmpty() bool {
	return f.ProjectID == nil && f.ModuleID == nil && f.AssigneeID == nil && f.Status == nil
}
