package model

import (
	"math"
	"time"
)

// TimeLog is one continuous work session against a task. Logs are
// append-only.
type TimeLog struct {
	ID          int64     `json:"id"`
	TaskID      int64     `json:"taskId"`
	UserID      int64     `json:"userId"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Duration    int       `json:"duration"` // minutes
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`

	UserName string `json:"userName,omitempty"`
}

// NewTimeLog creates a session for userID on taskID. The duration is the
// interval rounded to the nearest minute.
func NewTimeLog(taskID, userID int64, start, end time.Time, description string) (*TimeLog, error) {
	l := &TimeLog{
		TaskID:      taskID,
		UserID:      userID,
		StartTime:   start,
		EndTime:     end,
		Duration:    DurationMinutes(start, end),
		Description: description,
		CreatedAt:   time.Now(),
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// Validate checks the session interval.
func (l *TimeLog) Validate() error {
	if l.StartTime.IsZero() || l.EndTime.IsZero() {
		return NewValidationError("startTime and endTime are required")
	}
	if !l.EndTime.After(l.StartTime) {
		return NewValidationError("endTime must be after startTime")
	}
	if l.TaskID <= 0 || l.UserID <= 0 {
		return NewValidationError("task and user are required")
	}
	return nil
}

// DurationMinutes returns end-start in whole minutes, rounded half away from
// zero.
func DurationMinutes(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Minutes()))
}

// ActualHours converts a total of logged minutes into whole hours.
func ActualHours(totalMinutes int64) int {
	return int(math.Round(float64(totalMinutes) / 60))
}
