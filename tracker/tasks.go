package tracker

import (
	"context"
	"log"
	"slices"
	"time"

	"github.com/stsysd/tasktrack/model"
	"github.com/stsysd/tasktrack/notify"
)

// CreateTaskInput holds the fields of a new task.
type CreateTaskInput struct {
	Title          string
	Description    string
	Priority       model.Priority
	EstimatedHours *int
	StartDate      *time.Time
	DueDate        *time.Time
	ProjectID      int64
	model.TaskLinks
	AssignedUserIDs []int64
}

// GetTask returns a task with its assignments and time logs.
func (s *Service) GetTask(ctx context.Context, p model.Principal, id int64) (*model.Task, error) {
	return s.store.GetTask(ctx, id)
}

// ListTasks returns the tasks matching filter, newest first.
func (s *Service) ListTasks(ctx context.Context, p model.Principal, filter *model.TaskFilter) ([]*model.Task, error) {
	return s.store.ListTasks(ctx, filter)
}

// CreateTask creates a task and its assignments in one transaction, then
// notifies each assignee. Admin only.
func (s *Service) CreateTask(ctx context.Context, p model.Principal, in CreateTaskInput) (*model.Task, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}

	task, err := model.NewTask(in.Title, in.Description, in.ProjectID, in.Priority)
	if err != nil {
		return nil, err
	}
	if in.EstimatedHours != nil && *in.EstimatedHours < 0 {
		return nil, model.NewValidationError("estimatedHours must not be negative")
	}
	now := s.now()
	task.EstimatedHours = in.EstimatedHours
	task.StartDate = in.StartDate
	task.DueDate = in.DueDate
	task.TaskLinks = in.TaskLinks
	task.CreatedAt = now
	task.UpdatedAt = now

	assignees := uniqueIDs(in.AssignedUserIDs)
	if err := s.store.CreateTask(ctx, task, assignees, p.ID); err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, notify.TaskAssigned(task, assignees, now))
	return task, nil
}

// UpdateTask applies patch to a task. Admins may update any task, other
// users only tasks they are assigned to. When the patch sets the status to
// COMPLETED every admin is notified.
func (s *Service) UpdateTask(ctx context.Context, p model.Principal, id int64, patch *model.TaskPatch) (*model.Task, error) {
	if patch == nil {
		patch = &model.TaskPatch{}
	}
	now := s.now()

	var change *model.StatusChange
	task, err := s.store.UpdateTask(ctx, id, func(t *model.Task) error {
		if !t.CanModify(p) {
			return model.ErrForbidden
		}
		c, err := patch.Apply(t, s.rule, now)
		if err != nil {
			return err
		}
		change = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	if change != nil && change.Completed() {
		s.notifyAdmins(ctx, task, now)
	}
	return task, nil
}

func (s *Service) notifyAdmins(ctx context.Context, task *model.Task, now time.Time) {
	admins, err := s.store.ListUserIDsByRole(ctx, model.RoleAdmin)
	if err != nil {
		// 通知の失敗はタスク更新の結果に影響させない
		log.Printf("Failed to list admins for task %d: %v", task.ID, err)
		return
	}
	s.notifier.Notify(ctx, notify.TaskCompleted(task, admins, now))
}

// DeleteTask deletes a task with its assignments and time logs. Admin only.
func (s *Service) DeleteTask(ctx context.Context, p model.Principal, id int64) error {
	if err := requireAdmin(p); err != nil {
		return err
	}
	return s.store.DeleteTask(ctx, id)
}

// LogTime records a work session of p on a task and returns it together with
// the task's recomputed actual hours. Only assignees may log time.
func (s *Service) LogTime(ctx context.Context, p model.Principal, taskID int64, start, end time.Time, description string) (*model.TimeLog, int, error) {
	entry, err := model.NewTimeLog(taskID, p.ID, start, end, description)
	if err != nil {
		return nil, 0, err
	}
	entry.CreatedAt = s.now()

	hours, err := s.store.CreateTimeLog(ctx, entry, func(t *model.Task) error {
		if !t.IsAssignedTo(p.ID) {
			return model.ErrForbidden
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return entry, hours, nil
}

func uniqueIDs(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
