package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/stsysd/tasktrack/db"
	"github.com/stsysd/tasktrack/model"
)

// CreateTask はタスクと担当者をデータベースに保存します。
// 任意の参照 (モジュール、機能、要件、リソース) が存在しない場合はトランザクション全体が失敗します。
func (s *SQLiteStore) CreateTask(ctx context.Context, task *model.Task, assigneeIDs []int64, assignedBy int64) error {
	// バリデーション
	if err := task.Validate(); err != nil {
		return err
	}

	return s.withTx(ctx, func(q *db.Queries) error {
		id, err := q.CreateTask(ctx, db.CreateTaskParams{
			Title:              task.Title,
			Description:        task.Description,
			Status:             string(task.Status),
			Priority:           string(task.Priority),
			EstimatedHours:     nullInt(task.EstimatedHours),
			ActualHours:        nullInt(task.ActualHours),
			StartDate:          nullTime(task.StartDate),
			DueDate:            nullTime(task.DueDate),
			CompletedAt:        nullTime(task.CompletedAt),
			ProjectID:          task.ProjectID,
			ModuleID:           nullID(task.ModuleID),
			FunctionalityID:    nullID(task.FunctionalityID),
			RequirementID:      nullID(task.RequirementID),
			FrontendResourceID: nullID(task.FrontendResourceID),
			BackendResourceID:  nullID(task.BackendResourceID),
			ApiEndpointID:      nullID(task.APIEndpointID),
			DatabaseTableID:    nullID(task.DatabaseTableID),
			CreatedAt:          formatTime(task.CreatedAt),
			UpdatedAt:          formatTime(task.UpdatedAt),
		})
		if err != nil {
			return fmt.Errorf("failed to create task: %w", mapError(err))
		}

		// 担当者を個別に挿入
		createdAt := formatTime(task.CreatedAt)
		for _, userID := range assigneeIDs {
			err := q.CreateAssignment(ctx, db.CreateAssignmentParams{
				TaskID:     id,
				UserID:     userID,
				AssignedBy: assignedBy,
				CreatedAt:  createdAt,
			})
			if err != nil {
				return fmt.Errorf("failed to assign user %d: %w", userID, mapError(err))
			}
		}

		task.ID = id
		return loadTaskRelations(ctx, q, task)
	})
}

// GetTask は指定されたIDのタスクを取得します。
func (s *SQLiteStore) GetTask(ctx context.Context, id int64) (*model.Task, error) {
	return getTask(ctx, s.queries, id)
}

// ListTasks はフィルタに一致するタスクを新しい順に取得します。
func (s *SQLiteStore) ListTasks(ctx context.Context, filter *model.TaskFilter) ([]*model.Task, error) {
	params := db.ListTasksParams{}
	if filter != nil {
		params.ProjectID = nullID(filter.ProjectID)
		params.ModuleID = nullID(filter.ModuleID)
		params.AssigneeID = nullID(filter.AssigneeID)
		if filter.Status != nil {
			params.Status = sql.NullString{String: string(*filter.Status), Valid: true}
		}
	}

	rows, err := s.queries.ListTasks(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]*model.Task, 0, len(rows))
	for _, row := range rows {
		task, err := toTask(row)
		if err != nil {
			return nil, err
		}
		if err := loadTaskRelations(ctx, s.queries, task); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// UpdateTask はトランザクション内でタスクを読み込み、mutate を適用して書き戻します。
func (s *SQLiteStore) UpdateTask(ctx context.Context, id int64, mutate func(*model.Task) error) (*model.Task, error) {
	var updated *model.Task
	err := s.withTx(ctx, func(q *db.Queries) error {
		task, err := getTask(ctx, q, id)
		if err != nil {
			return err
		}

		if err := mutate(task); err != nil {
			return err
		}
		if err := task.Validate(); err != nil {
			return err
		}

		n, err := q.UpdateTask(ctx, db.UpdateTaskParams{
			Title:          task.Title,
			Description:    task.Description,
			Status:         string(task.Status),
			Priority:       string(task.Priority),
			EstimatedHours: nullInt(task.EstimatedHours),
			DueDate:        nullTime(task.DueDate),
			CompletedAt:    nullTime(task.CompletedAt),
			UpdatedAt:      formatTime(task.UpdatedAt),
			ID:             id,
		})
		if err != nil {
			return fmt.Errorf("failed to update task: %w", mapError(err))
		}
		if n == 0 {
			return model.ErrTaskNotFound
		}

		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTask は指定されたタスクを削除します。担当者と作業記録はカスケード削除されます。
func (s *SQLiteStore) DeleteTask(ctx context.Context, id int64) error {
	n, err := s.queries.DeleteTask(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", mapError(err))
	}
	if n == 0 {
		return model.ErrTaskNotFound
	}
	return nil
}

// CreateTimeLog は作業記録を追加し、タスクの実績時間を作業記録の合計から再計算します。
// 書き込みトランザクションは BEGIN IMMEDIATE で開始されるため、同時に記録しても合計が失われません。
func (s *SQLiteStore) CreateTimeLog(ctx context.Context, log *model.TimeLog, authorize func(*model.Task) error) (int, error) {
	// バリデーション
	if err := log.Validate(); err != nil {
		return 0, err
	}

	var actualHours int
	err := s.withTx(ctx, func(q *db.Queries) error {
		task, err := getTask(ctx, q, log.TaskID)
		if err != nil {
			return err
		}
		if authorize != nil {
			if err := authorize(task); err != nil {
				return err
			}
		}

		id, err := q.CreateTimeLog(ctx, db.CreateTimeLogParams{
			TaskID:      log.TaskID,
			UserID:      log.UserID,
			StartTime:   formatTime(log.StartTime),
			EndTime:     formatTime(log.EndTime),
			Duration:    int64(log.Duration),
			Description: log.Description,
			CreatedAt:   formatTime(log.CreatedAt),
		})
		if err != nil {
			return fmt.Errorf("failed to create time log: %w", mapError(err))
		}

		total, err := q.SumTimeLogDuration(ctx, log.TaskID)
		if err != nil {
			return fmt.Errorf("failed to sum time logs: %w", err)
		}

		actualHours = model.ActualHours(total)
		_, err = q.SetTaskActualHours(ctx, db.SetTaskActualHoursParams{
			ActualHours: sql.NullInt64{Int64: int64(actualHours), Valid: true},
			ID:          log.TaskID,
		})
		if err != nil {
			return fmt.Errorf("failed to update actual hours: %w", err)
		}

		log.ID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return actualHours, nil
}

func getTask(ctx context.Context, q *db.Queries, id int64) (*model.Task, error) {
	row, err := q.GetTask(ctx, id)
	if err != nil {
		return nil, notFound(err, model.ErrTaskNotFound)
	}
	task, err := toTask(row)
	if err != nil {
		return nil, err
	}
	if err := loadTaskRelations(ctx, q, task); err != nil {
		return nil, err
	}
	return task, nil
}

// loadTaskRelations は担当者と作業記録をタスクに読み込みます。
func loadTaskRelations(ctx context.Context, q *db.Queries, task *model.Task) error {
	assignments, err := q.ListAssignmentsByTask(ctx, task.ID)
	if err != nil {
		return fmt.Errorf("failed to list assignments: %w", err)
	}
	task.Assignments = make([]*model.Assignment, 0, len(assignments))
	for _, a := range assignments {
		createdAt, err := parseTime(a.CreatedAt)
		if err != nil {
			return err
		}
		task.Assignments = append(task.Assignments, &model.Assignment{
			TaskID:     a.TaskID,
			UserID:     a.UserID,
			AssignedBy: a.AssignedBy,
			CreatedAt:  createdAt,
			UserName:   a.Name,
			UserEmail:  a.Email,
		})
	}

	logs, err := q.ListTimeLogsByTask(ctx, task.ID)
	if err != nil {
		return fmt.Errorf("failed to list time logs: %w", err)
	}
	task.TimeLogs = make([]*model.TimeLog, 0, len(logs))
	for _, l := range logs {
		var times [3]time.Time
		for i, s := range []string{l.StartTime, l.EndTime, l.CreatedAt} {
			if times[i], err = parseTime(s); err != nil {
				return err
			}
		}
		task.TimeLogs = append(task.TimeLogs, &model.TimeLog{
			ID:          l.ID,
			TaskID:      l.TaskID,
			UserID:      l.UserID,
			StartTime:   times[0],
			EndTime:     times[1],
			Duration:    int(l.Duration),
			Description: l.Description,
			CreatedAt:   times[2],
			UserName:    l.Name,
		})
	}
	return nil
}

func toTask(row db.Task) (*model.Task, error) {
	createdAt, err := parseTime(row.CreatedAt)
	if err != nil {
		return nil, err
	}
	updatedAt, err := parseTime(row.UpdatedAt)
	if err != nil {
		return nil, err
	}

	task := &model.Task{
		ID:             row.ID,
		Title:          row.Title,
		Description:    row.Description,
		Status:         model.TaskStatus(row.Status),
		Priority:       model.Priority(row.Priority),
		EstimatedHours: intPtr(row.EstimatedHours),
		ActualHours:    intPtr(row.ActualHours),
		ProjectID:      row.ProjectID,
		TaskLinks: model.TaskLinks{
			ModuleID:           idPtr(row.ModuleID),
			FunctionalityID:    idPtr(row.FunctionalityID),
			RequirementID:      idPtr(row.RequirementID),
			FrontendResourceID: idPtr(row.FrontendResourceID),
			BackendResourceID:  idPtr(row.BackendResourceID),
			APIEndpointID:      idPtr(row.ApiEndpointID),
			DatabaseTableID:    idPtr(row.DatabaseTableID),
		},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}

	if task.StartDate, err = parseNullTime(row.StartDate); err != nil {
		return nil, err
	}
	if task.DueDate, err = parseNullTime(row.DueDate); err != nil {
		return nil, err
	}
	if task.CompletedAt, err = parseNullTime(row.CompletedAt); err != nil {
		return nil, err
	}
	return task, nil
}
