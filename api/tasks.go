package api

import (
	"net/http"

	"github.com/stsysd/tasktrack/model"
	"github.com/stsysd/tasktrack/tracker"
)

// handleListTasks はタスク一覧を返します。
// projectId, moduleId, userId ("me" 可), status で絞り込めます。
func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter, err := model.NewTaskFilter(q.Get("projectId"), q.Get("moduleId"), q.Get("userId"), q.Get("status"), principal(r))
	if err != nil {
		writeServiceError(w, err, "to list tasks")
		return
	}

	tasks, err := s.svc.ListTasks(r.Context(), principal(r), filter)
	if err != nil {
		writeServiceError(w, err, "to list tasks")
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

// NewCreateTaskParams creates task creation parameters from HTTP request.
func NewCreateTaskParams(r *http.Request) (*tracker.CreateTaskInput, error) {
	var requestBody struct {
		Title          string         `json:"title"`
		Description    string         `json:"description"`
		Priority       model.Priority `json:"priority"`
		EstimatedHours *int           `json:"estimatedHours"`
		StartDate      *string        `json:"startDate"`
		DueDate        *string        `json:"dueDate"`
		ProjectID      int64          `json:"projectId"`
		model.TaskLinks
		AssignedUserIDs []int64 `json:"assignedUserIds"`
	}
	if err := decodeBody(r, &requestBody); err != nil {
		return nil, err
	}

	startDate, err := model.ParseOptionalDate("startDate", requestBody.StartDate)
	if err != nil {
		return nil, err
	}
	dueDate, err := model.ParseOptionalDate("dueDate", requestBody.DueDate)
	if err != nil {
		return nil, err
	}

	return &tracker.CreateTaskInput{
		Title:           requestBody.Title,
		Description:     requestBody.Description,
		Priority:        requestBody.Priority,
		EstimatedHours:  requestBody.EstimatedHours,
		StartDate:       startDate,
		DueDate:         dueDate,
		ProjectID:       requestBody.ProjectID,
		TaskLinks:       requestBody.TaskLinks,
		AssignedUserIDs: requestBody.AssignedUserIDs,
	}, nil
}

// handleCreateTask はタスク作成エンドポイントのハンドラーです。管理者のみ。
func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	params, err := NewCreateTaskParams(r)
	if err != nil {
		writeServiceError(w, err, "to create task")
		return
	}

	task, err := s.svc.CreateTask(r.Context(), principal(r), *params)
	if err != nil {
		writeServiceError(w, err, "to create task")
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

// handleGetTask は割り当てと作業記録を含むタスクを返します。
func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "task_id")
	if err != nil {
		writeServiceError(w, err, "to retrieve task")
		return
	}

	task, err := s.svc.GetTask(r.Context(), principal(r), id)
	if err != nil {
		writeServiceError(w, err, "to retrieve task")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// UpdateTaskParams represents parameters for updating a task.
type UpdateTaskParams struct {
	TaskID int64
	Patch  *model.TaskPatch
}

// NewUpdateTaskParams creates task update parameters from HTTP request.
func NewUpdateTaskParams(r *http.Request) (*UpdateTaskParams, error) {
	id, err := pathID(r, "task_id")
	if err != nil {
		return nil, err
	}

	var requestBody struct {
		Title          *string         `json:"title"`
		Description    *string         `json:"description"`
		Priority       *model.Priority `json:"priority"`
		EstimatedHours *int            `json:"estimatedHours"`
		DueDate        *string         `json:"dueDate"`
		Status         *string         `json:"status"`
	}
	if err := decodeBody(r, &requestBody); err != nil {
		return nil, err
	}

	patch := &model.TaskPatch{
		Title:          requestBody.Title,
		Description:    requestBody.Description,
		Priority:       requestBody.Priority,
		EstimatedHours: requestBody.EstimatedHours,
	}
	if patch.EstimatedHours != nil && *patch.EstimatedHours < 0 {
		return nil, model.NewValidationError("estimatedHours must not be negative")
	}
	if patch.DueDate, err = model.ParseOptionalDate("dueDate", requestBody.DueDate); err != nil {
		return nil, err
	}
	if requestBody.Status != nil {
		st, err := model.ParseTaskStatus(*requestBody.Status)
		if err != nil {
			return nil, err
		}
		patch.Status = &st
	}

	// 少なくとも1つのフィールドが必要
	if patch.IsEmpty() {
		return nil, model.NewValidationError("at least one field must be provided")
	}

	return &UpdateTaskParams{TaskID: id, Patch: patch}, nil
}

// handleUpdateTask はタスクを部分更新します。
// 管理者はすべてのタスク、それ以外は割り当てられたタスクのみ更新できます。
func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	params, err := NewUpdateTaskParams(r)
	if err != nil {
		writeServiceError(w, err, "to update task")
		return
	}

	task, err := s.svc.UpdateTask(r.Context(), principal(r), params.TaskID, params.Patch)
	if err != nil {
		writeServiceError(w, err, "to update task")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// handleDeleteTask はタスクを削除します。管理者のみ。
func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "task_id")
	if err != nil {
		writeServiceError(w, err, "to delete task")
		return
	}

	if err := s.svc.DeleteTask(r.Context(), principal(r), id); err != nil {
		writeServiceError(w, err, "to delete task")
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Task deleted"})
}

// LogTimeParams represents parameters for logging a work session.
type LogTimeParams struct {
	TaskID      int64
	StartTime   *model.Timestamp
	EndTime     *model.Timestamp
	Description string
}

// NewLogTimeParams creates time log parameters from HTTP request.
func NewLogTimeParams(r *http.Request) (*LogTimeParams, error) {
	id, err := pathID(r, "task_id")
	if err != nil {
		return nil, err
	}

	var requestBody struct {
		StartTime   string `json:"startTime"`
		EndTime     string `json:"endTime"`
		Description string `json:"description"`
	}
	if err := decodeBody(r, &requestBody); err != nil {
		return nil, err
	}

	start, err := model.NewTimestamp("startTime", requestBody.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := model.NewTimestamp("endTime", requestBody.EndTime)
	if err != nil {
		return nil, err
	}

	return &LogTimeParams{
		TaskID:      id,
		StartTime:   start,
		EndTime:     end,
		Description: requestBody.Description,
	}, nil
}

// TimeLogResponse は作業記録と再計算後のタスク実績時間です。
type TimeLogResponse struct {
	*model.TimeLog
	ActualHours int `json:"actualHours"`
}

// handleLogTime はタスクに作業記録を追加します。割り当てられたユーザーのみ。
func (s *Server) handleLogTime(w http.ResponseWriter, r *http.Request) {
	params, err := NewLogTimeParams(r)
	if err != nil {
		writeServiceError(w, err, "to log time")
		return
	}

	entry, hours, err := s.svc.LogTime(r.Context(), principal(r), params.TaskID,
		params.StartTime.Time(), params.EndTime.Time(), params.Description)
	if err != nil {
		writeServiceError(w, err, "to log time")
		return
	}
	writeJSON(w, http.StatusCreated, TimeLogResponse{TimeLog: entry, ActualHours: hours})
}
