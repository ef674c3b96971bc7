package api

import (
	"net/http"

	"github.com/stsysd/tasktrack/model"
	"github.com/stsysd/tasktrack/tracker"
)

// handleListProjects はプロジェクト一覧を返します。
func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.svc.ListProjects(r.Context(), principal(r))
	if err != nil {
		writeServiceError(w, err, "to list projects")
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

// NewCreateProjectParams creates project creation parameters from HTTP request.
func NewCreateProjectParams(r *http.Request) (*tracker.CreateProjectInput, error) {
	var requestBody struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		StartDate   *string `json:"startDate"`
		EndDate     *string `json:"endDate"`
	}
	if err := decodeBody(r, &requestBody); err != nil {
		return nil, err
	}

	startDate, err := model.ParseOptionalDate("startDate", requestBody.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := model.ParseOptionalDate("endDate", requestBody.EndDate)
	if err != nil {
		return nil, err
	}

	return &tracker.CreateProjectInput{
		Name:        requestBody.Name,
		Description: requestBody.Description,
		StartDate:   startDate,
		EndDate:     endDate,
	}, nil
}

// handleCreateProject はプロジェクト作成エンドポイントのハンドラーです。
func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	params, err := NewCreateProjectParams(r)
	if err != nil {
		writeServiceError(w, err, "to create project")
		return
	}

	project, err := s.svc.CreateProject(r.Context(), principal(r), *params)
	if err != nil {
		writeServiceError(w, err, "to create project")
		return
	}
	writeJSON(w, http.StatusCreated, project)
}

// handleGetProject はモジュールを含むプロジェクトを返します。
func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "project_id")
	if err != nil {
		writeServiceError(w, err, "to retrieve project")
		return
	}

	project, err := s.svc.GetProject(r.Context(), principal(r), id)
	if err != nil {
		writeServiceError(w, err, "to retrieve project")
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// handleDeleteProject はプロジェクトとその配下を削除します。管理者のみ。
func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "project_id")
	if err != nil {
		writeServiceError(w, err, "to delete project")
		return
	}

	if err := s.svc.DeleteProject(r.Context(), principal(r), id); err != nil {
		writeServiceError(w, err, "to delete project")
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Project deleted"})
}

// handleListRequirements はプロジェクトの要件一覧を返します。
func (s *Server) handleListRequirements(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "project_id")
	if err != nil {
		writeServiceError(w, err, "to list requirements")
		return
	}

	reqs, err := s.svc.ListRequirements(r.Context(), principal(r), id)
	if err != nil {
		writeServiceError(w, err, "to list requirements")
		return
	}
	writeJSON(w, http.StatusOK, reqs)
}

// handleCreateRequirement はプロジェクトに要件を追加します。管理者のみ。
func (s *Server) handleCreateRequirement(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "project_id")
	if err != nil {
		writeServiceError(w, err, "to create requirement")
		return
	}

	var requestBody struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Status      string `json:"status"`
	}
	if err := decodeBody(r, &requestBody); err != nil {
		writeServiceError(w, err, "to create requirement")
		return
	}

	req, err := s.svc.CreateRequirement(r.Context(), principal(r), &model.Requirement{
		Title:       requestBody.Title,
		Description: requestBody.Description,
		Status:      requestBody.Status,
		ProjectID:   id,
	})
	if err != nil {
		writeServiceError(w, err, "to create requirement")
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

// handleListResources はプロジェクトのリソース一覧を返します。
func (s *Server) handleListResources(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "project_id")
	if err != nil {
		writeServiceError(w, err, "to list resources")
		return
	}

	resources, err := s.svc.ListResources(r.Context(), principal(r), id)
	if err != nil {
		writeServiceError(w, err, "to list resources")
		return
	}
	writeJSON(w, http.StatusOK, resources)
}

// handleCreateResource はプロジェクトにリソースを追加します。管理者のみ。
func (s *Server) handleCreateResource(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "project_id")
	if err != nil {
		writeServiceError(w, err, "to create resource")
		return
	}

	var requestBody struct {
		Kind        model.ResourceKind `json:"kind"`
		Name        string             `json:"name"`
		Description string             `json:"description"`
	}
	if err := decodeBody(r, &requestBody); err != nil {
		writeServiceError(w, err, "to create resource")
		return
	}

	resource, err := s.svc.CreateResource(r.Context(), principal(r), &model.Resource{
		Kind:        requestBody.Kind,
		Name:        requestBody.Name,
		Description: requestBody.Description,
		ProjectID:   id,
	})
	if err != nil {
		writeServiceError(w, err, "to create resource")
		return
	}
	writeJSON(w, http.StatusCreated, resource)
}

// handleListModules はモジュール一覧を返します。projectId で絞り込めます。
func (s *Server) handleListModules(w http.ResponseWriter, r *http.Request) {
	projectID, err := model.ParseOptionalID("projectId", r.URL.Query().Get("projectId"))
	if err != nil {
		writeServiceError(w, err, "to list modules")
		return
	}

	modules, err := s.svc.ListModules(r.Context(), principal(r), projectID)
	if err != nil {
		writeServiceError(w, err, "to list modules")
		return
	}
	writeJSON(w, http.StatusOK, modules)
}

// NewCreateModuleParams creates module creation parameters from HTTP request.
func NewCreateModuleParams(r *http.Request) (*tracker.CreateModuleInput, error) {
	var requestBody struct {
		Name            string                 `json:"name"`
		Description     string                 `json:"description"`
		Priority        model.Priority         `json:"priority"`
		ProjectID       int64                  `json:"projectId"`
		Functionalities []*model.Functionality `json:"functionalities"`
	}
	if err := decodeBody(r, &requestBody); err != nil {
		return nil, err
	}
	if requestBody.ProjectID <= 0 {
		return nil, model.NewValidationError("projectId is required")
	}

	return &tracker.CreateModuleInput{
		Name:            requestBody.Name,
		Description:     requestBody.Description,
		Priority:        requestBody.Priority,
		ProjectID:       requestBody.ProjectID,
		Functionalities: requestBody.Functionalities,
	}, nil
}

// handleCreateModule はモジュールと機能を作成します。管理者のみ。
func (s *Server) handleCreateModule(w http.ResponseWriter, r *http.Request) {
	params, err := NewCreateModuleParams(r)
	if err != nil {
		writeServiceError(w, err, "to create module")
		return
	}

	module, err := s.svc.CreateModule(r.Context(), principal(r), *params)
	if err != nil {
		writeServiceError(w, err, "to create module")
		return
	}
	writeJSON(w, http.StatusCreated, module)
}

// handleDeleteModule はモジュールを削除します。管理者のみ。
func (s *Server) handleDeleteModule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "module_id")
	if err != nil {
		writeServiceError(w, err, "to delete module")
		return
	}

	if err := s.svc.DeleteModule(r.Context(), principal(r), id); err != nil {
		writeServiceError(w, err, "to delete module")
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Module deleted"})
}
