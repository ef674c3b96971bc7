package tracker

import (
	"context"
	"time"

	"github.com/stsysd/tasktrack/model"
)

// CreateProjectInput holds the fields of a new project.
type CreateProjectInput struct {
	Name        string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
}

// ListProjects returns all projects, newest first.
func (s *Service) ListProjects(ctx context.Context, p model.Principal) ([]*model.Project, error) {
	return s.store.ListProjects(ctx)
}

// GetProject returns a project with its modules.
func (s *Service) GetProject(ctx context.Context, p model.Principal, id int64) (*model.Project, error) {
	return s.store.GetProject(ctx, id)
}

// CreateProject creates a project owned by p. Admin only.
func (s *Service) CreateProject(ctx context.Context, p model.Principal, in CreateProjectInput) (*model.Project, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	project, err := model.NewProject(in.Name, in.Description, in.StartDate, in.EndDate, p.ID)
	if err != nil {
		return nil, err
	}
	project.CreatedAt = s.now()
	if err := s.store.CreateProject(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteProject deletes a project and everything it owns. Admin only.
func (s *Service) DeleteProject(ctx context.Context, p model.Principal, id int64) error {
	if err := requireAdmin(p); err != nil {
		return err
	}
	return s.store.DeleteProject(ctx, id)
}

// CreateModuleInput holds the fields of a new module and its
// functionalities.
type CreateModuleInput struct {
	Name            string
	Description     string
	Priority        model.Priority
	ProjectID       int64
	Functionalities []*model.Functionality
}

// ListModules returns modules with their functionalities, optionally limited
// to one project.
func (s *Service) ListModules(ctx context.Context, p model.Principal, projectID *int64) ([]*model.Module, error) {
	return s.store.ListModules(ctx, projectID)
}

// CreateModule creates a module and its functionalities in one transaction.
// Admin only.
func (s *Service) CreateModule(ctx context.Context, p model.Principal, in CreateModuleInput) (*model.Module, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	module, err := model.NewModule(in.Name, in.Description, in.Priority, in.ProjectID, p.ID)
	if err != nil {
		return nil, err
	}
	module.CreatedAt = s.now()
	if in.Functionalities != nil {
		module.Functionalities = in.Functionalities
	}
	if err := module.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.store.GetProject(ctx, in.ProjectID); err != nil {
		return nil, err
	}
	if err := s.store.CreateModule(ctx, module); err != nil {
		return nil, err
	}
	return module, nil
}

// DeleteModule deletes a module. Tasks linked to it keep existing with the
// link cleared. Admin only.
func (s *Service) DeleteModule(ctx context.Context, p model.Principal, id int64) error {
	if err := requireAdmin(p); err != nil {
		return err
	}
	return s.store.DeleteModule(ctx, id)
}

// ListRequirements returns the requirements of a project.
func (s *Service) ListRequirements(ctx context.Context, p model.Principal, projectID int64) ([]*model.Requirement, error) {
	return s.store.ListRequirements(ctx, projectID)
}

// CreateRequirement adds a requirement to a project. Admin only.
func (s *Service) CreateRequirement(ctx context.Context, p model.Principal, r *model.Requirement) (*model.Requirement, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.store.GetProject(ctx, r.ProjectID); err != nil {
		return nil, err
	}
	r.CreatedAt = s.now()
	if err := s.store.CreateRequirement(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// ListResources returns the resources of a project.
func (s *Service) ListResources(ctx context.Context, p model.Principal, projectID int64) ([]*model.Resource, error) {
	return s.store.ListResources(ctx, projectID)
}

// CreateResource adds a resource to a project. Admin only.
func (s *Service) CreateResource(ctx context.Context, p model.Principal, r *model.Resource) (*model.Resource, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.store.GetProject(ctx, r.ProjectID); err != nil {
		return nil, err
	}
	r.CreatedAt = s.now()
	if err := s.store.CreateResource(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}
