package store

import (
	"context"
	"fmt"

	"github.com/stsysd/tasktrack/db"
	"github.com/stsysd/tasktrack/model"
)

// CreateProject は新しいプロジェクトをデータベースに保存します。
func (s *SQLiteStore) CreateProject(ctx context.Context, project *model.Project) error {
	// バリデーション
	if err := project.Validate(); err != nil {
		return err
	}

	id, err := s.queries.CreateProject(ctx, db.CreateProjectParams{
		Name:        project.Name,
		Description: project.Description,
		Status:      string(project.Status),
		Progress:    int64(project.Progress),
		StartDate:   nullTime(project.StartDate),
		EndDate:     nullTime(project.EndDate),
		CreatorID:   project.CreatorID,
		CreatedAt:   formatTime(project.CreatedAt),
	})
	if err != nil {
		return fmt.Errorf("failed to create project: %w", mapError(err))
	}
	project.ID = id

	return nil
}

// GetProject は指定されたIDのプロジェクトをモジュールと共に取得します。
func (s *SQLiteStore) GetProject(ctx context.Context, id int64) (*model.Project, error) {
	row, err := s.queries.GetProject(ctx, id)
	if err != nil {
		return nil, notFound(err, model.ErrProjectNotFound)
	}

	project, err := toProject(db.ListProjectsRow(row))
	if err != nil {
		return nil, err
	}

	project.Modules, err = s.ListModules(ctx, &id)
	if err != nil {
		return nil, err
	}

	return project, nil
}

// ListProjects はすべてのプロジェクトを新しい順に取得します。
func (s *SQLiteStore) ListProjects(ctx context.Context) ([]*model.Project, error) {
	rows, err := s.queries.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := make([]*model.Project, 0, len(rows))
	for _, row := range rows {
		project, err := toProject(row)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, nil
}

// DeleteProject は指定されたプロジェクトを削除します。
func (s *SQLiteStore) DeleteProject(ctx context.Context, id int64) error {
	n, err := s.queries.DeleteProject(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", mapError(err))
	}
	if n == 0 {
		return model.ErrProjectNotFound
	}
	return nil
}

func toProject(row db.ListProjectsRow) (*model.Project, error) {
	createdAt, err := parseTime(row.CreatedAt)
	if err != nil {
		return nil, err
	}
	startDate, err := parseNullTime(row.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseNullTime(row.EndDate)
	if err != nil {
		return nil, err
	}
	return &model.Project{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Status:      model.ProjectStatus(row.Status),
		Progress:    int(row.Progress),
		StartDate:   startDate,
		EndDate:     endDate,
		CreatorID:   row.CreatorID,
		CreatedAt:   createdAt,
		TaskCount:   int(row.TaskCount),
	}, nil
}

// CreateModule はモジュールと機能を1つのトランザクションで保存します。
func (s *SQLiteStore) CreateModule(ctx context.Context, module *model.Module) error {
	// バリデーション
	if err := module.Validate(); err != nil {
		return err
	}

	return s.withTx(ctx, func(q *db.Queries) error {
		id, err := q.CreateModule(ctx, db.CreateModuleParams{
			Name:        module.Name,
			Description: module.Description,
			Status:      string(module.Status),
			Priority:    string(module.Priority),
			ProjectID:   module.ProjectID,
			CreatorID:   module.CreatorID,
			CreatedAt:   formatTime(module.CreatedAt),
		})
		if err != nil {
			return fmt.Errorf("failed to create module: %w", mapError(err))
		}

		// 機能を個別に挿入
		for _, f := range module.Functionalities {
			fid, err := q.CreateFunctionality(ctx, db.CreateFunctionalityParams{
				Name:        f.Name,
				Description: f.Description,
				Type:        string(f.Type),
				Status:      string(f.Status),
				ModuleID:    id,
			})
			if err != nil {
				return fmt.Errorf("failed to create functionality %s: %w", f.Name, mapError(err))
			}
			f.ID = fid
			f.ModuleID = id
		}

		module.ID = id
		return nil
	})
}

// ListModules はモジュールを機能と共に取得します。projectID が nil の場合は全件を返します。
func (s *SQLiteStore) ListModules(ctx context.Context, projectID *int64) ([]*model.Module, error) {
	rows, err := s.queries.ListModules(ctx, nullID(projectID))
	if err != nil {
		return nil, fmt.Errorf("failed to list modules: %w", err)
	}

	modules := make([]*model.Module, 0, len(rows))
	for _, row := range rows {
		createdAt, err := parseTime(row.CreatedAt)
		if err != nil {
			return nil, err
		}
		module := &model.Module{
			ID:              row.ID,
			Name:            row.Name,
			Description:     row.Description,
			Status:          model.ProjectStatus(row.Status),
			Priority:        model.Priority(row.Priority),
			ProjectID:       row.ProjectID,
			CreatorID:       row.CreatorID,
			CreatedAt:       createdAt,
			Functionalities: []*model.Functionality{},
		}

		funcs, err := s.queries.ListFunctionalitiesByModule(ctx, row.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list functionalities: %w", err)
		}
		for _, f := range funcs {
			module.Functionalities = append(module.Functionalities, &model.Functionality{
				ID:          f.ID,
				Name:        f.Name,
				Description: f.Description,
				Type:        model.FunctionalityType(f.Type),
				Status:      model.ProjectStatus(f.Status),
				ModuleID:    f.ModuleID,
			})
		}
		modules = append(modules, module)
	}
	return modules, nil
}

// DeleteModule は指定されたモジュールを削除します。タスクのモジュール参照は NULL になります。
func (s *SQLiteStore) DeleteModule(ctx context.Context, id int64) error {
	n, err := s.queries.DeleteModule(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete module: %w", mapError(err))
	}
	if n == 0 {
		return model.ErrModuleNotFound
	}
	return nil
}

// CreateRequirement は要件を保存します。
func (s *SQLiteStore) CreateRequirement(ctx context.Context, r *model.Requirement) error {
	if err := r.Validate(); err != nil {
		return err
	}
	id, err := s.queries.CreateRequirement(ctx, db.CreateRequirementParams{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		ProjectID:   r.ProjectID,
		CreatedAt:   formatTime(r.CreatedAt),
	})
	if err != nil {
		return fmt.Errorf("failed to create requirement: %w", mapError(err))
	}
	r.ID = id
	return nil
}

// ListRequirements はプロジェクトの要件を取得します。
func (s *SQLiteStore) ListRequirements(ctx context.Context, projectID int64) ([]*model.Requirement, error) {
	rows, err := s.queries.ListRequirementsByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list requirements: %w", err)
	}
	requirements := make([]*model.Requirement, 0, len(rows))
	for _, row := range rows {
		createdAt, err := parseTime(row.CreatedAt)
		if err != nil {
			return nil, err
		}
		requirements = append(requirements, &model.Requirement{
			ID:          row.ID,
			Title:       row.Title,
			Description: row.Description,
			Status:      row.Status,
			ProjectID:   row.ProjectID,
			CreatedAt:   createdAt,
		})
	}
	return requirements, nil
}

// CreateResource はリソースを保存します。
func (s *SQLiteStore) CreateResource(ctx context.Context, r *model.Resource) error {
	if err := r.Validate(); err != nil {
		return err
	}
	id, err := s.queries.CreateResource(ctx, db.CreateResourceParams{
		Kind:        string(r.Kind),
		Name:        r.Name,
		Description: r.Description,
		ProjectID:   r.ProjectID,
		CreatedAt:   formatTime(r.CreatedAt),
	})
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", mapError(err))
	}
	r.ID = id
	return nil
}

// ListResources はプロジェクトのリソースを取得します。
func (s *SQLiteStore) ListResources(ctx context.Context, projectID int64) ([]*model.Resource, error) {
	rows, err := s.queries.ListResourcesByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	resources := make([]*model.Resource, 0, len(rows))
	for _, row := range rows {
		createdAt, err := parseTime(row.CreatedAt)
		if err != nil {
			return nil, err
		}
		resources = append(resources, &model.Resource{
			ID:          row.ID,
			Kind:        model.ResourceKind(row.Kind),
			Name:        row.Name,
			Description: row.Description,
			ProjectID:   row.ProjectID,
			CreatedAt:   createdAt,
		})
	}
	return resources, nil
}
