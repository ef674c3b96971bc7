package model

import (
	"strings"
	"time"
)

// ProjectStatus is shared by projects and modules.
type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "PLANNING"
	ProjectInProgress ProjectStatus = "IN_PROGRESS"
	ProjectOnHold     ProjectStatus = "ON_HOLD"
	ProjectCompleted  ProjectStatus = "COMPLETED"
	ProjectCancelled  ProjectStatus = "CANCELLED"
)

// IsValid reports whether s is a known project status.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectPlanning, ProjectInProgress, ProjectOnHold, ProjectCompleted, ProjectCancelled:
		return true
	}
	return false
}

// Project owns modules, requirements, resources and tasks.
type Project struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`
	Progress    int           `json:"progress"`
	StartDate   *time.Time    `json:"startDate"`
	EndDate     *time.Time    `json:"endDate"`
	CreatorID   int64         `json:"creatorId"`
	CreatedAt   time.Time     `json:"createdAt"`

	Modules   []*Module `json:"modules,omitempty"`
	TaskCount int       `json:"taskCount"`
}

// NewProject creates a project in PLANNING status.
func NewProject(name, description string, startDate, endDate *time.Time, creatorID int64) (*Project, error) {
	p := &Project{
		Name:        strings.TrimSpace(name),
		Description: description,
		Status:      ProjectPlanning,
		StartDate:   startDate,
		EndDate:     endDate,
		CreatorID:   creatorID,
		CreatedAt:   time.Now(),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the project fields.
func (p *Project) Validate() error {
	if p.Name == "" {
		return NewValidationError("project name is required")
	}
	if !p.Status.IsValid() {
		return NewValidationError("invalid project status: " + string(p.Status))
	}
	if p.Progress < 0 || p.Progress > 100 {
		return NewValidationError("progress must be between 0 and 100")
	}
	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		return NewValidationError("endDate must not be before startDate")
	}
	return nil
}

// Module groups functionalities within a project.
type Module struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`
	Priority    Priority      `json:"priority"`
	ProjectID   int64         `json:"projectId"`
	CreatorID   int64         `json:"creatorId"`
	CreatedAt   time.Time     `json:"createdAt"`

	Functionalities []*Functionality `json:"functionalities"`
}

// NewModule creates a module in PLANNING status. An empty priority defaults
// to MEDIUM.
func NewModule(name, description string, priority Priority, projectID, creatorID int64) (*Module, error) {
	if priority == "" {
		priority = PriorityMedium
	}
	m := &Module{
		Name:            strings.TrimSpace(name),
		Description:     description,
		Status:          ProjectPlanning,
		Priority:        priority,
		ProjectID:       projectID,
		CreatorID:       creatorID,
		CreatedAt:       time.Now(),
		Functionalities: []*Functionality{},
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks the module and its functionalities.
func (m *Module) Validate() error {
	if m.Name == "" || m.ProjectID <= 0 {
		return NewValidationError("module name and project ID are required")
	}
	if !m.Priority.IsValid() {
		return NewValidationError("invalid priority: " + string(m.Priority))
	}
	for _, f := range m.Functionalities {
		if err := f.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// FunctionalityType is the engineering discipline of a functionality.
type FunctionalityType string

const (
	FunctionalityFrontend    FunctionalityType = "FRONTEND"
	FunctionalityBackend     FunctionalityType = "BACKEND"
	FunctionalityAPI         FunctionalityType = "API"
	FunctionalityDatabase    FunctionalityType = "DATABASE"
	FunctionalityIntegration FunctionalityType = "INTEGRATION"
	FunctionalityTesting     FunctionalityType = "TESTING"
)

// IsValid reports whether t is a known functionality type.
func (t FunctionalityType) IsValid() bool {
	switch t {
	case FunctionalityFrontend, FunctionalityBackend, FunctionalityAPI,
		FunctionalityDatabase, FunctionalityIntegration, FunctionalityTesting:
		return true
	}
	return false
}

// Functionality is a named sub-feature of a module.
type Functionality struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Type        FunctionalityType `json:"type"`
	Status      ProjectStatus     `json:"status"`
	ModuleID    int64             `json:"moduleId"`
}

// Validate checks the functionality fields. An empty status defaults to
// PLANNING.
func (f *Functionality) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return NewValidationError("functionality name is required")
	}
	if !f.Type.IsValid() {
		return NewValidationError("invalid functionality type: " + string(f.Type))
	}
	if f.Status == "" {
		f.Status = ProjectPlanning
	}
	if !f.Status.IsValid() {
		return NewValidationError("invalid functionality status: " + string(f.Status))
	}
	return nil
}

// Requirement is a project requirement tasks may be linked to.
type Requirement struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	ProjectID   int64     `json:"projectId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate checks the requirement fields.
func (r *Requirement) Validate() error {
	if strings.TrimSpace(r.Title) == "" || r.ProjectID <= 0 {
		return NewValidationError("requirement title and project ID are required")
	}
	if r.Status == "" {
		r.Status = "DRAFT"
	}
	return nil
}

// ResourceKind distinguishes the categorizing resources a task may link to.
type ResourceKind string

const (
	ResourceFrontend      ResourceKind = "FRONTEND"
	ResourceBackend       ResourceKind = "BACKEND"
	ResourceAPIEndpoint   ResourceKind = "API_ENDPOINT"
	ResourceDatabaseTable ResourceKind = "DATABASE_TABLE"
)

// IsValid reports whether k is a known resource kind.
func (k ResourceKind) IsValid() bool {
	switch k {
	case ResourceFrontend, ResourceBackend, ResourceAPIEndpoint, ResourceDatabaseTable:
		return true
	}
	return false
}

// Resource is a frontend page, backend component, API endpoint or database
// table belonging to a project.
type Resource struct {
	ID          int64        `json:"id"`
	Kind        ResourceKind `json:"kind"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	ProjectID   int64        `json:"projectId"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// Validate checks the resource fields.
func (r *Resource) Validate() error {
	if strings.TrimSpace(r.Name) == "" || r.ProjectID <= 0 {
		return NewValidationError("resource name and project ID are required")
	}
	if !r.Kind.IsValid() {
		return NewValidationError("invalid resource kind: " + string(r.Kind))
	}
	return nil
}
