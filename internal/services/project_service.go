package services

import (
	"errors"
	"fmt"

	"tperticaro.dev/internal/models"
)

// ErrProjectNotFound is returned by GetByID for unknown ids.
var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project-related operations
type ProjectService struct {
	projects *models.ProjectList
	refs     []*models.Project
}

// NewProjectService creates a new ProjectService
func NewProjectService(projects *models.ProjectList) *ProjectService {
	return &ProjectService{projects: projects, refs: projects.Refs()}
}

// GetAll returns all projects
func (s *ProjectService) GetAll() []*models.Project {
	return s.refs
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id int) (*models.Project, error) {
	for _, p := range s.refs {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrProjectNotFound, id)
}

// Filter returns the projects matching filter, in catalog order.
func (s *ProjectService) Filter(filter string) []*models.Project {
	return FilterProjects(s.refs, filter)
}

// Tags returns the distinct tags of the catalog in first-seen order.
func (s *ProjectService) Tags() []string {
	return s.distinct(func(p *models.Project) []string { return p.Tags })
}

// Technologies returns the distinct technologies of the catalog in
// first-seen order.
func (s *ProjectService) Technologies() []string {
	return s.distinct(func(p *models.Project) []string { return p.Technologies })
}

func (s *ProjectService) distinct(field func(*models.Project) []string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, p := range s.refs {
		for _, v := range field(p) {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

// FilterProjects keeps the projects tagged with filter without reordering them.
// models.FilterAll keeps everything; an unknown tag yields an empty slice.
func FilterProjects(projects []*models.Project, filter string) []*models.Project {
	if filter == models.FilterAll {
		out := make([]*models.Project, len(projects))
		copy(out, projects)
		return out
	}
	out := []*models.Project{}
	for _, p := range projects {
		if p.HasTag(filter) {
			out = append(out, p)
		}
	}
	return out
}
