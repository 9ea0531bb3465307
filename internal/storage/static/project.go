package static

import (
	"context"
	"slices"

	"github.com/mkravets/portfolio-api/internal/domain"
)

// ProjectRepository serves projects in source order.
type ProjectRepository struct {
	projects []domain.Project
}

func NewProjectRepository(projects []domain.Project) *ProjectRepository {
	return &ProjectRepository{projects: slices.Clone(projects)}
}

func (r *ProjectRepository) FindAll(ctx context.Context) ([]domain.Project, error) {
	return slices.Clone(r.projects), nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	for _, project := range r.projects {
		if project.ID == id {
			return &project, nil
		}
	}
	return nil, nil
}

func (r *ProjectRepository) FindFeatured(ctx context.Context) ([]domain.Project, error) {
	var matched []domain.Project
	for _, project := range r.projects {
		if project.Featured {
			matched = append(matched, project)
		}
	}
	return matched, nil
}

func (r *ProjectRepository) FindByType(ctx context.Context, projectType domain.ProjectType) ([]domain.Project, error) {
	var matched []domain.Project
	for _, project := range r.projects {
		if project.Type == projectType {
			matched = append(matched, project)
		}
	}
	return matched, nil
}

func (r *ProjectRepository) FindByTechnology(ctx context.Context, tech string) ([]domain.Project, error) {
	var matched []domain.Project
	for _, project := range r.projects {
		if project.UsesTechnology(tech) {
			matched = append(matched, project)
		}
	}
	return matched, nil
}
