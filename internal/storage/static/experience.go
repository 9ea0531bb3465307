package static

import (
	"context"
	"slices"
	"sort"

	"github.com/mkravets/portfolio-api/internal/domain"
)

// ExperienceRepository serves experiences sorted by start date descending.
// Methods take a context to mirror the repository contract even though no
// I/O happens. Misses return nil, not an error.
type ExperienceRepository struct {
	experiences []domain.Experience
}

func NewExperienceRepository(experiences []domain.Experience) *ExperienceRepository {
	sorted := slices.Clone(experiences)
	// stable: ties keep source relative order
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DateRange.Start.After(sorted[j].DateRange.Start)
	})
	return &ExperienceRepository{experiences: sorted}
}

func (r *ExperienceRepository) FindAll(ctx context.Context) ([]domain.Experience, error) {
	return slices.Clone(r.experiences), nil
}

func (r *ExperienceRepository) FindByID(ctx context.Context, id string) (*domain.Experience, error) {
	for _, experience := range r.experiences {
		if experience.ID == id {
			return &experience, nil
		}
	}
	return nil, nil
}

// FindCurrent returns the first experience with an open-ended date range.
func (r *ExperienceRepository) FindCurrent(ctx context.Context) (*domain.Experience, error) {
	for _, experience := range r.experiences {
		if experience.IsCurrent() {
			return &experience, nil
		}
	}
	return nil, nil
}

func (r *ExperienceRepository) FindByTechnology(ctx context.Context, tech string) ([]domain.Experience, error) {
	var matched []domain.Experience
	for _, experience := range r.experiences {
		if experience.UsesTechnology(tech) {
			matched = append(matched, experience)
		}
	}
	return matched, nil
}
