package static

import (
	"context"
	"slices"

	"github.com/mkravets/portfolio-api/internal/domain"
)

// SkillRepository serves skills in source order.
type SkillRepository struct {
	skills []domain.Skill
}

func NewSkillRepository(skills []domain.Skill) *SkillRepository {
	return &SkillRepository{skills: slices.Clone(skills)}
}

func (r *SkillRepository) FindAll(ctx context.Context) ([]domain.Skill, error) {
	return slices.Clone(r.skills), nil
}

func (r *SkillRepository) FindByID(ctx context.Context, id string) (*domain.Skill, error) {
	for _, skill := range r.skills {
		if skill.ID == id {
			return &skill, nil
		}
	}
	return nil, nil
}

func (r *SkillRepository) FindByCategory(ctx context.Context, category domain.SkillCategory) ([]domain.Skill, error) {
	var matched []domain.Skill
	for _, skill := range r.skills {
		if skill.Category == category {
			matched = append(matched, skill)
		}
	}
	return matched, nil
}

func (r *SkillRepository) FindAdvanced(ctx context.Context) ([]domain.Skill, error) {
	var matched []domain.Skill
	for _, skill := range r.skills {
		if skill.IsAdvanced() {
			matched = append(matched, skill)
		}
	}
	return matched, nil
}

// Categories returns distinct categories in insertion order.
func (r *SkillRepository) Categories(ctx context.Context) ([]domain.SkillCategory, error) {
	var categories []domain.SkillCategory
	seen := make(map[domain.SkillCategory]bool)
	for _, skill := range r.skills {
		if !seen[skill.Category] {
			seen[skill.Category] = true
			categories = append(categories, skill.Category)
		}
	}
	return categories, nil
}
