// Package static implements the read-only repositories backing the
// portfolio API. The dataset is embedded at build time and mapped into
// validated domain entities once, at startup; a malformed record fails
// construction with the entity's ValidationError.
package static

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/mkravets/portfolio-api/internal/domain"
)

//go:embed data/*.json
var dataFS embed.FS

// Storage bundles the three static repositories built from the embedded
// dataset. All state is populated here and never mutated again.
type Storage struct {
	Experiences *ExperienceRepository
	Projects    *ProjectRepository
	Skills      *SkillRepository
}

func New() (*Storage, error) {
	experiences, err := loadExperiences()
	if err != nil {
		return nil, err
	}
	projects, err := loadProjects()
	if err != nil {
		return nil, err
	}
	skills, err := loadSkills()
	if err != nil {
		return nil, err
	}

	return &Storage{
		Experiences: NewExperienceRepository(experiences),
		Projects:    NewProjectRepository(projects),
		Skills:      NewSkillRepository(skills),
	}, nil
}

func loadExperiences() ([]domain.Experience, error) {
	var records []domain.ExperienceData
	if err := loadJSON("data/experiences.json", &records); err != nil {
		return nil, err
	}

	experiences := make([]domain.Experience, 0, len(records))
	for _, record := range records {
		experience, err := domain.NewExperience(record)
		if err != nil {
			return nil, fmt.Errorf("experience %q: %w", record.ID, err)
		}
		experiences = append(experiences, experience)
	}
	return experiences, nil
}

func loadProjects() ([]domain.Project, error) {
	var records []domain.ProjectData
	if err := loadJSON("data/projects.json", &records); err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(records))
	for _, record := range records {
		project, err := domain.NewProject(record)
		if err != nil {
			return nil, fmt.Errorf("project %q: %w", record.ID, err)
		}
		projects = append(projects, project)
	}
	return projects, nil
}

func loadSkills() ([]domain.Skill, error) {
	var records []domain.SkillData
	if err := loadJSON("data/skills.json", &records); err != nil {
		return nil, err
	}

	skills := make([]domain.Skill, 0, len(records))
	for _, record := range records {
		skill, err := domain.NewSkill(record)
		if err != nil {
			return nil, fmt.Errorf("skill %q: %w", record.ID, err)
		}
		skills = append(skills, skill)
	}
	return skills, nil
}

func loadJSON(name string, output any) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, output); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
