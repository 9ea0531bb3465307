package domain

import "github.com/mkravets/portfolio-api/internal/errors"

type SkillCategory string

const (
	CategoryLanguages SkillCategory = "languages"
	CategoryBigData   SkillCategory = "bigdata"
	CategoryDevOps    SkillCategory = "devops"
	CategoryAIML      SkillCategory = "aiml"
	CategoryDatabases SkillCategory = "databases"
	CategoryBackend   SkillCategory = "backend"
)

func (c SkillCategory) Valid() bool {
	switch c {
	case CategoryLanguages, CategoryBigData, CategoryDevOps, CategoryAIML, CategoryDatabases, CategoryBackend:
		return true
	}
	return false
}

type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyExpert       Proficiency = "expert"
)

func (p Proficiency) Valid() bool {
	switch p {
	case ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyExpert:
		return true
	}
	return false
}

type Skill struct {
	ID                string
	Name              string
	Category          SkillCategory
	Proficiency       Proficiency
	Icon              string
	YearsOfExperience float64
}

// SkillData is the raw JSON shape consumed by the static repository.
type SkillData struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	Proficiency       string  `json:"proficiency"`
	Icon              string  `json:"icon,omitempty"`
	YearsOfExperience float64 `json:"yearsOfExperience"`
}

func NewSkill(data SkillData) (Skill, error) {
	if data.ID == "" {
		return Skill{}, &errors.ValidationError{Field: "id", Message: "skill id is required"}
	}
	if data.Name == "" {
		return Skill{}, &errors.ValidationError{Field: "name", Message: "name is required"}
	}
	category := SkillCategory(data.Category)
	if !category.Valid() {
		return Skill{}, &errors.ValidationError{Field: "category", Message: "unknown skill category: " + data.Category}
	}
	proficiency := Proficiency(data.Proficiency)
	if !proficiency.Valid() {
		return Skill{}, &errors.ValidationError{Field: "proficiency", Message: "unknown proficiency: " + data.Proficiency}
	}
	if data.YearsOfExperience < 0 {
		return Skill{}, &errors.ValidationError{Field: "yearsOfExperience", Message: "yearsOfExperience must not be negative"}
	}

	return Skill{
		ID:                data.ID,
		Name:              data.Name,
		Category:          category,
		Proficiency:       proficiency,
		Icon:              data.Icon,
		YearsOfExperience: data.YearsOfExperience,
	}, nil
}

func (s Skill) IsAdvanced() bool {
	return s.Proficiency == ProficiencyAdvanced || s.Proficiency == ProficiencyExpert
}

func (s Skill) Equals(other Skill) bool {
	return s.ID == other.ID
}
