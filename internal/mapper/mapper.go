// Package mapper flattens domain entities into the UI-facing DTOs,
// adding derived display fields (labels, periods, percentages, rendered
// description HTML). Mapping never fails: entities are valid by
// construction.
package mapper

import (
	"bytes"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/mkravets/portfolio-api/internal/api"
	"github.com/mkravets/portfolio-api/internal/domain"
)

var categoryLabels = map[domain.SkillCategory]string{
	domain.CategoryLanguages: "Languages",
	domain.CategoryBigData:   "Big Data",
	domain.CategoryDevOps:    "DevOps & Cloud",
	domain.CategoryAIML:      "AI / ML",
	domain.CategoryDatabases: "Databases",
	domain.CategoryBackend:   "Backend",
}

var proficiencyLabels = map[domain.Proficiency]string{
	domain.ProficiencyBeginner:     "Beginner",
	domain.ProficiencyIntermediate: "Intermediate",
	domain.ProficiencyAdvanced:     "Advanced",
	domain.ProficiencyExpert:       "Expert",
}

var proficiencyPercents = map[domain.Proficiency]int{
	domain.ProficiencyBeginner:     25,
	domain.ProficiencyIntermediate: 50,
	domain.ProficiencyAdvanced:     75,
	domain.ProficiencyExpert:       100,
}

var typeLabels = map[domain.ProjectType]string{
	domain.ProjectTypeOSS:          "Open Source",
	domain.ProjectTypeProfessional: "Professional",
	domain.ProjectTypePersonal:     "Personal",
}

const isoDate = "2006-01-02"

type Mapper struct {
	md       goldmark.Markdown
	sanitize *bluemonday.Policy
	now      func() time.Time
}

func New() *Mapper {
	return &Mapper{
		md:       goldmark.New(goldmark.WithExtensions(extension.Strikethrough)),
		sanitize: bluemonday.UGCPolicy(),
		now:      time.Now,
	}
}

func (m *Mapper) Experience(experience domain.Experience) api.ExperienceResponse {
	response := api.ExperienceResponse{
		ID:           experience.ID,
		Company:      experience.Company,
		Role:         experience.Role,
		StartDate:    experience.DateRange.Start.Format(isoDate),
		Period:       experience.DateRange.Format(),
		Duration:     experience.DateRange.FormatDuration(m.now()),
		Current:      experience.IsCurrent(),
		Location:     experience.Location,
		Remote:       experience.Remote,
		Description:  experience.Description,
		Technologies: experience.Technologies,
	}
	if experience.DateRange.End != nil {
		response.EndDate = experience.DateRange.End.Format(isoDate)
	}
	return response
}

func (m *Mapper) Experiences(experiences []domain.Experience) []api.ExperienceResponse {
	responses := make([]api.ExperienceResponse, len(experiences))
	for i, experience := range experiences {
		responses[i] = m.Experience(experience)
	}
	return responses
}

func (m *Mapper) Project(project domain.Project) api.ProjectResponse {
	return api.ProjectResponse{
		ID:              project.ID,
		Title:           project.Title,
		Description:     project.Description,
		DescriptionHTML: m.renderDescription(project.Description),
		Technologies:    project.Technologies,
		Type:            string(project.Type),
		TypeLabel:       typeLabels[project.Type],
		OpenSource:      project.IsOpenSource(),
		GithubURL:       project.GithubURL,
		LiveURL:         project.LiveURL,
		Image:           project.Image,
		Featured:        project.Featured,
	}
}

func (m *Mapper) Projects(projects []domain.Project) []api.ProjectResponse {
	responses := make([]api.ProjectResponse, len(projects))
	for i, project := range projects {
		responses[i] = m.Project(project)
	}
	return responses
}

func (m *Mapper) Skill(skill domain.Skill) api.SkillResponse {
	return api.SkillResponse{
		ID:                 skill.ID,
		Name:               skill.Name,
		Category:           string(skill.Category),
		CategoryLabel:      categoryLabels[skill.Category],
		Proficiency:        string(skill.Proficiency),
		ProficiencyLabel:   proficiencyLabels[skill.Proficiency],
		ProficiencyPercent: proficiencyPercents[skill.Proficiency],
		Icon:               skill.Icon,
		YearsOfExperience:  skill.YearsOfExperience,
	}
}

func (m *Mapper) Skills(skills []domain.Skill) []api.SkillResponse {
	responses := make([]api.SkillResponse, len(skills))
	for i, skill := range skills {
		responses[i] = m.Skill(skill)
	}
	return responses
}

func (m *Mapper) Portfolio(data domain.PortfolioData) api.PortfolioResponse {
	response := api.PortfolioResponse{
		Experiences:      m.Experiences(data.Experiences),
		Projects:         m.Projects(data.Projects),
		Skills:           m.Skills(data.Skills),
		FeaturedProjects: m.Projects(data.FeaturedProjects),
		SkillsByCategory: make(map[string][]api.SkillResponse, len(data.SkillsByCategory)),
	}
	if data.CurrentExperience != nil {
		current := m.Experience(*data.CurrentExperience)
		response.CurrentExperience = &current
	}
	for category, skills := range data.SkillsByCategory {
		response.SkillsByCategory[string(category)] = m.Skills(skills)
	}
	return response
}

func (m *Mapper) Timeline(timeline domain.Timeline) api.TimelineResponse {
	return api.TimelineResponse{
		Experiences:  m.Experiences(timeline.Experiences),
		TotalYears:   timeline.TotalYears,
		Technologies: timeline.Technologies,
	}
}

func (m *Mapper) TechnologySearch(tech string, result domain.TechnologySearchResult) api.TechnologySearchResponse {
	return api.TechnologySearchResponse{
		Technology:  tech,
		Experiences: m.Experiences(result.Experiences),
		Projects:    m.Projects(result.Projects),
	}
}

// renderDescription renders the markdown description and sanitizes the
// result, same pipeline the site uses for any user-facing rich text.
func (m *Mapper) renderDescription(text string) string {
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(text), &buf); err != nil {
		return text
	}
	return m.sanitize.Sanitize(strings.TrimSpace(buf.String()))
}
