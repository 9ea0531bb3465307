package service

import (
	"context"
	"math"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mkravets/portfolio-api/internal/domain"
)

// to mock service in tests
type PortfolioService interface {
	GetPortfolioData(ctx context.Context) (*domain.PortfolioData, error)
	GetExperienceTimeline(ctx context.Context) (*domain.Timeline, error)
	TotalExperienceYears(ctx context.Context) (float64, error)
	AllTechnologies(ctx context.Context) ([]string, error)
	SearchByTechnology(ctx context.Context, tech string) (*domain.TechnologySearchResult, error)
	GetExperience(ctx context.Context, id string) (*domain.Experience, error)
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	ListProjects(ctx context.Context, filter ProjectFilter) ([]domain.Project, error)
	ListSkills(ctx context.Context, filter SkillFilter) ([]domain.Skill, error)
}

type ExperienceStorage interface {
	FindAll(ctx context.Context) ([]domain.Experience, error)
	FindByID(ctx context.Context, id string) (*domain.Experience, error)
	FindCurrent(ctx context.Context) (*domain.Experience, error)
	FindByTechnology(ctx context.Context, tech string) ([]domain.Experience, error)
}

type ProjectStorage interface {
	FindAll(ctx context.Context) ([]domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	FindFeatured(ctx context.Context) ([]domain.Project, error)
	FindByType(ctx context.Context, projectType domain.ProjectType) ([]domain.Project, error)
	FindByTechnology(ctx context.Context, tech string) ([]domain.Project, error)
}

type SkillStorage interface {
	FindAll(ctx context.Context) ([]domain.Skill, error)
	FindByID(ctx context.Context, id string) (*domain.Skill, error)
	FindByCategory(ctx context.Context, category domain.SkillCategory) ([]domain.Skill, error)
	FindAdvanced(ctx context.Context) ([]domain.Skill, error)
	Categories(ctx context.Context) ([]domain.SkillCategory, error)
}

// ProjectFilter narrows ListProjects. Zero value means no filtering.
type ProjectFilter struct {
	Type         domain.ProjectType
	Technology   string
	FeaturedOnly bool
}

// SkillFilter narrows ListSkills. Zero value means no filtering.
type SkillFilter struct {
	Category     domain.SkillCategory
	AdvancedOnly bool
}

type Portfolio struct {
	experiences ExperienceStorage
	projects    ProjectStorage
	skills      SkillStorage
	now         func() time.Time
}

func NewPortfolio(experiences ExperienceStorage, projects ProjectStorage, skills SkillStorage) *Portfolio {
	return &Portfolio{
		experiences: experiences,
		projects:    projects,
		skills:      skills,
		now:         time.Now,
	}
}

// GetPortfolioData fans out the independent reads; any failure aborts the
// combined result, no partial-result policy.
func (p *Portfolio) GetPortfolioData(ctx context.Context) (*domain.PortfolioData, error) {
	var data domain.PortfolioData

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		data.Experiences, err = p.experiences.FindAll(ctx)
		return
	})
	g.Go(func() (err error) {
		data.Projects, err = p.projects.FindAll(ctx)
		return
	})
	g.Go(func() (err error) {
		data.Skills, err = p.skills.FindAll(ctx)
		return
	})
	g.Go(func() (err error) {
		data.FeaturedProjects, err = p.projects.FindFeatured(ctx)
		return
	})
	g.Go(func() (err error) {
		data.CurrentExperience, err = p.experiences.FindCurrent(ctx)
		return
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	data.SkillsByCategory = groupSkills(data.Skills)
	return &data, nil
}

func (p *Portfolio) GetExperienceTimeline(ctx context.Context) (*domain.Timeline, error) {
	experiences, err := p.experiences.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	totalYears, err := p.TotalExperienceYears(ctx)
	if err != nil {
		return nil, err
	}

	technologies, err := p.AllTechnologies(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Timeline{
		Experiences:  experiences,
		TotalYears:   totalYears,
		Technologies: technologies,
	}, nil
}

// TotalExperienceYears sums non-overlapping employment time: ranges are
// sorted by start ascending and merged where the next range starts inside
// the running one, so parallel or back-to-back positions are not double
// counted. Result is rounded to one decimal.
func (p *Portfolio) TotalExperienceYears(ctx context.Context) (float64, error) {
	experiences, err := p.experiences.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	if len(experiences) == 0 {
		return 0, nil
	}

	now := p.now()

	type interval struct {
		start, end time.Time
	}
	intervals := make([]interval, 0, len(experiences))
	for _, experience := range experiences {
		end := now
		if experience.DateRange.End != nil {
			end = *experience.DateRange.End
		}
		if end.Before(experience.DateRange.Start) {
			continue // inverted range, contributes nothing
		}
		intervals = append(intervals, interval{experience.DateRange.Start, end})
	}

	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].start.Before(intervals[j].start)
	})

	var total time.Duration
	for i := 0; i < len(intervals); {
		running := intervals[i]
		j := i + 1
		for j < len(intervals) && !intervals[j].start.After(running.end) {
			if intervals[j].end.After(running.end) {
				running.end = intervals[j].end
			}
			j++
		}
		total += running.end.Sub(running.start)
		i = j
	}

	const hoursPerYear = 24 * 365.25
	years := total.Hours() / hoursPerYear
	return math.Round(years*10) / 10, nil
}

// AllTechnologies returns the deduplicated, sorted union of technologies
// across experiences and projects.
func (p *Portfolio) AllTechnologies(ctx context.Context) ([]string, error) {
	experiences, err := p.experiences.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := p.projects.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var technologies []string
	add := func(techs []string) {
		for _, tech := range techs {
			if !seen[tech] {
				seen[tech] = true
				technologies = append(technologies, tech)
			}
		}
	}
	for _, experience := range experiences {
		add(experience.Technologies)
	}
	for _, project := range projects {
		add(project.Technologies)
	}

	sort.Strings(technologies)
	return technologies, nil
}

func (p *Portfolio) SearchByTechnology(ctx context.Context, tech string) (*domain.TechnologySearchResult, error) {
	var result domain.TechnologySearchResult

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		result.Experiences, err = p.experiences.FindByTechnology(ctx, tech)
		return
	})
	g.Go(func() (err error) {
		result.Projects, err = p.projects.FindByTechnology(ctx, tech)
		return
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &result, nil
}

func (p *Portfolio) GetExperience(ctx context.Context, id string) (*domain.Experience, error) {
	return p.experiences.FindByID(ctx, id)
}

func (p *Portfolio) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	return p.projects.FindByID(ctx, id)
}

func (p *Portfolio) ListProjects(ctx context.Context, filter ProjectFilter) ([]domain.Project, error) {
	var projects []domain.Project
	var err error

	switch {
	case filter.FeaturedOnly:
		projects, err = p.projects.FindFeatured(ctx)
	case filter.Type != "":
		projects, err = p.projects.FindByType(ctx, filter.Type)
	case filter.Technology != "":
		projects, err = p.projects.FindByTechnology(ctx, filter.Technology)
	default:
		projects, err = p.projects.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (p *Portfolio) ListSkills(ctx context.Context, filter SkillFilter) ([]domain.Skill, error) {
	var skills []domain.Skill
	var err error

	switch {
	case filter.AdvancedOnly:
		skills, err = p.skills.FindAdvanced(ctx)
	case filter.Category != "":
		skills, err = p.skills.FindByCategory(ctx, filter.Category)
	default:
		skills, err = p.skills.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	return skills, nil
}

func groupSkills(skills []domain.Skill) map[domain.SkillCategory][]domain.Skill {
	grouped := make(map[domain.SkillCategory][]domain.Skill)
	for _, skill := range skills {
		grouped[skill.Category] = append(grouped[skill.Category], skill)
	}
	return grouped
}
