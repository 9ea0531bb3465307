package domain

// Aggregates passed between layers: service -> handler.

// PortfolioData is the full dataset behind the landing page.
type PortfolioData struct {
	Experiences       []Experience
	Projects          []Project
	Skills            []Skill
	FeaturedProjects  []Project
	CurrentExperience *Experience
	SkillsByCategory  map[SkillCategory][]Skill
}

// Timeline is the chronological experience view.
type Timeline struct {
	Experiences  []Experience
	TotalYears   float64
	Technologies []string
}

// TechnologySearchResult is a cross-repository technology match.
type TechnologySearchResult struct {
	Experiences []Experience
	Projects    []Project
}
