// Package api holds the request and response DTOs of the public surface.
// DTOs are flat, UI-ready projections produced by the mapper package.
package api

// ContactRequest is the contact form submission body.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// ContactResponse reports the outcome of a contact submission.
// Field is set only for validation failures so the form can attach the
// error to the right input.
type ContactResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Field     string `json:"field,omitempty"`
	Error     string `json:"error,omitempty"`
}

type ExperienceResponse struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Role         string   `json:"role"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"`
	Period       string   `json:"period"`
	Duration     string   `json:"duration"`
	Current      bool     `json:"current"`
	Location     string   `json:"location"`
	Remote       bool     `json:"remote"`
	Description  []string `json:"description"`
	Technologies []string `json:"technologies"`
}

type ProjectResponse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	DescriptionHTML string   `json:"descriptionHtml"`
	Technologies    []string `json:"technologies"`
	Type            string   `json:"type"`
	TypeLabel       string   `json:"typeLabel"`
	OpenSource      bool     `json:"openSource"`
	GithubURL       string   `json:"githubUrl,omitempty"`
	LiveURL         string   `json:"liveUrl,omitempty"`
	Image           string   `json:"image,omitempty"`
	Featured        bool     `json:"featured"`
}

type SkillResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Category           string  `json:"category"`
	CategoryLabel      string  `json:"categoryLabel"`
	Proficiency        string  `json:"proficiency"`
	ProficiencyLabel   string  `json:"proficiencyLabel"`
	ProficiencyPercent int     `json:"proficiencyPercent"`
	Icon               string  `json:"icon,omitempty"`
	YearsOfExperience  float64 `json:"yearsOfExperience"`
}

type PortfolioResponse struct {
	Experiences       []ExperienceResponse       `json:"experiences"`
	Projects          []ProjectResponse          `json:"projects"`
	Skills            []SkillResponse            `json:"skills"`
	FeaturedProjects  []ProjectResponse          `json:"featuredProjects"`
	CurrentExperience *ExperienceResponse        `json:"currentExperience,omitempty"`
	SkillsByCategory  map[string][]SkillResponse `json:"skillsByCategory"`
}

type TimelineResponse struct {
	Experiences  []ExperienceResponse `json:"experiences"`
	TotalYears   float64              `json:"totalYears"`
	Technologies []string             `json:"technologies"`
}

type TechnologySearchResponse struct {
	Technology  string               `json:"technology"`
	Experiences []ExperienceResponse `json:"experiences"`
	Projects    []ProjectResponse    `json:"projects"`
}
