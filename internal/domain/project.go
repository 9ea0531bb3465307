package domain

import (
	"slices"

	"github.com/mkravets/portfolio-api/internal/errors"
)

type ProjectType string

const (
	ProjectTypeOSS          ProjectType = "oss"
	ProjectTypeProfessional ProjectType = "professional"
	ProjectTypePersonal     ProjectType = "personal"
)

func (t ProjectType) Valid() bool {
	switch t {
	case ProjectTypeOSS, ProjectTypeProfessional, ProjectTypePersonal:
		return true
	}
	return false
}

type Project struct {
	ID           string
	Title        string
	Description  string
	Technologies []string
	Type         ProjectType
	GithubURL    string
	LiveURL      string
	Image        string
	Featured     bool
}

// ProjectData is the raw JSON shape consumed by the static repository.
type ProjectData struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Type         string   `json:"type"`
	GithubURL    string   `json:"githubUrl,omitempty"`
	LiveURL      string   `json:"liveUrl,omitempty"`
	Image        string   `json:"image,omitempty"`
	Featured     bool     `json:"featured"`
}

func NewProject(data ProjectData) (Project, error) {
	if data.ID == "" {
		return Project{}, &errors.ValidationError{Field: "id", Message: "project id is required"}
	}
	if data.Title == "" {
		return Project{}, &errors.ValidationError{Field: "title", Message: "title is required"}
	}
	if data.Description == "" {
		return Project{}, &errors.ValidationError{Field: "description", Message: "description is required"}
	}
	projectType := ProjectType(data.Type)
	if !projectType.Valid() {
		return Project{}, &errors.ValidationError{Field: "type", Message: "unknown project type: " + data.Type}
	}

	return Project{
		ID:           data.ID,
		Title:        data.Title,
		Description:  data.Description,
		Technologies: slices.Clone(data.Technologies),
		Type:         projectType,
		GithubURL:    data.GithubURL,
		LiveURL:      data.LiveURL,
		Image:        data.Image,
		Featured:     data.Featured,
	}, nil
}

func (p Project) IsOpenSource() bool {
	return p.Type == ProjectTypeOSS
}

func (p Project) UsesTechnology(tech string) bool {
	return slices.Contains(p.Technologies, tech)
}

func (p Project) Equals(other Project) bool {
	return p.ID == other.ID
}
