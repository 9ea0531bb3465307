package domain

import (
	"slices"

	"github.com/mkravets/portfolio-api/internal/errors"
)

// Experience is a single position held at a company. Built once from the
// bundled dataset; never mutated afterwards.
type Experience struct {
	ID           string
	Company      string
	Role         string
	DateRange    DateRange
	Location     string
	Remote       bool
	Description  []string
	Technologies []string // order-preserving, duplicates allowed
}

// ExperienceData is the raw JSON shape consumed by the static repository.
type ExperienceData struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Role         string   `json:"role"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"` // empty = current position
	Location     string   `json:"location"`
	Remote       bool     `json:"remote"`
	Description  []string `json:"description"`
	Technologies []string `json:"technologies"`
}

func NewExperience(data ExperienceData) (Experience, error) {
	if data.ID == "" {
		return Experience{}, &errors.ValidationError{Field: "id", Message: "experience id is required"}
	}
	if data.Company == "" {
		return Experience{}, &errors.ValidationError{Field: "company", Message: "company is required"}
	}
	if data.Role == "" {
		return Experience{}, &errors.ValidationError{Field: "role", Message: "role is required"}
	}

	dateRange, err := ParseDateRange(data.StartDate, data.EndDate)
	if err != nil {
		return Experience{}, err
	}

	return Experience{
		ID:           data.ID,
		Company:      data.Company,
		Role:         data.Role,
		DateRange:    dateRange,
		Location:     data.Location,
		Remote:       data.Remote,
		Description:  slices.Clone(data.Description),
		Technologies: slices.Clone(data.Technologies),
	}, nil
}

func (e Experience) IsCurrent() bool {
	return e.DateRange.IsOngoing()
}

func (e Experience) UsesTechnology(tech string) bool {
	return slices.Contains(e.Technologies, tech)
}

// Equals is identity-by-id.
func (e Experience) Equals(other Experience) bool {
	return e.ID == other.ID
}
