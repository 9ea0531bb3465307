package handler

import (
	"context"

	"github.com/mkravets/portfolio-api/internal/domain"
	"github.com/mkravets/portfolio-api/internal/mapper"
	"github.com/mkravets/portfolio-api/internal/service"
)

// MockPortfolioService mocks the PortfolioService interface.
type MockPortfolioService struct {
	getPortfolioDataFunc      func(ctx context.Context) (*domain.PortfolioData, error)
	getExperienceTimelineFunc func(ctx context.Context) (*domain.Timeline, error)
	totalExperienceYearsFunc  func(ctx context.Context) (float64, error)
	allTechnologiesFunc       func(ctx context.Context) ([]string, error)
	searchByTechnologyFunc    func(ctx context.Context, tech string) (*domain.TechnologySearchResult, error)
	getExperienceFunc         func(ctx context.Context, id string) (*domain.Experience, error)
	getProjectFunc            func(ctx context.Context, id string) (*domain.Project, error)
	listProjectsFunc          func(ctx context.Context, filter service.ProjectFilter) ([]domain.Project, error)
	listSkillsFunc            func(ctx context.Context, filter service.SkillFilter) ([]domain.Skill, error)
}

func (m *MockPortfolioService) GetPortfolioData(ctx context.Context) (*domain.PortfolioData, error) {
	if m.getPortfolioDataFunc != nil {
		return m.getPortfolioDataFunc(ctx)
	}
	return &domain.PortfolioData{}, nil
}

func (m *MockPortfolioService) GetExperienceTimeline(ctx context.Context) (*domain.Timeline, error) {
	if m.getExperienceTimelineFunc != nil {
		return m.getExperienceTimelineFunc(ctx)
	}
	return &domain.Timeline{}, nil
}

func (m *MockPortfolioService) TotalExperienceYears(ctx context.Context) (float64, error) {
	if m.totalExperienceYearsFunc != nil {
		return m.totalExperienceYearsFunc(ctx)
	}
	return 0, nil
}

func (m *MockPortfolioService) AllTechnologies(ctx context.Context) ([]string, error) {
	if m.allTechnologiesFunc != nil {
		return m.allTechnologiesFunc(ctx)
	}
	return nil, nil
}

func (m *MockPortfolioService) SearchByTechnology(ctx context.Context, tech string) (*domain.TechnologySearchResult, error) {
	if m.searchByTechnologyFunc != nil {
		return m.searchByTechnologyFunc(ctx, tech)
	}
	return &domain.TechnologySearchResult{}, nil
}

func (m *MockPortfolioService) GetExperience(ctx context.Context, id string) (*domain.Experience, error) {
	if m.getExperienceFunc != nil {
		return m.getExperienceFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockPortfolioService) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	if m.getProjectFunc != nil {
		return m.getProjectFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockPortfolioService) ListProjects(ctx context.Context, filter service.ProjectFilter) ([]domain.Project, error) {
	if m.listProjectsFunc != nil {
		return m.listProjectsFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockPortfolioService) ListSkills(ctx context.Context, filter service.SkillFilter) ([]domain.Skill, error) {
	if m.listSkillsFunc != nil {
		return m.listSkillsFunc(ctx, filter)
	}
	return nil, nil
}

// MockContactService mocks the ContactService interface.
type MockContactService struct {
	validateFunc    func(input domain.ContactInput) error
	sendMessageFunc func(ctx context.Context, input domain.ContactInput) (*domain.ContactMessage, error)
}

func (m *MockContactService) Validate(input domain.ContactInput) error {
	if m.validateFunc != nil {
		return m.validateFunc(input)
	}
	return nil
}

func (m *MockContactService) SendMessage(ctx context.Context, input domain.ContactInput) (*domain.ContactMessage, error) {
	if m.sendMessageFunc != nil {
		return m.sendMessageFunc(ctx, input)
	}
	return &domain.ContactMessage{ID: "msg-test-abcdef"}, nil
}

func newTestHandler(portfolio *MockPortfolioService, contact *MockContactService) *Handler {
	if portfolio == nil {
		portfolio = &MockPortfolioService{}
	}
	if contact == nil {
		contact = &MockContactService{}
	}
	return New(portfolio, contact, mapper.New())
}
