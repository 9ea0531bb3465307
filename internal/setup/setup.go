// Package setup wires the application dependencies explicitly: construct
// once at start, pass by reference. Tests get isolation by building a
// fresh Dependencies with overrides instead of resetting globals.
package setup

import (
	"time"

	"github.com/mkravets/portfolio-api/internal/config"
	"github.com/mkravets/portfolio-api/internal/email"
	"github.com/mkravets/portfolio-api/internal/handler"
	"github.com/mkravets/portfolio-api/internal/mapper"
	"github.com/mkravets/portfolio-api/internal/middleware/ratelimiter"
	"github.com/mkravets/portfolio-api/internal/service"
	"github.com/mkravets/portfolio-api/internal/storage/static"
)

// Dependencies holds all initialized dependencies.
type Dependencies struct {
	Config               *config.Config
	Storage              *static.Storage
	Handler              *handler.Handler
	Sender               email.Sender
	ContactLimiter       *ratelimiter.ClientRateLimiter
	GlobalContactLimiter *ratelimiter.ClientRateLimiter

	experiences service.ExperienceStorage
	projects    service.ProjectStorage
	skills      service.SkillStorage
}

// Option overrides a single dependency, leaving the rest as constructed.
type Option func(*Dependencies)

func WithSender(sender email.Sender) Option {
	return func(d *Dependencies) { d.Sender = sender }
}

func WithExperienceStorage(s service.ExperienceStorage) Option {
	return func(d *Dependencies) { d.experiences = s }
}

func WithProjectStorage(s service.ProjectStorage) Option {
	return func(d *Dependencies) { d.projects = s }
}

func WithSkillStorage(s service.SkillStorage) Option {
	return func(d *Dependencies) { d.skills = s }
}

// New initializes all dependencies required for the application.
func New(cfg *config.Config, opts ...Option) (*Dependencies, error) {
	storage, err := static.New()
	if err != nil {
		return nil, err
	}

	deps := &Dependencies{
		Config:      cfg,
		Storage:     storage,
		Sender:      email.FromConfig(&cfg.Private.Email),
		experiences: storage.Experiences,
		projects:    storage.Projects,
		skills:      storage.Skills,
	}

	for _, opt := range opts {
		opt(deps)
	}

	portfolio := service.NewPortfolio(deps.experiences, deps.projects, deps.skills)
	contact := service.NewContact(deps.Sender)

	deps.Handler = handler.New(portfolio, contact, mapper.New())
	deps.ContactLimiter = ratelimiter.PerMinute(
		cfg.Public.ContactRatePerMin, cfg.Public.ContactBurst, cfg.Public.RateLimiterTTL)
	deps.GlobalContactLimiter = ratelimiter.New(10, 20, time.Hour)

	return deps, nil
}

// Close releases background resources (rate limiter timers).
func (d *Dependencies) Close() {
	if d.ContactLimiter != nil {
		d.ContactLimiter.Stop()
	}
	if d.GlobalContactLimiter != nil {
		d.GlobalContactLimiter.Stop()
	}
}
