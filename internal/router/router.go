package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	mw "github.com/mkravets/portfolio-api/internal/middleware"
	"github.com/mkravets/portfolio-api/internal/middleware/metrics"
	"github.com/mkravets/portfolio-api/internal/setup"
)

// New assembles the chi router.
// IMPORTANT! rate limiters set with .Use limit requests for all endpoints
// combined in that subrouter
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(metrics.Middleware)
	r.Use(mw.SecurityHeaders)

	// CORS for the site frontend
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Public.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	h := deps.Handler

	r.Get("/health", h.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/portfolio", h.GetPortfolio)
		r.Get("/timeline", h.GetTimeline)
		r.Get("/experiences", h.GetExperiences)
		r.Get("/experiences/{id}", h.GetExperience)
		r.Get("/projects", h.GetProjects)
		r.Get("/projects/{id}", h.GetProject)
		r.Get("/skills", h.GetSkills)
		r.Get("/technologies", h.GetTechnologies)
		r.Get("/search", h.SearchByTechnology)

		// Contact form: limited per IP plus a small global budget
		r.Group(func(r chi.Router) {
			r.Use(mw.RateLimit(deps.ContactLimiter, mw.GetIP))
			r.Use(mw.GlobalRateLimit(deps.GlobalContactLimiter))
			r.Post("/contact", h.SendContactMessage)
		})
	})

	return r
}
