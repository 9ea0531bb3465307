package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkravets/portfolio-api/internal/domain"
	"github.com/mkravets/portfolio-api/internal/errors"
	"github.com/mkravets/portfolio-api/internal/service"
	"github.com/mkravets/portfolio-api/internal/utils"
)

func (h *Handler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	data, err := h.portfolio.GetPortfolioData(r.Context())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.mapper.Portfolio(*data))
}

func (h *Handler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	timeline, err := h.portfolio.GetExperienceTimeline(r.Context())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.mapper.Timeline(*timeline))
}

func (h *Handler) GetExperiences(w http.ResponseWriter, r *http.Request) {
	timeline, err := h.portfolio.GetExperienceTimeline(r.Context())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.mapper.Experiences(timeline.Experiences))
}

func (h *Handler) GetExperience(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	experience, err := h.portfolio.GetExperience(r.Context(), id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if experience == nil {
		utils.WriteErrorAndStatusCode(w, errors.ErrNotFound)
		return
	}

	writeJSON(w, http.StatusOK, h.mapper.Experience(*experience))
}

func (h *Handler) GetProjects(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := service.ProjectFilter{
		Technology:   query.Get("technology"),
		FeaturedOnly: query.Get("featured") == "true",
	}
	if projectType := query.Get("type"); projectType != "" {
		typed := domain.ProjectType(projectType)
		if !typed.Valid() {
			http.Error(w, "unknown project type: "+projectType, http.StatusBadRequest)
			return
		}
		filter.Type = typed
	}

	projects, err := h.portfolio.ListProjects(r.Context(), filter)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.mapper.Projects(projects))
}

func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.portfolio.GetProject(r.Context(), id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if project == nil {
		utils.WriteErrorAndStatusCode(w, errors.ErrNotFound)
		return
	}

	writeJSON(w, http.StatusOK, h.mapper.Project(*project))
}

func (h *Handler) GetSkills(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := service.SkillFilter{
		AdvancedOnly: query.Get("advanced") == "true",
	}
	if category := query.Get("category"); category != "" {
		typed := domain.SkillCategory(category)
		if !typed.Valid() {
			http.Error(w, "unknown skill category: "+category, http.StatusBadRequest)
			return
		}
		filter.Category = typed
	}

	skills, err := h.portfolio.ListSkills(r.Context(), filter)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.mapper.Skills(skills))
}

func (h *Handler) GetTechnologies(w http.ResponseWriter, r *http.Request) {
	technologies, err := h.portfolio.AllTechnologies(r.Context())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, technologies)
}

func (h *Handler) SearchByTechnology(w http.ResponseWriter, r *http.Request) {
	tech := r.URL.Query().Get("technology")
	if tech == "" {
		http.Error(w, "technology query parameter is required", http.StatusBadRequest)
		return
	}

	result, err := h.portfolio.SearchByTechnology(r.Context(), tech)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.mapper.TechnologySearch(tech, *result))
}
