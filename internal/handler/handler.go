package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mkravets/portfolio-api/internal/logger"
	"github.com/mkravets/portfolio-api/internal/mapper"
	"github.com/mkravets/portfolio-api/internal/service"
)

type Handler struct {
	portfolio service.PortfolioService
	contact   service.ContactService
	mapper    *mapper.Mapper
}

func New(portfolio service.PortfolioService, contact service.ContactService, m *mapper.Mapper) *Handler {
	return &Handler{portfolio: portfolio, contact: contact, mapper: m}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}
