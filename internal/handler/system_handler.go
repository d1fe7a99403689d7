package handlers

import (
	"net/http"
)

type HealthResponse struct {
	Status string `json:"status"`
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, MessageResponse{Message: "Welcome to the Social Media API!"}, http.StatusOK)
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(); err != nil {
		WriteError(w, "База данных недоступна", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, HealthResponse{Status: "ok"}, http.StatusOK)
}

func (h *Handlers) StatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsService.GetStats(r.Context())
	if err != nil {
		WriteError(w, "Ошибка при получении статистики", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, stats, http.StatusOK)
}
