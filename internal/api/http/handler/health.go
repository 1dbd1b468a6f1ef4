package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/nicodelloro-arg/Employees/internal/api/http/response"
	"github.com/nicodelloro-arg/Employees/internal/logger"
	"github.com/nicodelloro-arg/Employees/internal/model"
)

const healthCheckTimeout = 3 * time.Second

// Health serves /health by loading the directory document.
type Health struct {
	store  model.DirectoryStore
	logger *logger.Logger
}

func NewHealth(store model.DirectoryStore, logger *logger.Logger) *Health {
	return &Health{store: store, logger: logger}
}

type healthResponse struct {
	Status    string `json:"status"`
	Employees int    `json:"employees,omitempty"`
	Message   string `json:"message,omitempty"`
}

func (h *Health) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	directory, err := h.store.Load(ctx)
	if err != nil {
		h.logger.Warn("Health handler: directory unavailable",
			"error", err.Error())
		response.JSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:  "unhealthy",
			Message: "directory unavailable",
		})
		return
	}

	response.JSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Employees: len(directory.Employees),
	})
}
