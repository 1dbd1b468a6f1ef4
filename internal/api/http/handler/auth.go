package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nicodelloro-arg/Employees/internal/api/http/middleware"
	"github.com/nicodelloro-arg/Employees/internal/api/http/response"
	"github.com/nicodelloro-arg/Employees/internal/logger"
	"github.com/nicodelloro-arg/Employees/internal/model"
)

// AuthService issues tokens for valid credentials.
type AuthService interface {
	Login(ctx context.Context, username, password string) (model.LoginResponse, error)
}

const loginRequiredMessage = "User and password required"

type loginRequest struct {
	Username string `json:"username" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
}

// Auth serves POST /auth/login.
type Auth struct {
	service AuthService
	logger  *logger.Logger
}

func NewAuth(service AuthService, logger *logger.Logger) *Auth {
	return &Auth{service: service, logger: logger}
}

func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, loginRequiredMessage)
		return
	}
	if err := validate.Struct(req); err != nil {
		response.Error(w, http.StatusBadRequest, loginRequiredMessage)
		return
	}

	resp, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		middleware.RecordLoginAttempt(false)
		if errors.Is(err, model.ErrAuthenticationFailed) {
			response.Error(w, http.StatusUnauthorized, "Invalid login")
			return
		}
		writeServiceError(w, r, h.logger, err, "")
		return
	}

	middleware.RecordLoginAttempt(true)
	response.JSON(w, http.StatusOK, resp)
}
