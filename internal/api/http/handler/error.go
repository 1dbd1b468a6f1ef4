package handler

import (
	"errors"
	"net/http"

	"github.com/nicodelloro-arg/Employees/internal/api/http/response"
	"github.com/nicodelloro-arg/Employees/internal/logger"
	"github.com/nicodelloro-arg/Employees/internal/model"
)

const internalErrorMessage = "An unexpected error occurred"

// writeServiceError maps service errors to status codes. Unknown errors are
// logged and reported without detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, log *logger.Logger, err error, employeeID string) {
	var validationErr *model.ValidationError

	switch {
	case errors.As(err, &validationErr):
		response.Error(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, model.ErrEmployeeNotFound):
		response.Error(w, http.StatusNotFound, employeeNotFound(employeeID))
	case errors.Is(err, model.ErrAuthenticationFailed):
		response.Error(w, http.StatusUnauthorized, "Invalid login")
	default:
		log.Error("HTTP handler: request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"employee_id", employeeID,
			"error", err.Error())
		response.Error(w, http.StatusInternalServerError, internalErrorMessage)
	}
}

func employeeNotFound(id string) string {
	return "Employee " + id + " not found"
}
