package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/nicodelloro-arg/Employees/internal/api/http/response"
	"github.com/nicodelloro-arg/Employees/internal/logger"
	"github.com/nicodelloro-arg/Employees/internal/model"
)

// EmployeeService is the directory service consumed by the employee endpoints.
type EmployeeService interface {
	GetAll(ctx context.Context) ([]model.Employee, error)
	GetByID(ctx context.Context, id int) (model.Employee, error)
	GetDetailByID(ctx context.Context, id int) (model.EmployeeDetail, error)
	Create(ctx context.Context, req model.EmployeeRequest) (model.Employee, error)
	Update(ctx context.Context, id int, req model.EmployeeRequest) (model.Employee, error)
}

var employeeMessages = map[string]string{
	"Name":  "Name is required",
	"Email": "Email is required",
}

// Employee serves the /employees endpoints.
type Employee struct {
	service        EmployeeService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewEmployee(service EmployeeService, contextManager model.ContextManager, logger *logger.Logger) *Employee {
	return &Employee{service: service, contextManager: contextManager, logger: logger}
}

// requestLogger tags records with the authenticated caller when known.
func (h *Employee) requestLogger(r *http.Request) *logger.Logger {
	if username, ok := h.contextManager.GetUsernameFromContext(r.Context()); ok {
		return h.logger.With("username", username)
	}
	return h.logger
}

func (h *Employee) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.service.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, r, h.requestLogger(r), err, "")
		return
	}

	response.JSON(w, http.StatusOK, employees)
}

func (h *Employee) Get(w http.ResponseWriter, r *http.Request) {
	id, raw, ok := employeeID(w, r)
	if !ok {
		return
	}

	employee, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.requestLogger(r), err, raw)
		return
	}

	response.JSON(w, http.StatusOK, employee)
}

func (h *Employee) GetDetails(w http.ResponseWriter, r *http.Request) {
	id, raw, ok := employeeID(w, r)
	if !ok {
		return
	}

	detail, err := h.service.GetDetailByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.requestLogger(r), err, raw)
		return
	}

	response.JSON(w, http.StatusOK, detail)
}

func (h *Employee) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeEmployeeRequest(w, r)
	if !ok {
		return
	}

	created, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, h.requestLogger(r), err, "")
		return
	}

	w.Header().Set("Location", "/employees/"+strconv.Itoa(created.ID))
	response.JSON(w, http.StatusCreated, created)
}

func (h *Employee) Update(w http.ResponseWriter, r *http.Request) {
	id, raw, ok := employeeID(w, r)
	if !ok {
		return
	}

	req, ok := decodeEmployeeRequest(w, r)
	if !ok {
		return
	}

	updated, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, r, h.requestLogger(r), err, raw)
		return
	}

	response.JSON(w, http.StatusOK, updated)
}

// employeeID parses the {id} path variable. Values that do not fit an int
// are reported as a missing employee.
func employeeID(w http.ResponseWriter, r *http.Request) (int, string, bool) {
	raw := mux.Vars(r)["id"]

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		response.Error(w, http.StatusNotFound, employeeNotFound(raw))
		return 0, raw, false
	}

	return id, raw, true
}

func decodeEmployeeRequest(w http.ResponseWriter, r *http.Request) (model.EmployeeRequest, bool) {
	var req model.EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return model.EmployeeRequest{}, false
	}

	if err := validate.Struct(req); err != nil {
		response.Error(w, http.StatusBadRequest, validationMessage(err, employeeMessages, "Invalid request body"))
		return model.EmployeeRequest{}, false
	}

	return req, true
}
