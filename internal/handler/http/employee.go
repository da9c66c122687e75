package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/zavodops/factory-backend-go/internal/domain/employee"
	"github.com/zavodops/factory-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeRepo employee.Repository
}

func NewEmployeeHandler(employeeRepo employee.Repository) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeRepo: employeeRepo,
	}
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	employees, err := h.employeeRepo.List(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]employee.Response, 0, len(employees))
	for _, e := range employees {
		result = append(result, employee.ToResponse(e))
	}

	response.Success(w, result)
}

// Get implements EmployeeHandler.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	e, err := h.employeeRepo.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee.ToResponse(e))
}
