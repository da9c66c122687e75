package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/zavodops/factory-backend-go/internal/domain/department"
	"github.com/zavodops/factory-backend-go/internal/domain/salary"
	"github.com/zavodops/factory-backend-go/internal/handler/http/response"
)

type SalaryHandler interface {
	RecordProduction(w http.ResponseWriter, r *http.Request)
	RecordRefinement(w http.ResponseWriter, r *http.Request)
	Recalculate(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService salary.Service
}

func NewSalaryHandler(salaryService salary.Service) SalaryHandler {
	return &salaryHandlerImpl{
		salaryService: salaryService,
	}
}

// RecordProduction implements SalaryHandler.
func (h *salaryHandlerImpl) RecordProduction(w http.ResponseWriter, r *http.Request) {
	var req salary.ProductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.salaryService.RecordProduction(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result == nil {
		response.SuccessWithMessage(w, "No attendance recorded for this department and day", nil)
		return
	}
	response.SuccessWithMessage(w, "Production recorded", result)
}

// RecordRefinement implements SalaryHandler.
func (h *salaryHandlerImpl) RecordRefinement(w http.ResponseWriter, r *http.Request) {
	var req salary.RefinementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.salaryService.RecordRefinement(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result == nil {
		response.SuccessWithMessage(w, "No attendance recorded for this department and day", nil)
		return
	}
	response.SuccessWithMessage(w, "Refinement output recorded", result)
}

// Recalculate implements SalaryHandler.
func (h *salaryHandlerImpl) Recalculate(w http.ResponseWriter, r *http.Request) {
	var req salary.RecalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.salaryService.RecalculateDepartmentDay(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result == nil {
		response.SuccessWithMessage(w, "No attendance recorded for this department and day", nil)
		return
	}
	response.SuccessWithMessage(w, "Salary record recalculated", result)
}

// List implements SalaryHandler.
func (h *salaryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	from, err := time.Parse("2006-01-02", r.URL.Query().Get("from"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'from' must be in YYYY-MM-DD format", nil)
		return
	}
	to, err := time.Parse("2006-01-02", r.URL.Query().Get("to"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'to' must be in YYYY-MM-DD format", nil)
		return
	}
	if to.Before(from) {
		response.BadRequest(w, "Query parameter 'to' must not precede 'from'", nil)
		return
	}

	var dept *department.Department
	if raw := r.URL.Query().Get("department"); raw != "" {
		normalized, _, ok := department.Normalize(raw)
		if !ok {
			response.HandleError(w, salary.ErrUnknownDepartment)
			return
		}
		dept = &normalized
	}

	result, err := h.salaryService.ListRecords(r.Context(), from, to, dept)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
