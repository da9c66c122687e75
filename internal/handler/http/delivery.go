package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/zavodops/factory-backend-go/internal/domain/delivery"
	"github.com/zavodops/factory-backend-go/internal/handler/http/response"
)

type DeliveryHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type deliveryHandlerImpl struct {
	deliveryService delivery.Service
}

func NewDeliveryHandler(deliveryService delivery.Service) DeliveryHandler {
	return &deliveryHandlerImpl{
		deliveryService: deliveryService,
	}
}

// Record implements DeliveryHandler.
func (h *deliveryHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req delivery.RecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.deliveryService.Record(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Delivery recorded", result)
}

// List implements DeliveryHandler.
func (h *deliveryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		response.BadRequest(w, "Query parameter 'date' must be in YYYY-MM-DD format", nil)
		return
	}

	result, err := h.deliveryService.ListByDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
