package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gestoria-hr/workforce-backend-go/internal/domain/anomaly"
	"github.com/gestoria-hr/workforce-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AnomalyHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type AnomalyHandlerImpl struct {
	anomalyService anomaly.AnomalyService
}

// List implements AnomalyHandler.
func (h *AnomalyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := anomaly.AnomalyFilter{}

	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	if entityType := r.URL.Query().Get("entity_type"); entityType != "" {
		filter.EntityType = &entityType
	}
	filter.Page, filter.Limit = parsePagination(r)

	result, err := h.anomalyService.ListAnomalies(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Anomalies, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// UpdateStatus implements AnomalyHandler.
func (h *AnomalyHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req anomaly.UpdateStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update anomaly status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.ID = chi.URLParam(r, "id")
	if req.ID == "" {
		response.BadRequest(w, "Anomaly ID is required", nil)
		return
	}

	result, err := h.anomalyService.UpdateStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Anomaly status updated successfully", result)
}

func NewAnomalyHandler(anomalyService anomaly.AnomalyService) AnomalyHandler {
	return &AnomalyHandlerImpl{anomalyService: anomalyService}
}
