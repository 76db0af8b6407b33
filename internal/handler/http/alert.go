package http

import (
	"net/http"

	"github.com/gestoria-hr/workforce-backend-go/internal/domain/alert"
	"github.com/gestoria-hr/workforce-backend-go/internal/handler/http/response"
)

type AlertHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type AlertHandlerImpl struct {
	alertService alert.AlertService
}

// List implements AlertHandler.
func (h *AlertHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	result, err := h.alertService.ListAlerts(r.Context(), page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Alerts, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
	})
}

func NewAlertHandler(alertService alert.AlertService) AlertHandler {
	return &AlertHandlerImpl{alertService: alertService}
}
