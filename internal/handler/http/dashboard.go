package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Today(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// Today implements DashboardHandler.
func (h *dashboardHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.Today(r.Context())
	if err != nil {
		slog.Error("Dashboard error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
