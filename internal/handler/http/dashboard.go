package http

import (
	"net/http"

	"github.com/madrasahq/school-hr-backend/internal/domain/dashboard"
	"github.com/madrasahq/school-hr-backend/internal/handler/http/response"
)

type DashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	GetTodayStats(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDashboard implements DashboardHandler. An optional ?date= pins the
// reference date, mainly useful for reviewing past days.
func (h *DashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	data, err := h.dashboardService.GetDashboard(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, data)
}

// GetTodayStats implements DashboardHandler.
func (h *DashboardHandlerImpl) GetTodayStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.GetTodayStats(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
