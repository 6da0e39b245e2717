package handlers

import (
	"net/http"

	"opsdash/internal/app"
	"opsdash/internal/http/response"
)

type DashboardHandler struct {
	dashboard *app.DashboardService
}

func NewDashboardHandler(dashboard *app.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	view, err := h.dashboard.Overview(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, view)
}
