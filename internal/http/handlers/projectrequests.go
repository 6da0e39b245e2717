package handlers

import (
	"net/http"

	"opsdash/internal/app"
	"opsdash/internal/http/response"
)

type ProjectRequestsHandler struct {
	requests *app.ProjectRequestsService
	pageSize int
}

func NewProjectRequestsHandler(requests *app.ProjectRequestsService, pageSize int) *ProjectRequestsHandler {
	return &ProjectRequestsHandler{requests: requests, pageSize: pageSize}
}

func (h *ProjectRequestsHandler) List(w http.ResponseWriter, r *http.Request) {
	view, err := h.requests.Overview(r.Context(), queryFrom(r, h.pageSize))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, view)
}
