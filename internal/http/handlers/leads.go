package handlers

import (
	"net/http"

	"opsdash/internal/app"
	"opsdash/internal/common"
	"opsdash/internal/http/response"
	"opsdash/internal/listview"
)

type LeadsHandler struct {
	leads    *app.LeadsService
	pageSize int
}

func NewLeadsHandler(leads *app.LeadsService, pageSize int) *LeadsHandler {
	return &LeadsHandler{leads: leads, pageSize: pageSize}
}

func dateRangeFrom(r *http.Request) (listview.DateRange, error) {
	dates, err := listview.ParseDateRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		return listview.DateRange{}, common.NewValidationError("invalid date range", map[string]string{
			"dates": "dates must be in YYYY-MM-DD format",
		})
	}
	return dates, nil
}

func (h *LeadsHandler) List(w http.ResponseWriter, r *http.Request) {
	dates, err := dateRangeFrom(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	view, err := h.leads.Overview(r.Context(), queryFrom(r, h.pageSize), dates)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, view)
}

func (h *LeadsHandler) Export(w http.ResponseWriter, r *http.Request) {
	dates, err := dateRangeFrom(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	headers, rows, err := h.leads.ExportRows(r.Context(), queryFrom(r, h.pageSize), dates)
	if err != nil {
		response.Error(w, err)
		return
	}
	sendWorkbook(w, "leads.xlsx", headers, rows, false)
}
