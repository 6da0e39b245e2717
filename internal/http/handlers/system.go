package handlers

import (
	"net/http"

	"opsdash/internal/http/metrics"
	"opsdash/internal/http/response"
)

type SystemHandler struct {
	collector *metrics.Collector
}

func NewSystemHandler(collector *metrics.Collector) *SystemHandler {
	return &SystemHandler{collector: collector}
}

func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *SystemHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.collector.Snapshot())
}
