package handlers

import (
	"net/http"

	"opsdash/internal/app"
	"opsdash/internal/domain/job"
	"opsdash/internal/http/response"
)

type JobsHandler struct {
	jobs     *app.JobsService
	pageSize int
}

func NewJobsHandler(jobs *app.JobsService, pageSize int) *JobsHandler {
	return &JobsHandler{jobs: jobs, pageSize: pageSize}
}

func (h *JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	view, err := h.jobs.Overview(r.Context(), queryFrom(r, h.pageSize))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, view)
}

type jobRequest struct {
	Title        string   `json:"title"`
	Location     string   `json:"location"`
	Type         string   `json:"type"`
	Status       string   `json:"status"`
	Description  string   `json:"description"`
	Skills       []string `json:"skills"`
	Requirements []string `json:"requirements"`
	Compensation string   `json:"compensation"`
}

func (req jobRequest) draft() job.Job {
	return job.Job{
		Title:        req.Title,
		Location:     req.Location,
		Type:         job.Type(req.Type),
		Status:       job.Status(req.Status),
		Description:  req.Description,
		Skills:       collectItems(req.Skills),
		Requirements: collectItems(req.Requirements),
		Compensation: req.Compensation,
	}
}

func (h *JobsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if err := decode(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	result, err := h.jobs.Create(r.Context(), req.draft())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, result)
}

func (h *JobsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if err := decode(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	result, err := h.jobs.Update(r.Context(), idParam(r), req.draft())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

type jobStatusRequest struct {
	Status string `json:"status"`
}

func (h *JobsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req jobStatusRequest
	if err := decode(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	result, err := h.jobs.UpdateStatus(r.Context(), idParam(r), job.Status(req.Status))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

func (h *JobsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	remaining, err := h.jobs.Delete(r.Context(), idParam(r))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]any{"collection": remaining})
}
