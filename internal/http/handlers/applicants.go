package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"opsdash/internal/app"
	"opsdash/internal/common"
	"opsdash/internal/domain/applicant"
	"opsdash/internal/http/response"
)

type ApplicantsHandler struct {
	applicants *app.ApplicantsService
	pageSize   int
}

func NewApplicantsHandler(applicants *app.ApplicantsService, pageSize int) *ApplicantsHandler {
	return &ApplicantsHandler{applicants: applicants, pageSize: pageSize}
}

func (h *ApplicantsHandler) List(w http.ResponseWriter, r *http.Request) {
	view, err := h.applicants.Overview(r.Context(), queryFrom(r, h.pageSize))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, view)
}

func (h *ApplicantsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		response.Error(w, common.NewValidationError("invalid form body", nil))
		return
	}
	form := app.ApplicantForm{
		Name:        r.FormValue("name"),
		Email:       r.FormValue("email"),
		Phone:       r.FormValue("phone"),
		CoverLetter: r.FormValue("cover_letter"),
		Resume:      formFile(r, "resume_pdf"),
	}
	result, err := h.applicants.Create(r.Context(), common.UUID(chi.URLParam(r, "jobID")), form)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, result)
}

type applicantStatusRequest struct {
	Status string `json:"status"`
}

func (h *ApplicantsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req applicantStatusRequest
	if err := decode(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.applicants.UpdateStatus(r.Context(), idParam(r), applicant.Status(req.Status))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *ApplicantsHandler) Resume(w http.ResponseWriter, r *http.Request) {
	contents, contentType, filename, err := h.applicants.Resume(r.Context(), idParam(r))
	if err != nil {
		response.Error(w, err)
		return
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = w.Write(contents)
}
