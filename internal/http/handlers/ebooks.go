package handlers

import (
	"net/http"

	"opsdash/internal/app"
	"opsdash/internal/common"
	"opsdash/internal/http/response"
)

const maxUploadMemory = 32 << 20

type EbooksHandler struct {
	ebooks   *app.EbooksService
	pageSize int
}

func NewEbooksHandler(ebooks *app.EbooksService, pageSize int) *EbooksHandler {
	return &EbooksHandler{ebooks: ebooks, pageSize: pageSize}
}

func (h *EbooksHandler) List(w http.ResponseWriter, r *http.Request) {
	view, err := h.ebooks.Overview(r.Context(), queryFrom(r, h.pageSize))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, view)
}

func ebookFormFrom(r *http.Request) (app.EbookForm, error) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return app.EbookForm{}, common.NewValidationError("invalid form body", nil)
	}
	return app.EbookForm{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Highlights:  collectItems(r.MultipartForm.Value["highlights"]),
		Image:       formFile(r, "image"),
		PDF:         formFile(r, "pdf_file"),
	}, nil
}

func (h *EbooksHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, err := ebookFormFrom(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	result, err := h.ebooks.Create(r.Context(), form)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, result)
}

func (h *EbooksHandler) Update(w http.ResponseWriter, r *http.Request) {
	form, err := ebookFormFrom(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	result, err := h.ebooks.Update(r.Context(), idParam(r), form)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

func (h *EbooksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	remaining, err := h.ebooks.Delete(r.Context(), idParam(r))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]any{"collection": remaining})
}
