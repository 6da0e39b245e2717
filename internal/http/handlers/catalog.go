package handlers

import (
	"net/http"

	"opsdash/internal/app"
	"opsdash/internal/domain/catalog"
	"opsdash/internal/http/response"
)

type CatalogHandler struct {
	catalog  *app.CatalogService
	pageSize int
}

func NewCatalogHandler(catalog *app.CatalogService, pageSize int) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, pageSize: pageSize}
}

func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	view, err := h.catalog.Overview(r.Context(), queryFrom(r, h.pageSize))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, view)
}

type serviceRequest struct {
	Title       string   `json:"title"`
	SubServices []string `json:"sub_services"`
}

func (req serviceRequest) draft() catalog.Service {
	return catalog.Service{Title: req.Title, SubServices: collectItems(req.SubServices)}
}

func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req serviceRequest
	if err := decode(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	result, err := h.catalog.Create(r.Context(), req.draft())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, result)
}

func (h *CatalogHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req serviceRequest
	if err := decode(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	result, err := h.catalog.Update(r.Context(), idParam(r), req.draft())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	remaining, err := h.catalog.Delete(r.Context(), idParam(r))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]any{"collection": remaining})
}
