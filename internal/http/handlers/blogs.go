package handlers

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"opsdash/internal/app"
	"opsdash/internal/common"
	"opsdash/internal/domain/blog"
	"opsdash/internal/forms"
	"opsdash/internal/http/response"
	"opsdash/internal/session"
)

type BlogsHandler struct {
	blogs    *app.BlogsService
	sessions *session.Store

	mu    sync.Mutex
	gates map[string]*forms.Submission
}

func NewBlogsHandler(blogs *app.BlogsService, sessions *session.Store) *BlogsHandler {
	return &BlogsHandler{blogs: blogs, sessions: sessions, gates: make(map[string]*forms.Submission)}
}

// gate returns the per-author submission gate so a double-clicked publish
// cannot create the post twice.
func (h *BlogsHandler) gate(email string) *forms.Submission {
	h.mu.Lock()
	defer h.mu.Unlock()
	g, ok := h.gates[email]
	if !ok {
		g = &forms.Submission{}
		h.gates[email] = g
	}
	return g
}

func (h *BlogsHandler) Get(w http.ResponseWriter, r *http.Request) {
	found, err := h.blogs.Get(r.Context(), idParam(r))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, found)
}

func blogFormFrom(r *http.Request) (app.BlogForm, error) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return app.BlogForm{}, common.NewValidationError("invalid form body", nil)
	}
	form := app.BlogForm{
		Title:          r.FormValue("title"),
		ShortDesc:      r.FormValue("short_desc"),
		Slug:           r.FormValue("slug"),
		Content:        blog.TrustedHTML(r.FormValue("content")),
		Status:         blog.Status(r.FormValue("status")),
		Category:       r.FormValue("category"),
		Tags:           collectItems(r.MultipartForm.Value["tags"]),
		SEOTitle:       r.FormValue("seo_title"),
		SEODescription: r.FormValue("seo_description"),
		SEOKeywords:    collectItems(r.MultipartForm.Value["seo_keywords"]),
		FeaturedImage:  formFile(r, "featured_image"),
	}
	form.IsFeatured, _ = strconv.ParseBool(r.FormValue("is_featured"))
	form.IsPinned, _ = strconv.ParseBool(r.FormValue("is_pinned"))
	if raw := r.FormValue("scheduled_time"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return app.BlogForm{}, common.NewValidationError("invalid blog", map[string]string{
				"scheduled_time": "scheduled time must be RFC 3339",
			})
		}
		form.ScheduledTime = &parsed
	}
	return form, nil
}

func (h *BlogsHandler) Create(w http.ResponseWriter, r *http.Request) {
	email := h.sessions.Email(r)
	gate := h.gate(email)
	if err := gate.Begin(); err != nil {
		response.Error(w, common.NewValidationError("A submission is already in progress.", nil))
		return
	}
	defer gate.End()

	form, err := blogFormFrom(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.blogs.Create(r.Context(), email, form)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *BlogsHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.blogs.Categories(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, categories)
}

type categoryRequest struct {
	Name string `json:"name"`
}

func (h *BlogsHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decode(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	result, err := h.blogs.CreateCategory(r.Context(), req.Name)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, result)
}

func (h *BlogsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.blogs.Metrics(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, metrics)
}

type draftRequest struct {
	Payload string `json:"payload"`
}

func (h *BlogsHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	var req draftRequest
	if err := decode(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if err := h.blogs.SaveDraft(r.Context(), h.sessions.Email(r), req.Payload); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "Draft saved."})
}

func (h *BlogsHandler) Draft(w http.ResponseWriter, r *http.Request) {
	draft, err := h.blogs.Draft(r.Context(), h.sessions.Email(r))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, draft)
}

func (h *BlogsHandler) DiscardDraft(w http.ResponseWriter, r *http.Request) {
	if err := h.blogs.DiscardDraft(r.Context(), h.sessions.Email(r)); err != nil {
		response.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
