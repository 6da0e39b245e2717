package handlers

import (
	"net/http"

	"opsdash/internal/app"
	"opsdash/internal/common"
	"opsdash/internal/domain/user"
	"opsdash/internal/http/response"
	"opsdash/internal/session"
)

type UsersHandler struct {
	users    *app.UsersService
	sessions *session.Store
	pageSize int
}

func NewUsersHandler(users *app.UsersService, sessions *session.Store, pageSize int) *UsersHandler {
	return &UsersHandler{users: users, sessions: sessions, pageSize: pageSize}
}

func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	view, err := h.users.Overview(r.Context(), queryFrom(r, h.pageSize))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, view)
}

func userFormFrom(r *http.Request) (app.UserForm, error) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return app.UserForm{}, common.NewValidationError("invalid form body", nil)
	}
	return app.UserForm{
		Email:      r.FormValue("email"),
		Password:   r.FormValue("password"),
		Phone:      r.FormValue("phone"),
		FirstName:  r.FormValue("first_name"),
		LastName:   r.FormValue("last_name"),
		Role:       user.Role(r.FormValue("role")),
		Gender:     r.FormValue("gender"),
		ProfilePic: formFile(r, "profile_pic"),
	}, nil
}

func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, err := userFormFrom(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	result, err := h.users.Create(r.Context(), h.sessions.User(r), form)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, result)
}

func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	form, err := userFormFrom(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	result, err := h.users.Update(r.Context(), h.sessions.User(r), idParam(r), form)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	remaining, err := h.users.Delete(r.Context(), h.sessions.User(r), idParam(r))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]any{"collection": remaining})
}

func (h *UsersHandler) Export(w http.ResponseWriter, r *http.Request) {
	headers, rows, err := h.users.ExportRows(r.Context(), queryFrom(r, h.pageSize))
	if err != nil {
		response.Error(w, err)
		return
	}
	sendWorkbook(w, "users.xlsx", headers, rows, true)
}

func (h *UsersHandler) Subscribers(w http.ResponseWriter, r *http.Request) {
	view, err := h.users.Subscribers(r.Context(), queryFrom(r, h.pageSize))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, view)
}

func (h *UsersHandler) SubscribersExport(w http.ResponseWriter, r *http.Request) {
	headers, rows, err := h.users.SubscriberExportRows(r.Context(), queryFrom(r, h.pageSize))
	if err != nil {
		response.Error(w, err)
		return
	}
	sendWorkbook(w, "subscribers.xlsx", headers, rows, true)
}
