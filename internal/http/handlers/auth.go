package handlers

import (
	"net/http"

	"opsdash/internal/app"
	"opsdash/internal/common"
	"opsdash/internal/http/response"
	"opsdash/internal/session"
)

type AuthHandler struct {
	auth     *app.AuthService
	sessions *session.Store
}

func NewAuthHandler(auth *app.AuthService, sessions *session.Store) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

// LoginPage backs the GET route the authed-redirect guard protects; by the
// time it runs the caller is known to be anonymous.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]any{"authenticated": false})
}

func (h *AuthHandler) ForgotPasswordPage(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]any{"authenticated": false})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	account, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.sessions.SignIn(w, r, *account); err != nil {
		response.Error(w, common.NewError(common.CodeInternal, "failed to establish session", err))
		return
	}
	account.Password = ""
	response.JSON(w, http.StatusOK, account)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Clear(w, r); err != nil {
		response.Error(w, common.NewError(common.CodeInternal, "failed to clear session", err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type emailRequest struct {
	Email string `json:"email"`
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if err := decode(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if err := h.auth.ForgotPassword(r.Context(), req.Email); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "A verification code has been sent to your email."})
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req verifyOTPRequest
	if err := decode(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if err := h.auth.VerifyOTP(r.Context(), req.Email, req.OTP); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "Code verified."})
}

type resetPasswordRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := decode(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if err := h.auth.ResetPassword(r.Context(), req.Email, req.Password, req.ConfirmPassword); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "Password updated. You can log in now."})
}

func (h *AuthHandler) ResendOTP(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if err := decode(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if err := h.auth.ResendOTP(r.Context(), req.Email); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "A new code has been sent."})
}
