package upstream

import (
	"context"

	"opsdash/internal/domain/user"
)

// Auth proxies the credential and password-recovery endpoints.
type Auth struct {
	c *Client
}

func NewAuth(c *Client) *Auth {
	return &Auth{c: c}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Data user.User `json:"data"`
}

// ValidatePassword exchanges credentials for the account record. Non-2xx
// statuses surface as *Error (401/403 bad credentials, 404 unknown account).
func (a *Auth) ValidatePassword(ctx context.Context, email, password string) (*user.User, error) {
	var resp loginResponse
	if err := a.c.sendJSON(ctx, "POST", "/validatepassword", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

type recoveryResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (a *Auth) ForgotPassword(ctx context.Context, email string) (bool, error) {
	var resp recoveryResponse
	if err := a.c.sendJSON(ctx, "POST", "/forgot-password", map[string]string{"email": email}, &resp); err != nil {
		return false, err
	}
	return resp.Success, nil
}

func (a *Auth) VerifyOTP(ctx context.Context, email, code string) (bool, error) {
	var resp recoveryResponse
	if err := a.c.sendJSON(ctx, "POST", "/verify-otp", map[string]string{"email": email, "otp": code}, &resp); err != nil {
		return false, err
	}
	return resp.Success, nil
}

func (a *Auth) ResetPassword(ctx context.Context, email, password string) (bool, error) {
	var resp recoveryResponse
	if err := a.c.sendJSON(ctx, "POST", "/reset-password", map[string]string{"email": email, "password": password}, &resp); err != nil {
		return false, err
	}
	return resp.Success, nil
}

func (a *Auth) ResendOTP(ctx context.Context, email string) (bool, error) {
	var resp recoveryResponse
	if err := a.c.sendJSON(ctx, "POST", "/resend-otp", map[string]string{"email": email}, &resp); err != nil {
		return false, err
	}
	return resp.Success, nil
}
