package app

import (
	"context"
	"errors"
	"regexp"

	"opsdash/internal/common"
	"opsdash/internal/domain/user"
	"opsdash/internal/upstream"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	otpPattern   = regexp.MustCompile(`^[0-9]{6}$`)
)

type AuthService struct {
	api    AuthAPI
	logger Logger
}

func NewAuthService(api AuthAPI, logger Logger) *AuthService {
	return &AuthService{api: api, logger: logger}
}

// Login validates the credentials upstream and returns the account to put in
// the session. A missing account and a wrong password get distinct messages.
func (s *AuthService) Login(ctx context.Context, email, password string) (*user.User, error) {
	fields := map[string]string{}
	if !emailPattern.MatchString(email) {
		fields["email"] = "a valid email is required"
	}
	if password == "" {
		fields["password"] = "password is required"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("invalid credentials", fields)
	}
	account, err := s.api.ValidatePassword(ctx, email, password)
	if err != nil {
		var upstreamErr *upstream.Error
		if errors.As(err, &upstreamErr) {
			switch upstreamErr.Status {
			case 404:
				return nil, common.NewError(common.CodeNotFound, "No account found with this email.", err)
			case 401, 403:
				return nil, common.NewError(common.CodeUnauthorized, "Invalid email or password.", err)
			}
		}
		return nil, wrapUpstream(err)
	}
	return account, nil
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	if !emailPattern.MatchString(email) {
		return common.NewValidationError("invalid email", map[string]string{"email": "a valid email is required"})
	}
	ok, err := s.api.ForgotPassword(ctx, email)
	if err != nil {
		return wrapUpstream(err)
	}
	if !ok {
		return common.NewError(common.CodeUpstream, "Could not start password recovery. Please try again.", nil)
	}
	return nil
}

func (s *AuthService) VerifyOTP(ctx context.Context, email, code string) error {
	fields := map[string]string{}
	if !emailPattern.MatchString(email) {
		fields["email"] = "a valid email is required"
	}
	if !otpPattern.MatchString(code) {
		fields["otp"] = "the code is six digits"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid code", fields)
	}
	ok, err := s.api.VerifyOTP(ctx, email, code)
	if err != nil {
		return wrapUpstream(err)
	}
	if !ok {
		return common.NewError(common.CodeValidation, "The code is incorrect or has expired.", nil)
	}
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, email, password, confirm string) error {
	fields := map[string]string{}
	if !emailPattern.MatchString(email) {
		fields["email"] = "a valid email is required"
	}
	if password == "" {
		fields["password"] = "password is required"
	}
	if password != confirm {
		fields["confirm_password"] = "passwords do not match"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid password", fields)
	}
	ok, err := s.api.ResetPassword(ctx, email, password)
	if err != nil {
		return wrapUpstream(err)
	}
	if !ok {
		return common.NewError(common.CodeUpstream, "Could not reset the password. Please try again.", nil)
	}
	return nil
}

func (s *AuthService) ResendOTP(ctx context.Context, email string) error {
	if !emailPattern.MatchString(email) {
		return common.NewValidationError("invalid email", map[string]string{"email": "a valid email is required"})
	}
	ok, err := s.api.ResendOTP(ctx, email)
	if err != nil {
		return wrapUpstream(err)
	}
	if !ok {
		return common.NewError(common.CodeUpstream, "Could not resend the code. Please try again.", nil)
	}
	return nil
}
