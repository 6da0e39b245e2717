// Package app holds one service per dashboard screen. Services compose the
// upstream clients with the shared list derivation, form helpers, and export
// adapter; handlers stay thin.
package app

import (
	"context"
	"io"

	"opsdash/internal/common"
	"opsdash/internal/domain/applicant"
	"opsdash/internal/domain/blog"
	"opsdash/internal/domain/catalog"
	"opsdash/internal/domain/ebook"
	"opsdash/internal/domain/job"
	"opsdash/internal/domain/lead"
	"opsdash/internal/domain/projectrequest"
	"opsdash/internal/domain/subscriber"
	"opsdash/internal/domain/user"
	"opsdash/internal/draftstore"
)

// Logger is the narrow logging surface services accept; a nil logger is
// tolerated everywhere.
type Logger interface {
	Info(msg string)
	Error(msg string)
}

type JobsAPI interface {
	List(ctx context.Context) ([]job.Job, error)
	Create(ctx context.Context, payload job.Job) (*job.Job, error)
	Update(ctx context.Context, id common.UUID, payload job.Job) (*job.Job, error)
	UpdateStatus(ctx context.Context, id common.UUID, status job.Status) (*job.Job, error)
	Delete(ctx context.Context, id common.UUID) error
}

type ApplicantsAPI interface {
	List(ctx context.Context) ([]applicant.Applicant, error)
	Save(ctx context.Context, jobID common.UUID, contentType string, body io.Reader) (*applicant.Applicant, error)
	UpdateStatus(ctx context.Context, id common.UUID, status applicant.Status) (*applicant.Applicant, error)
	DownloadResume(ctx context.Context, filename string) ([]byte, string, error)
}

type EbooksAPI interface {
	List(ctx context.Context) ([]ebook.Ebook, error)
	Create(ctx context.Context, contentType string, body io.Reader) (*ebook.Ebook, error)
	Update(ctx context.Context, id common.UUID, contentType string, body io.Reader) (*ebook.Ebook, error)
	Delete(ctx context.Context, id common.UUID) error
	Leads(ctx context.Context) ([]lead.Lead, error)
}

type CatalogAPI interface {
	List(ctx context.Context) ([]catalog.Service, error)
	Create(ctx context.Context, payload catalog.Service) (*catalog.Service, error)
	Update(ctx context.Context, id common.UUID, payload catalog.Service) (*catalog.Service, error)
	Delete(ctx context.Context, id common.UUID) error
}

type UsersAPI interface {
	List(ctx context.Context) ([]user.User, error)
	Create(ctx context.Context, contentType string, body io.Reader) (*user.User, error)
	Update(ctx context.Context, id common.UUID, contentType string, body io.Reader) (*user.User, error)
	Delete(ctx context.Context, id common.UUID) error
	Subscribers(ctx context.Context) ([]subscriber.Subscriber, error)
}

type ProjectRequestsAPI interface {
	List(ctx context.Context) ([]projectrequest.ProjectRequest, error)
}

type BlogsAPI interface {
	Get(ctx context.Context, id common.UUID) (*blog.Blog, error)
	Create(ctx context.Context, contentType string, body io.Reader) (*blog.Blog, error)
	Categories(ctx context.Context) ([]blog.Category, error)
	CreateCategory(ctx context.Context, name string) (*blog.Category, error)
	Metrics(ctx context.Context) (map[string]any, error)
}

type AuthAPI interface {
	ValidatePassword(ctx context.Context, email, password string) (*user.User, error)
	ForgotPassword(ctx context.Context, email string) (bool, error)
	VerifyOTP(ctx context.Context, email, code string) (bool, error)
	ResetPassword(ctx context.Context, email, password string) (bool, error)
	ResendOTP(ctx context.Context, email string) (bool, error)
}

type DraftStore interface {
	Save(ctx context.Context, email, payload string) error
	Get(ctx context.Context, email string) (*draftstore.Draft, error)
	Delete(ctx context.Context, email string) error
}

// Mutation is a form submission's result: the acknowledged record plus the
// collection with that record spliced in, so the client renders the updated
// list without a second round trip.
type Mutation[T any] struct {
	Item       *T  `json:"item"`
	Collection []T `json:"collection"`
}
