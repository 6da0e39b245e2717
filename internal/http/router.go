// Package http assembles the admin route table. Credential and recovery
// endpoints sit behind the authed-redirect guard and a per-address rate
// limit; every dashboard route requires a logged-in session.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"opsdash/internal/http/handlers"
	"opsdash/internal/http/metrics"
	httpmw "opsdash/internal/http/middleware"
	"opsdash/internal/observability"
	"opsdash/internal/session"
)

type RouterDependencies struct {
	AuthHandler            *handlers.AuthHandler
	DashboardHandler       *handlers.DashboardHandler
	JobsHandler            *handlers.JobsHandler
	ApplicantsHandler      *handlers.ApplicantsHandler
	EbooksHandler          *handlers.EbooksHandler
	LeadsHandler           *handlers.LeadsHandler
	CatalogHandler         *handlers.CatalogHandler
	UsersHandler           *handlers.UsersHandler
	ProjectRequestsHandler *handlers.ProjectRequestsHandler
	BlogsHandler           *handlers.BlogsHandler
	SystemHandler          *handlers.SystemHandler

	Sessions *session.Store
	Limiter  httpmw.Limiter
	Metrics  *metrics.Collector
	Logger   *observability.Logger

	RequestTimeout time.Duration
}

const (
	loginAttempts = 10
	otpAttempts   = 5
	limitWindow   = time.Minute
)

func NewRouter(deps RouterDependencies) http.Handler {
	guard := httpmw.NewGuard(deps.Sessions)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(deps.RequestTimeout))
	r.Use(httpmw.Logging(deps.Logger))
	r.Use(observeRequests(deps.Metrics))

	r.Get("/health", deps.SystemHandler.Health)
	r.Get("/metrics", deps.SystemHandler.Metrics)

	r.Group(func(r chi.Router) {
		r.Use(guard.RedirectIfAuthed)
		r.Get("/login", deps.AuthHandler.LoginPage)
		r.Get("/forgot-password", deps.AuthHandler.ForgotPasswordPage)
	})

	r.Group(func(r chi.Router) {
		r.Use(httpmw.RateLimit(deps.Limiter, "login", loginAttempts, limitWindow))
		r.Post("/login", deps.AuthHandler.Login)
	})
	r.Group(func(r chi.Router) {
		r.Use(httpmw.RateLimit(deps.Limiter, "otp", otpAttempts, limitWindow))
		r.Post("/forgot-password", deps.AuthHandler.ForgotPassword)
		r.Post("/verify-otp", deps.AuthHandler.VerifyOTP)
		r.Post("/reset-password", deps.AuthHandler.ResetPassword)
		r.Post("/resend-otp", deps.AuthHandler.ResendOTP)
	})

	r.Group(func(r chi.Router) {
		r.Use(guard.RequireLogin)

		r.Post("/logout", deps.AuthHandler.Logout)
		r.Get("/dashboard", deps.DashboardHandler.Overview)

		r.Get("/jobs", deps.JobsHandler.List)
		r.Post("/jobs", deps.JobsHandler.Create)
		r.Put("/jobs/{id}", deps.JobsHandler.Update)
		r.Patch("/jobs/{id}/status", deps.JobsHandler.UpdateStatus)
		r.Delete("/jobs/{id}", deps.JobsHandler.Delete)

		r.Get("/applicants", deps.ApplicantsHandler.List)
		r.Post("/applicants/{jobID}", deps.ApplicantsHandler.Create)
		r.Patch("/applicants/{id}/status", deps.ApplicantsHandler.UpdateStatus)
		r.Get("/applicants/{id}/resume", deps.ApplicantsHandler.Resume)

		r.Get("/ebooks", deps.EbooksHandler.List)
		r.Post("/ebooks", deps.EbooksHandler.Create)
		r.Put("/ebooks/{id}", deps.EbooksHandler.Update)
		r.Delete("/ebooks/{id}", deps.EbooksHandler.Delete)

		r.Get("/leads", deps.LeadsHandler.List)
		r.Get("/leads/export", deps.LeadsHandler.Export)

		r.Get("/services", deps.CatalogHandler.List)
		r.Post("/services", deps.CatalogHandler.Create)
		r.Put("/services/{id}", deps.CatalogHandler.Update)
		r.Delete("/services/{id}", deps.CatalogHandler.Delete)

		r.Get("/users", deps.UsersHandler.List)
		r.Post("/users", deps.UsersHandler.Create)
		r.Put("/users/{id}", deps.UsersHandler.Update)
		r.Delete("/users/{id}", deps.UsersHandler.Delete)
		r.Get("/users/export", deps.UsersHandler.Export)

		r.Get("/subscribers", deps.UsersHandler.Subscribers)
		r.Get("/subscribers/export", deps.UsersHandler.SubscribersExport)

		r.Get("/project-requests", deps.ProjectRequestsHandler.List)

		r.Get("/blogs/draft", deps.BlogsHandler.Draft)
		r.Put("/blogs/draft", deps.BlogsHandler.SaveDraft)
		r.Delete("/blogs/draft", deps.BlogsHandler.DiscardDraft)
		r.Get("/blogs/{id}", deps.BlogsHandler.Get)
		r.Post("/blogs", deps.BlogsHandler.Create)

		r.Get("/categories", deps.BlogsHandler.Categories)
		r.Post("/categories", deps.BlogsHandler.CreateCategory)
		r.Get("/blog-metrics", deps.BlogsHandler.Metrics)
	})

	return r
}

func observeRequests(collector *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			collector.ObserveRequest(r.Method + " " + r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}
}
