package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"opsdash/internal/app"
	"opsdash/internal/config"
	"opsdash/internal/draftstore"
	apphttp "opsdash/internal/http"
	"opsdash/internal/http/handlers"
	"opsdash/internal/http/metrics"
	httpmw "opsdash/internal/http/middleware"
	"opsdash/internal/http/response"
	"opsdash/internal/observability"
	"opsdash/internal/session"
	"opsdash/internal/upstream"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger().With("service", "opsdash")

	drafts, err := draftstore.Open(cfg.DraftDBPath)
	if err != nil {
		log.Fatal(err)
	}
	defer drafts.Close()

	sessions := session.NewStore(cfg.SessionSecret)

	var limiter httpmw.Limiter = httpmw.NewMemoryLimiter()
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal(err)
		}
		limiter = httpmw.NewRedisLimiter(redis.NewClient(opts))
		logger.Info("rate limiting via redis")
	}

	client := upstream.New(cfg.UpstreamBaseURL, &http.Client{Timeout: cfg.UpstreamTimeout})
	jobsAPI := upstream.NewJobs(client)
	applicantsAPI := upstream.NewApplicants(client)
	ebooksAPI := upstream.NewEbooks(client)
	catalogAPI := upstream.NewCatalog(client)
	usersAPI := upstream.NewUsers(client)
	requestsAPI := upstream.NewProjectRequests(client)
	blogsAPI := upstream.NewBlogs(client)
	authAPI := upstream.NewAuth(client)

	authService := app.NewAuthService(authAPI, logger)
	jobsService := app.NewJobsService(jobsAPI, logger)
	applicantsService := app.NewApplicantsService(applicantsAPI, logger)
	dashboardService := app.NewDashboardService(jobsService, applicantsService, logger)
	ebooksService := app.NewEbooksService(ebooksAPI, logger)
	leadsService := app.NewLeadsService(ebooksAPI, logger)
	catalogService := app.NewCatalogService(catalogAPI, logger)
	usersService := app.NewUsersService(usersAPI, logger)
	requestsService := app.NewProjectRequestsService(requestsAPI, logger)
	blogsService := app.NewBlogsService(blogsAPI, drafts, logger)

	collector := metrics.NewCollector()
	response.SetErrorCollector(collector)

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		AuthHandler:            handlers.NewAuthHandler(authService, sessions),
		DashboardHandler:       handlers.NewDashboardHandler(dashboardService),
		JobsHandler:            handlers.NewJobsHandler(jobsService, cfg.PageSize),
		ApplicantsHandler:      handlers.NewApplicantsHandler(applicantsService, cfg.PageSize),
		EbooksHandler:          handlers.NewEbooksHandler(ebooksService, cfg.PageSize),
		LeadsHandler:           handlers.NewLeadsHandler(leadsService, cfg.PageSize),
		CatalogHandler:         handlers.NewCatalogHandler(catalogService, cfg.PageSize),
		UsersHandler:           handlers.NewUsersHandler(usersService, sessions, cfg.PageSize),
		ProjectRequestsHandler: handlers.NewProjectRequestsHandler(requestsService, cfg.PageSize),
		BlogsHandler:           handlers.NewBlogsHandler(blogsService, sessions),
		SystemHandler:          handlers.NewSystemHandler(collector),
		Sessions:               sessions,
		Limiter:                limiter,
		Metrics:                collector,
		Logger:                 logger,
		RequestTimeout:         cfg.RequestTimeout,
	})

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("admin gateway started on :" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
