package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	githubadapter "github.com/ericfisherdev/portfolio-api/internal/adapter/driven/github"
	resendadapter "github.com/ericfisherdev/portfolio-api/internal/adapter/driven/resend"
	sqliteadapter "github.com/ericfisherdev/portfolio-api/internal/adapter/driven/sqlite"
	httphandler "github.com/ericfisherdev/portfolio-api/internal/adapter/driving/http"
	"github.com/ericfisherdev/portfolio-api/internal/application"
	"github.com/ericfisherdev/portfolio-api/internal/config"
	"github.com/ericfisherdev/portfolio-api/internal/domain/port/driven"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (fail fast on missing required env vars).
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"db_path", cfg.DBPath,
		"token_ttl", cfg.TokenTTL,
		"contact_window", cfg.ContactWindow,
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Open database (dual reader/writer with WAL mode).
	db, err := sqliteadapter.NewDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()
	slog.Info("database opened", "path", cfg.DBPath)

	// 4. Run migrations on writer connection.
	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		return err
	}
	slog.Info("migrations complete")

	// 5. Wire store adapters.
	blogStore := sqliteadapter.NewBlogRepo(db)
	researchStore := sqliteadapter.NewResearchRepo(db)
	publicationStore := sqliteadapter.NewPublicationRepo(db)
	contactStore := sqliteadapter.NewContactRepo(db)

	// 6. Create the notifier (noop when no email provider is configured).
	var notifier driven.Notifier = driven.NoopNotifier{}
	if cfg.HasEmailConfig() {
		notifier = resendadapter.NewClient(cfg.ResendAPIKey, cfg.EmailFrom, cfg.EmailTo)
		slog.Info("email notifications enabled", "to", cfg.EmailTo)
	} else {
		slog.Info("no email provider configured, contact notifications disabled")
	}

	// 7. Create application services.
	tokenSvc := application.NewTokenService(
		cfg.SecretKey, cfg.AdminUsername, cfg.AdminPassword, cfg.AdminPasswordHash, cfg.TokenTTL)

	throttle := application.NewSubmissionThrottle(cfg.ContactWindow)
	throttle.StartJanitor(ctx, time.Minute)

	contactSvc := application.NewContactService(contactStore, notifier, throttle, slog.Default())

	// 8. Create GitHub client (may be nil, which disables metadata sync).
	var ghClient driven.RepoMetadataClient
	if cfg.GitHubToken != "" {
		ghClient = githubadapter.NewClient(cfg.GitHubToken)
		slog.Info("github client created", "sync_interval", cfg.SyncInterval)
	} else {
		slog.Info("no github token configured, project metadata sync disabled")
	}

	syncSvc := application.NewProjectSyncService(ghClient, researchStore, cfg.SyncInterval)
	go syncSvc.Start(ctx)

	// 9. Create HTTP handler and register routes.
	apiHandler := httphandler.NewHandler(
		blogStore, researchStore, publicationStore, contactStore,
		contactSvc, tokenSvc, syncSvc, db.Reader, slog.Default())
	handler := httphandler.NewServeMux(apiHandler, cfg.AllowedOrigins, slog.Default())

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
		}
	}()

	slog.Info("portfolio-api started", "listen_addr", cfg.ListenAddr)

	// 10. Wait for shutdown signal.
	<-ctx.Done()
	slog.Info("shutting down")

	// 11. Graceful shutdown with 10s timeout to drain in-flight requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}
