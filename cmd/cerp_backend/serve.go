package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/construct_erp/internal/adapters/blob/s3"
	"github.com/SscSPs/construct_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/construct_erp/internal/core/ports/repositories"
	"github.com/SscSPs/construct_erp/internal/core/services"
	"github.com/SscSPs/construct_erp/internal/handlers"
	"github.com/SscSPs/construct_erp/internal/middleware"
	"github.com/SscSPs/construct_erp/internal/platform/config"
	"github.com/SscSPs/construct_erp/internal/platform/metrics"
	"github.com/SscSPs/construct_erp/internal/platform/seed"
	"github.com/SscSPs/construct_erp/internal/repositories/database/pgsql"
	"github.com/SscSPs/construct_erp/internal/repositories/memory"
	"github.com/SscSPs/construct_erp/internal/utils"
	"github.com/SscSPs/construct_erp/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}

	registry := metrics.NewRegistry()
	deps := services.ContainerDeps{Metrics: registry, Logger: logger}

	var repos portsrepo.RepositoryProvider
	if cfg.MockMode() {
		data, err := seed.Load(cfg.SeedFile)
		if err != nil {
			return err
		}
		users, err := demoUsers(data, cfg.DemoPassword)
		if err != nil {
			return err
		}
		repos.UserRepo = memory.NewUserRepository(users...)
		deps.Seed = data.Workspace
		logger.Info("Running in mock mode", slog.Int("users", len(users)))
	} else {
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return fmt.Errorf("initialize database pool: %w", err)
		}
		defer database.ClosePgxPool(dbPool, logger)

		if err := runMigrations(cfg.DatabaseURL, logger, false); err != nil {
			return err
		}
		repos = pgsql.NewRepositoryProvider(dbPool)
	}

	if cfg.PhotoStorageEnabled() {
		photos, err := s3.New(ctx, s3.Config{
			Bucket:        cfg.S3Bucket,
			Region:        cfg.S3Region,
			Endpoint:      cfg.S3Endpoint,
			PathStyle:     cfg.S3PathStyle,
			PublicBaseURL: cfg.S3PublicBaseURL,
		})
		if err != nil {
			return fmt.Errorf("initialize photo storage: %w", err)
		}
		deps.Photos = photos
	}

	container := services.NewServiceContainer(cfg, repos, deps)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogHost, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.RequestMetrics(registry),
		cors.New(corsConfig(cfg)),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("set trusted proxies: %w", err)
	}

	handlers.RegisterRoutes(r, cfg, container, handlers.RouteDeps{
		Posthog: posthogClient,
		Metrics: registry.Handler(),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("version", Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed to run: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}

func corsConfig(cfg *config.Config) cors.Config {
	return cors.Config{
		AllowOrigins:     []string{cfg.FrontendBaseURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

// demoUsers gives every seeded user the shared demo password.
func demoUsers(data *seed.Data, password string) ([]domain.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}
	users := make([]domain.User, 0, len(data.Users))
	for _, u := range data.Users {
		u.PasswordHash = hash
		users = append(users, u)
	}
	return users, nil
}
