package services

import (
	"log/slog"

	"github.com/SscSPs/construct_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/construct_erp/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/construct_erp/internal/core/ports/services"
	"github.com/SscSPs/construct_erp/internal/core/workspace"
	"github.com/SscSPs/construct_erp/internal/platform/config"
)

// Instrumentation receives sync outcomes and session counts.
type Instrumentation interface {
	workspace.SyncObserver
	SessionTracker
}

// ContainerDeps carries the optional collaborators of the services.
type ContainerDeps struct {
	// Photos is nil when no bucket is configured.
	Photos portsrepo.PhotoStore
	// Seed fills the shared workspace when repos.Remote is nil.
	Seed    domain.Snapshot
	Metrics Instrumentation
	Logger  *slog.Logger
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, deps ContainerDeps) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	storeOpts := []workspace.Option{workspace.WithLogger(deps.Logger)}
	sessionOpts := []SessionOption{}
	if deps.Metrics != nil {
		storeOpts = append(storeOpts, workspace.WithObserver(deps.Metrics))
		sessionOpts = append(sessionOpts, WithSessionTracker(deps.Metrics))
	}

	if repos.Remote == nil {
		// one seeded workspace shared by every demo user
		shared := workspace.New(append(storeOpts, workspace.WithSeed(deps.Seed))...)
		sessionOpts = append(sessionOpts, WithSharedWorkspace(shared))
	} else {
		perUser := append(storeOpts, workspace.WithRemote(repos.Remote))
		sessionOpts = append(sessionOpts, WithWorkspaceFactory(func() *workspace.Store {
			return workspace.New(perUser...)
		}))
	}

	if cfg.GoogleOAuthEnabled() {
		container.GoogleOAuth = NewGoogleOAuthService(cfg)
		sessionOpts = append(sessionOpts, WithGoogleOAuth(container.GoogleOAuth))
	}

	container.Session = NewSessionService(repos.UserRepo, TokenConfig{
		Secret: cfg.JWTSecret,
		Issuer: cfg.JWTIssuer,
		TTL:    cfg.JWTExpiryDuration,
	}, sessionOpts...)
	container.Photos = NewPhotoService(deps.Photos)

	return container
}
