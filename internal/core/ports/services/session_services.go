package services

import (
	"context"

	"github.com/SscSPs/construct_erp/internal/core/domain"
)

// SessionReaderSvc resolves an active session.
type SessionReaderSvc interface {
	// Resolve returns the session and its workspace, or apperrors.ErrUnauthorized.
	Resolve(ctx context.Context, sessionID string) (*domain.Session, WorkspaceSvc, error)

	// Navigation filters the navigation manifest for role.
	Navigation(role domain.Role) []domain.NavItem
}

// SessionWriterSvc starts and ends sessions.
type SessionWriterSvc interface {
	// Login verifies credentials, binds the user's workspace and returns a signed token.
	Login(ctx context.Context, email, password string) (*domain.LoginResult, error)

	// LoginWithGoogle exchanges a Google authorization code and logs in the matching user.
	LoginWithGoogle(ctx context.Context, code string) (*domain.LoginResult, error)

	// Logout ends the session. The workspace keeps its cached collections.
	Logout(ctx context.Context, sessionID string) error
}

// SessionSvcFacade combines the session interfaces
type SessionSvcFacade interface {
	SessionReaderSvc
	SessionWriterSvc
}
