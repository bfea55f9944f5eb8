package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/SscSPs/construct_erp/internal/apperrors"
	"github.com/SscSPs/construct_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/construct_erp/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/construct_erp/internal/core/ports/services"
	"github.com/SscSPs/construct_erp/internal/core/workspace"
	"github.com/SscSPs/construct_erp/internal/utils"
	"github.com/google/uuid"
)

// SessionTracker is told when sessions start and end.
type SessionTracker interface {
	SessionStarted()
	SessionEnded()
}

type noopTracker struct{}

func (noopTracker) SessionStarted() {}
func (noopTracker) SessionEnded()   {}

// TokenConfig holds the settings used to sign session tokens.
type TokenConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

type activeSession struct {
	session  domain.Session
	storeKey string
}

// boundStore is a cached workspace and the number of sessions using it.
type boundStore struct {
	store *workspace.Store
	refs  int
	// load is renewed each time refs goes from 0 to 1.
	load *sync.Once
}

type sessionService struct {
	BaseService
	users  portsrepo.UserRepositoryFacade
	google portssvc.GoogleOAuthSvcFacade
	tokens TokenConfig

	// shared is used for every user when set; otherwise newStore builds one per user.
	shared   *workspace.Store
	newStore func() *workspace.Store

	tracker SessionTracker
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*activeSession
	stores   map[string]*boundStore
}

var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

// SessionOption configures the session service.
type SessionOption func(*sessionService)

// WithSharedWorkspace binds every session to store.
func WithSharedWorkspace(store *workspace.Store) SessionOption {
	return func(s *sessionService) {
		s.shared = store
	}
}

// WithWorkspaceFactory builds one store per user, cached across logins.
func WithWorkspaceFactory(newStore func() *workspace.Store) SessionOption {
	return func(s *sessionService) {
		s.newStore = newStore
	}
}

func WithGoogleOAuth(google portssvc.GoogleOAuthSvcFacade) SessionOption {
	return func(s *sessionService) {
		s.google = google
	}
}

func WithSessionTracker(tracker SessionTracker) SessionOption {
	return func(s *sessionService) {
		if tracker != nil {
			s.tracker = tracker
		}
	}
}

func WithSessionClock(now func() time.Time) SessionOption {
	return func(s *sessionService) {
		s.now = now
	}
}

// NewSessionService creates the session gate.
func NewSessionService(users portsrepo.UserRepositoryFacade, tokens TokenConfig, opts ...SessionOption) portssvc.SessionSvcFacade {
	s := &sessionService{
		users:    users,
		tokens:   tokens,
		tracker:  noopTracker{},
		now:      time.Now,
		sessions: make(map[string]*activeSession),
		stores:   make(map[string]*boundStore),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.shared == nil && s.newStore == nil {
		s.newStore = func() *workspace.Store { return workspace.New() }
	}
	return s
}

// Login verifies email and password and starts a session.
func (s *sessionService) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "Login rejected: unknown email")
			return nil, apperrors.NewUnauthorizedError("invalid email or password")
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogInfo(ctx, "Login rejected: wrong password", slog.String("user_id", user.ID))
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}
	return s.start(ctx, *user)
}

// LoginWithGoogle exchanges code and logs in the user registered under the verified email.
func (s *sessionService) LoginWithGoogle(ctx context.Context, code string) (*domain.LoginResult, error) {
	if s.google == nil {
		return nil, apperrors.NewBadRequestError("google login is not configured")
	}
	token, err := s.google.ExchangeCodeForToken(ctx, code)
	if err != nil {
		s.LogError(ctx, err, "Failed to exchange Google authorization code")
		return nil, apperrors.NewAppError(http.StatusUnauthorized, "failed to exchange authorization code", err)
	}
	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, apperrors.NewUnauthorizedError("google response carried no id_token")
	}
	payload, err := s.google.ValidateGoogleIDToken(ctx, rawIDToken)
	if err != nil {
		s.LogError(ctx, err, "Google ID token rejected")
		return nil, apperrors.NewAppError(http.StatusUnauthorized, "invalid google id token", err)
	}

	email, _ := payload.Claims["email"].(string)
	if verified, _ := payload.Claims["email_verified"].(bool); email == "" || !verified {
		return nil, apperrors.NewUnauthorizedError("google account email is not verified")
	}

	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "Google login rejected: email not registered")
			return nil, apperrors.NewUnauthorizedError("no user registered for this google account")
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if picture, _ := payload.Claims["picture"].(string); picture != "" && user.Avatar == "" {
		user.Avatar = picture
		if err := s.users.SaveUser(ctx, *user); err != nil {
			s.LogError(ctx, err, "Failed to store Google avatar", slog.String("user_id", user.ID))
		}
	}
	return s.start(ctx, *user)
}

// start binds the user's workspace and issues the token.
func (s *sessionService) start(ctx context.Context, user domain.User) (*domain.LoginResult, error) {
	now := s.now()
	session := domain.Session{
		ID:        uuid.NewString(),
		User:      user,
		StartedAt: now,
		ExpiresAt: now.Add(s.tokens.TTL),
	}
	token, err := utils.GenerateJWT(user.ID, session.ID, s.tokens.Secret, session.StartedAt, session.ExpiresAt, s.tokens.Issuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign session token", slog.String("user_id", user.ID))
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	// concurrent logins of the same user wait here until the first one has loaded the store
	key, store, load := s.bind(user.ID)
	load.Do(func() {
		if err := store.Reload(ctx); err != nil {
			// the cached collections stay usable
			s.LogError(ctx, err, "Failed to load workspace at login", slog.String("user_id", user.ID))
		}
	})

	s.mu.Lock()
	s.sessions[session.ID] = &activeSession{session: session, storeKey: key}
	s.mu.Unlock()
	s.tracker.SessionStarted()

	s.LogInfo(ctx, "Session started",
		slog.String("user_id", user.ID),
		slog.String("session_id", session.ID),
		slog.String("role", string(user.Role)))

	session.User.PasswordHash = ""
	return &domain.LoginResult{Token: token, ExpiresAt: session.ExpiresAt, Session: session}, nil
}

// bind returns the store for userID and the gate of its current load.
func (s *sessionService) bind(userID string) (string, *workspace.Store, *sync.Once) {
	key := userID
	if s.shared != nil {
		key = ""
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	bound, ok := s.stores[key]
	if !ok {
		store := s.shared
		if store == nil {
			store = s.newStore()
		}
		bound = &boundStore{store: store}
		s.stores[key] = bound
	}
	bound.refs++
	if bound.refs == 1 {
		bound.load = new(sync.Once)
	}
	return key, bound.store, bound.load
}

// Logout ends the session. Unknown sessions are ignored.
func (s *sessionService) Logout(ctx context.Context, sessionID string) error {
	if s.end(sessionID) {
		s.LogInfo(ctx, "Session ended", slog.String("session_id", sessionID))
	}
	return nil
}

func (s *sessionService) end(sessionID string) bool {
	s.mu.Lock()
	active, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return false
	}
	delete(s.sessions, sessionID)
	var detach *workspace.Store
	if bound, ok := s.stores[active.storeKey]; ok {
		bound.refs--
		if bound.refs == 0 {
			detach = bound.store
		}
	}
	s.mu.Unlock()

	if detach != nil {
		detach.Detach()
	}
	s.tracker.SessionEnded()
	return true
}

// Resolve returns the live session and its workspace.
func (s *sessionService) Resolve(ctx context.Context, sessionID string) (*domain.Session, portssvc.WorkspaceSvc, error) {
	s.mu.Lock()
	active, ok := s.sessions[sessionID]
	var store *workspace.Store
	if ok {
		if bound, found := s.stores[active.storeKey]; found {
			store = bound.store
		}
	}
	s.mu.Unlock()

	if !ok || store == nil {
		return nil, nil, apperrors.NewUnauthorizedError("session not found")
	}
	if !s.now().Before(active.session.ExpiresAt) {
		s.end(sessionID)
		s.LogInfo(ctx, "Session expired", slog.String("session_id", sessionID))
		return nil, nil, apperrors.NewUnauthorizedError("session expired")
	}

	session := active.session
	session.User.PasswordHash = ""
	return &session, store, nil
}

func (s *sessionService) Navigation(role domain.Role) []domain.NavItem {
	return domain.NavigationFor(role)
}
