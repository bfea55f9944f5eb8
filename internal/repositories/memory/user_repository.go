// Package memory holds the user directory used when no database is configured.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/SscSPs/construct_erp/internal/apperrors"
	"github.com/SscSPs/construct_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/construct_erp/internal/core/ports/repositories"
	"github.com/google/uuid"
)

// UserRepository is a map-backed user directory.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]domain.User
	byEmail map[string]string
}

var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

// NewUserRepository creates a directory holding users.
func NewUserRepository(users ...domain.User) *UserRepository {
	r := &UserRepository{
		byID:    make(map[string]domain.User, len(users)),
		byEmail: make(map[string]string, len(users)),
	}
	for _, u := range users {
		r.put(u)
	}
	return r
}

func (r *UserRepository) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	u := r.byID[id]
	return &u, nil
}

// SaveUser inserts user, or replaces the entry with the same email.
func (r *UserRepository) SaveUser(_ context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.byEmail[normalizeEmail(user.Email)]; ok {
		user.ID = id
	} else if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.put(user)
	return nil
}

func (r *UserRepository) put(u domain.User) {
	r.byID[u.ID] = u
	r.byEmail[normalizeEmail(u.Email)] = u.ID
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
