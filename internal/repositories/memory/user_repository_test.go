package memory

import (
	"context"
	"testing"

	"github.com/SscSPs/construct_erp/internal/apperrors"
	"github.com/SscSPs/construct_erp/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Find(t *testing.T) {
	repo := NewUserRepository(
		domain.User{ID: "u1", Name: "Carlos Silva", Email: "admin@constructora.com", Role: domain.RoleAdmin},
		domain.User{ID: "u2", Name: "Roberto Engenheiro", Email: "roberto@constructora.com", Role: domain.RoleEngineer},
	)
	ctx := context.Background()

	u, err := repo.FindUserByEmail(ctx, "  Roberto@Constructora.com ")
	require.NoError(t, err)
	assert.Equal(t, "u2", u.ID)

	u, err = repo.FindUserByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, u.Role)

	_, err = repo.FindUserByID(ctx, "u9")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = repo.FindUserByEmail(ctx, "nobody@constructora.com")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserRepository_SaveUserUpsertsByEmail(t *testing.T) {
	repo := NewUserRepository(domain.User{ID: "u3", Name: "Ana", Email: "ana@constructora.com", Role: domain.RoleFinance})
	ctx := context.Background()

	require.NoError(t, repo.SaveUser(ctx, domain.User{Name: "Ana Financeiro", Email: "ANA@constructora.com", Role: domain.RoleFinance}))
	u, err := repo.FindUserByID(ctx, "u3")
	require.NoError(t, err)
	assert.Equal(t, "Ana Financeiro", u.Name)

	require.NoError(t, repo.SaveUser(ctx, domain.User{Name: "Nova", Email: "nova@constructora.com", Role: domain.RoleEngineer}))
	u, err = repo.FindUserByEmail(ctx, "nova@constructora.com")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
}
