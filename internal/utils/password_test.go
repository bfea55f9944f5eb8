package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("obra123")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("obra123", hash))
	assert.False(t, CheckPasswordHash("obra124", hash))
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestCheckPasswordHash_NoHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("", ""))
}
