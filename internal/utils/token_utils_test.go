package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	now := time.Now()
	token, err := GenerateJWT("u1", "sess-1", "secret", now, now.Add(time.Hour), "cerp")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "sess-1", claims.ID)
	assert.Equal(t, "cerp", claims.Issuer)
}

func TestGenerateJWT_UsesGivenIssueTime(t *testing.T) {
	issued := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	token, err := GenerateJWT("u1", "sess-1", "secret", issued, issued.Add(time.Hour), "cerp")
	require.NoError(t, err)

	// valid at the issuing clock
	claims, err := ParseAndValidateJWT(token, "secret", jwt.WithTimeFunc(func() time.Time { return issued.Add(time.Minute) }))
	require.NoError(t, err)
	assert.True(t, claims.IssuedAt.Time.Equal(issued))
	assert.True(t, claims.NotBefore.Time.Equal(issued))
	assert.True(t, claims.ExpiresAt.Time.Equal(issued.Add(time.Hour)))

	// long expired by the wall clock
	_, err = ParseAndValidateJWT(token, "secret")
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))

	_, err = ParseAndValidateJWT(token, "secret", jwt.WithTimeFunc(func() time.Time { return issued.Add(-time.Minute) }))
	assert.True(t, errors.Is(err, jwt.ErrTokenNotValidYet))
}

func TestParseAndValidateJWT_Rejects(t *testing.T) {
	now := time.Now()
	valid, err := GenerateJWT("u1", "sess-1", "secret", now, now.Add(time.Hour), "cerp")
	require.NoError(t, err)
	expired, err := GenerateJWT("u1", "sess-1", "secret", now.Add(-time.Hour), now.Add(-time.Minute), "cerp")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(valid, "other-secret")
	assert.True(t, errors.Is(err, jwt.ErrTokenSignatureInvalid))

	_, err = ParseAndValidateJWT(expired, "secret")
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))

	_, err = ParseAndValidateJWT("not-a-token", "secret")
	assert.Error(t, err)
}

func TestGenerateSecureToken(t *testing.T) {
	a, err := GenerateSecureToken(16)
	require.NoError(t, err)
	b, err := GenerateSecureToken(16)
	require.NoError(t, err)

	assert.Len(t, a, 22)
	assert.NotEqual(t, a, b)
	assert.NotContains(t, a, "=")

	_, err = GenerateSecureToken(0)
	assert.Error(t, err)
}
