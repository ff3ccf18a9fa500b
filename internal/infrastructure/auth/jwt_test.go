package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickdesk-io/quickdesk/internal/shared/authorization"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	pair, err := svc.Generate(42, authorization.RoleAgent)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)

	claims, err := svc.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, authorization.RoleAgent, claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)

	refreshClaims, err := svc.Verify(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, refreshClaims.TokenType)
}

func TestJWTService_VerifyRejectsWrongSecret(t *testing.T) {
	svc := NewJWTService("secret-a", 15, 7)
	other := NewJWTService("secret-b", 15, 7)

	pair, err := svc.Generate(1, authorization.RoleEndUser)
	require.NoError(t, err)

	_, err = other.Verify(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_VerifyRejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)
	_, err := svc.Verify("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_RefreshAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	pair, err := svc.Generate(7, authorization.RoleAdmin)
	require.NoError(t, err)

	refreshClaims, err := svc.Verify(pair.RefreshToken)
	require.NoError(t, err)

	newAccess, err := svc.RefreshAccessToken(refreshClaims)
	require.NoError(t, err)

	claims, err := svc.Verify(newAccess)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)

	accessClaims, err := svc.Verify(pair.AccessToken)
	require.NoError(t, err)
	_, err = svc.RefreshAccessToken(accessClaims)
	assert.ErrorContains(t, err, "refresh token required")
}

func TestBcryptPasswordHasher(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4) // min cost keeps the test fast

	hash, err := hasher.Hash("correct horse 1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NoError(t, hasher.Verify("correct horse 1", hash))
	assert.Error(t, hasher.Verify("wrong password", hash))
	assert.Error(t, hasher.Verify("correct horse 1", "not-a-hash"))
}
