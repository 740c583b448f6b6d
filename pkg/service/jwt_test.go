package service

import (
	"errors"
	"testing"
	"time"

	apperrors "equipment-registry/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, time.Hour*24, zap.NewNop())

	accessToken, refreshToken, err := svc.GenerateTokens(42, 7)
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	claims, err := svc.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, uint64(7), claims.RoleID)
	assert.False(t, claims.IsRefreshToken)

	refreshClaims, err := svc.ValidateToken(refreshToken)
	require.NoError(t, err)
	assert.True(t, refreshClaims.IsRefreshToken)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-one", time.Hour, time.Hour, zap.NewNop())
	verifier := NewJWTService("secret-two", time.Hour, time.Hour, zap.NewNop())

	accessToken, _, err := issuer.GenerateTokens(42, 7)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(accessToken)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidToken))
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute, time.Hour, zap.NewNop())

	accessToken, _, err := svc.GenerateTokens(42, 7)
	require.NoError(t, err)

	_, err = svc.ValidateToken(accessToken)
	require.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, time.Hour, zap.NewNop())

	_, err := svc.ValidateToken("definitely.not.a-token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidToken))
}

func TestJWTService_TTLAccessors(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, time.Hour*24, zap.NewNop())
	assert.Equal(t, time.Hour, svc.GetAccessTokenTTL())
	assert.Equal(t, time.Hour*24, svc.GetRefreshTokenTTL())
}
