package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syedzainalii/noosh-tuft/config"
)

func testTokenService() *TokenService {
	return NewTokenService(config.Config{
		SecretKey:          "test-secret",
		AccessTokenExpiry:  time.Minute,
		RefreshTokenExpiry: time.Hour,
	})
}

func TestTokenRoundTrip(t *testing.T) {
	svc := testTokenService()

	access, err := svc.AccessToken(42)
	require.NoError(t, err)
	refresh, err := svc.RefreshToken(42)
	require.NoError(t, err)

	userID, err := svc.ParseAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)

	userID, err = svc.ParseRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestTokenTypeMismatchRejected(t *testing.T) {
	svc := testTokenService()

	access, err := svc.AccessToken(7)
	require.NoError(t, err)
	refresh, err := svc.RefreshToken(7)
	require.NoError(t, err)

	_, err = svc.ParseAccessToken(refresh)
	assert.Error(t, err, "a refresh token must not pass as an access token")
	_, err = svc.ParseRefreshToken(access)
	assert.Error(t, err, "an access token must not pass as a refresh token")
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := NewTokenService(config.Config{
		SecretKey:         "test-secret",
		AccessTokenExpiry: -time.Minute,
	})

	token, err := svc.AccessToken(7)
	require.NoError(t, err)

	_, err = svc.ParseAccessToken(token)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := testTokenService().AccessToken(7)
	require.NoError(t, err)

	other := NewTokenService(config.Config{SecretKey: "different", AccessTokenExpiry: time.Minute})
	_, err = other.ParseAccessToken(token)
	assert.Error(t, err)
}

func TestRandomToken(t *testing.T) {
	a := RandomToken()
	b := RandomToken()

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}
