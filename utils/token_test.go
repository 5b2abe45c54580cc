package utils

import (
	"testing"
	"time"

	"bluelog/config"
	"bluelog/global"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSessionConfig(t *testing.T) {
	t.Helper()
	global.Config = &config.Config{
		Session: config.Session{
			Secret:       "test-secret",
			Issuer:       "bluelog",
			Expires:      12,
			RememberDays: 7,
		},
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	setupSessionConfig(t)

	token, err := GenerateSessionToken(1, "admin", false)
	require.NoError(t, err)

	claims, err := ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.AdminID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "bluelog", claims.Issuer)
}

func TestSessionTokenRememberExtendsExpiry(t *testing.T) {
	setupSessionConfig(t)

	short, err := GenerateSessionToken(1, "admin", false)
	require.NoError(t, err)
	long, err := GenerateSessionToken(1, "admin", true)
	require.NoError(t, err)

	shortClaims, err := ParseSessionToken(short)
	require.NoError(t, err)
	longClaims, err := ParseSessionToken(long)
	require.NoError(t, err)

	assert.Greater(t, longClaims.ExpiresAt, shortClaims.ExpiresAt)
	assert.Greater(t, TokenRemainingTTL(longClaims), 6*24*time.Hour)
}

func TestSessionTokenTampered(t *testing.T) {
	setupSessionConfig(t)

	token, err := GenerateSessionToken(1, "admin", false)
	require.NoError(t, err)

	_, err = ParseSessionToken(token + "x")
	require.Error(t, err)

	_, err = ParseSessionToken("not-a-token")
	require.Error(t, err)
}
