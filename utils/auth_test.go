package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("croissant")
	require.NoError(t, err)

	assert.True(t, VerifyPassword(hash, "croissant"))
	assert.False(t, VerifyPassword(hash, "baguette"))
	assert.False(t, VerifyPassword("", "croissant"))
	assert.False(t, VerifyPassword("not-a-hash", "croissant"))
}

func TestTokenRoundTrip(t *testing.T) {
	token, expiresAt, err := GenerateToken("admin", "secret", time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := ValidateToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateTokenRejects(t *testing.T) {
	token, _, err := GenerateToken("admin", "secret", time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)

	expired, _, err := GenerateToken("admin", "secret", -time.Minute)
	require.NoError(t, err)
	_, err = ValidateToken(expired, "secret")
	assert.Error(t, err)

	_, err = ValidateToken("garbage", "secret")
	assert.Error(t, err)
}
