package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundtrip(t *testing.T) {
	token, err := SignJWT("test-secret", "user-123", "engineer", 60)
	require.NoError(t, err)

	claims, err := ParseJWT("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "engineer", claims.Role)
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := SignJWT("test-secret", "user-123", "community", 60)
	require.NoError(t, err)

	_, err = ParseJWT("other-secret", token)
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	token, err := SignJWT("test-secret", "user-123", "community", -1)
	require.NoError(t, err)

	_, err = ParseJWT("test-secret", token)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hashed, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hashed)

	assert.True(t, CheckPassword(hashed, "hunter22"))
	assert.False(t, CheckPassword(hashed, "hunter2"))
}
