package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT("user-1", "secret", time.Hour, "test-issuer")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "test-issuer", claims.Issuer)
}

func TestValidateJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("user-1", "secret", time.Hour, "test-issuer")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateJWTExpired(t *testing.T) {
	token, err := GenerateJWT("user-1", "secret", -time.Minute, "test-issuer")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "secret")
	assert.Error(t, err)
}
