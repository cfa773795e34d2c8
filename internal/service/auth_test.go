package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_GenerateToken(t *testing.T) {
	// Given: an auth service with a secret
	auth := NewAuthService("test-secret")

	// When: issuing a token for a player
	token, err := auth.GenerateToken("player123")

	// Then: a non-empty token should be returned
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestAuthService_ValidateToken(t *testing.T) {
	t.Run("Round trip recovers the player ID", func(t *testing.T) {
		// Given: a token issued for a player
		auth := NewAuthService("test-secret")
		token, err := auth.GenerateToken("player123")
		require.NoError(t, err)

		// When: validating the token
		playerID, err := auth.ValidateToken(token)

		// Then: the original player ID should come back
		require.NoError(t, err)
		assert.Equal(t, "player123", playerID)
	})

	t.Run("Rejects a token signed with another secret", func(t *testing.T) {
		// Given: a token issued with a different secret
		otherAuth := NewAuthService("other-secret")
		token, err := otherAuth.GenerateToken("player123")
		require.NoError(t, err)

		// When: validating with our secret
		auth := NewAuthService("test-secret")
		_, err = auth.ValidateToken(token)

		// Then: validation should fail
		assert.Error(t, err)
	})

	t.Run("Rejects garbage input", func(t *testing.T) {
		// Given: an auth service
		auth := NewAuthService("test-secret")

		// When: validating something that is not a token
		_, err := auth.ValidateToken("not-a-token")

		// Then: validation should fail
		assert.Error(t, err)
	})
}
