package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antu41/ECommerceInventory/internal/utils"
)

func TestHashRefreshToken(t *testing.T) {
	digest := utils.HashRefreshToken("some-refresh-token")

	// SHA-256 hex digest is always 64 characters.
	assert.Len(t, digest, 64)
	assert.NotEqual(t, "some-refresh-token", digest)

	// Deterministic, so it works as a lookup key.
	assert.Equal(t, digest, utils.HashRefreshToken("some-refresh-token"))
	assert.NotEqual(t, digest, utils.HashRefreshToken("another-token"))
}

func TestGenerateSecureRandomString(t *testing.T) {
	s1, err := utils.GenerateSecureRandomString(32)
	require.NoError(t, err)
	assert.Len(t, s1, 64)

	s2, err := utils.GenerateSecureRandomString(32)
	require.NoError(t, err)
	assert.NotEqual(t, s1, s2)

	_, err = utils.GenerateSecureRandomString(0)
	assert.Error(t, err)
	_, err = utils.GenerateSecureRandomString(-1)
	assert.Error(t, err)
}
