package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antu41/ECommerceInventory/internal/utils"
)

func TestHashPassword(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-password", hash)

	// Salted: hashing the same password twice yields different strings.
	hash2, err := utils.HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-password")
	require.NoError(t, err)

	assert.True(t, utils.CheckPasswordHash("s3cret-password", hash))
	assert.False(t, utils.CheckPasswordHash("wrong-password", hash))
	assert.False(t, utils.CheckPasswordHash("s3cret-password", "not-a-bcrypt-hash"))
	assert.False(t, utils.CheckPasswordHash("s3cret-password", ""))
}
