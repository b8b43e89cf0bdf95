package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheatworks/millbook/internal/utils"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := utils.HashPassword("mill-password")
	require.NoError(t, err)
	require.NotEqual(t, "mill-password", hash)

	assert.True(t, utils.CheckPasswordHash("mill-password", hash))
	assert.False(t, utils.CheckPasswordHash("guess", hash))
	assert.False(t, utils.CheckPasswordHash("mill-password", ""))
}
