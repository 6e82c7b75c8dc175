package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hasher := NewBcryptHasher(4)

	hash, err := hasher.Hash("secreta123")
	require.NoError(t, err)
	assert.NotEqual(t, "secreta123", hash)

	assert.NoError(t, hasher.Compare(hash, "secreta123"))
	assert.Error(t, hasher.Compare(hash, "otra-clave"))
}

func TestInvalidCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasher(99)

	hash, err := hasher.Hash("secreta123")
	require.NoError(t, err)
	assert.NoError(t, hasher.Compare(hash, "secreta123"))
}
