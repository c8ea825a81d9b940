package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHashAndCompare(t *testing.T) {
	// MinCost keeps the test fast
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret1")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, hasher.Compare(hash, "secret1"))
	assert.False(t, hasher.Compare(hash, "wrong"))
	assert.False(t, hasher.Compare("not-a-hash", "secret1"))
}

func TestBcryptHashesDiffer(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("secret1")
	assert.NoError(t, err)
	second, err := hasher.Hash("secret1")
	assert.NoError(t, err)

	// Salted hashes of the same input must not repeat
	assert.NotEqual(t, first, second)
}

func TestBcryptCostFallback(t *testing.T) {
	hasher := NewBcryptHasher(1000)

	hash, err := hasher.Hash("secret1")
	assert.NoError(t, err)
	assert.True(t, hasher.Compare(hash, "secret1"))
}
