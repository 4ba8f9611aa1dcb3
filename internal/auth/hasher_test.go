package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_RoundTrip(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost)

	digest, err := hasher.Hash("abcd1234")
	require.NoError(t, err)
	assert.NotEmpty(t, digest)
	assert.NotEqual(t, "abcd1234", digest)

	assert.True(t, hasher.Verify("abcd1234", digest))
	assert.False(t, hasher.Verify("abcd1235", digest))
}

func TestHasher_SaltedOutputsDiffer(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost)

	first, err := hasher.Hash("abcd1234")
	require.NoError(t, err)
	second, err := hasher.Hash("abcd1234")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("abcd1234", first))
	assert.True(t, hasher.Verify("abcd1234", second))
}

func TestHasher_CrossVerifyFails(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost)

	digest, err := hasher.Hash("first-password1")
	require.NoError(t, err)
	assert.False(t, hasher.Verify("second-password2", digest))
}

func TestHasher_MalformedDigest(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost)

	assert.False(t, hasher.Verify("abcd1234", ""))
	assert.False(t, hasher.Verify("abcd1234", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Verify("", "also malformed"))
}

func TestNewHasher_CostFallback(t *testing.T) {
	digest, err := NewHasher(-1).Hash("abcd1234")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestNewHasher_CustomCost(t *testing.T) {
	digest, err := NewHasher(bcrypt.MinCost).Hash("abcd1234")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}
