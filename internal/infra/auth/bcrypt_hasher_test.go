package auth

import (
	"strings"
	"testing"

	"shop/config"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, DefaultCost, cost)

	ok, err := hasher.Check(password, hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_HashTooLong(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("a", 73))
	assert.Error(t, err)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	ok, err := hasher.Check(password, hash)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Check("WrongPassword123!", hash)
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = hasher.Check("", hash)
	assert.NoError(t, err)
	assert.False(t, ok)

	// A malformed digest is a fault, never an accepted credential.
	ok, err = hasher.Check(password, "invalid_hash")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_WithConfiguredCost(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 6}})

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestBcryptHasher_OutOfRangeCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasherWithCost(99)

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, DefaultCost, cost)
}

func TestProperty_HashNeverEqualsPlaintextAndVerifies(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 25

	properties := gopter.NewProperties(parameters)

	properties.Property("digest differs from plaintext and verifies it", prop.ForAll(
		func(password string) bool {
			hash, err := hasher.Hash(password)
			if err != nil {
				return false
			}
			ok, err := hasher.Check(password, hash)

			return err == nil && ok && hash != password
		},
		gen.AlphaString().SuchThat(func(s string) bool { return len(s) <= 72 }),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
