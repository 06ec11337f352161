package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass", 4)
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hash)

	require.NoError(t, ComparePassword(hash, "s3cret-pass"))
	require.Error(t, ComparePassword(hash, "wrong-pass"))
}

func TestComparePasswordMutatedHash(t *testing.T) {
	hash, err := HashPassword("s3cret-pass", 4)
	require.NoError(t, err)

	// flip one byte in the digest portion
	mutated := []byte(hash)
	last := len(mutated) - 1
	if mutated[last] == 'a' {
		mutated[last] = 'b'
	} else {
		mutated[last] = 'a'
	}
	require.Error(t, ComparePassword(string(mutated), "s3cret-pass"))
}

func TestComparePasswordMalformedHash(t *testing.T) {
	require.Error(t, ComparePassword("not-a-bcrypt-hash", "anything"))
	require.Error(t, ComparePassword("", "anything"))
}

func TestHashPasswordEmbedsSalt(t *testing.T) {
	first, err := HashPassword("same-input", 4)
	require.NoError(t, err)
	second, err := HashPassword("same-input", 4)
	require.NoError(t, err)

	// distinct salts produce distinct hashes, both verifiable
	require.NotEqual(t, first, second)
	require.NoError(t, ComparePassword(first, "same-input"))
	require.NoError(t, ComparePassword(second, "same-input"))
}
