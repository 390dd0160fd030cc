package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify_RoundTrip(t *testing.T) {
	hash, err := Hash("mySecret9")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "mySecret9", hash)

	assert.True(t, Verify("mySecret9", hash))
	assert.False(t, Verify("mySecret8", hash))
	assert.False(t, Verify("", hash))
}

func TestHash_UniqueSaltPerCall(t *testing.T) {
	first, err := Hash("123456")
	require.NoError(t, err)
	second, err := Hash("123456")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, Verify("123456", first))
	assert.True(t, Verify("123456", second))
}

func TestVerify_MalformedHash(t *testing.T) {
	cases := []string{"", "not-a-bcrypt-hash", "$2a$broken"}
	for _, hash := range cases {
		assert.False(t, Verify("123456", hash))
	}
}
