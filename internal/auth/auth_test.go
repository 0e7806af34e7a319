package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	assert.True(t, CheckPassword("correct horse", hash))
	assert.False(t, CheckPassword("wrong horse", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	SetSecret("test-secret")
	t.Cleanup(func() { SetSecret("") })

	tok, err := IssueToken("user-123")
	require.NoError(t, err)

	uid, err := ParseToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", uid)
}

func TestTokenRejectsGarbage(t *testing.T) {
	SetSecret("test-secret")
	t.Cleanup(func() { SetSecret("") })

	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestTokenRequiresSecret(t *testing.T) {
	SetSecret("")
	_, err := IssueToken("user-123")
	assert.Error(t, err)
	_, err = ParseToken("whatever")
	assert.Error(t, err)
}
