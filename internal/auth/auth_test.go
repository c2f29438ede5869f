package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestStaticChecker_Plaintext(t *testing.T) {
	checker := NewStaticChecker("admin", "1234")

	assert.True(t, checker.Verify("admin", "1234"))
	assert.False(t, checker.Verify("admin", "wrong"))
	assert.False(t, checker.Verify("operator", "1234"))
}

func TestStaticChecker_BcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	checker := NewStaticChecker("admin", string(hash))

	assert.True(t, checker.Verify("admin", "s3cret"))
	assert.False(t, checker.Verify("admin", "1234"))
	// сам хеш как пароль не подходит
	assert.False(t, checker.Verify("admin", string(hash)))
}

func TestSessionStore(t *testing.T) {
	store := NewSessionStore()

	token := store.Create("admin")
	require.NotEmpty(t, token)

	username, ok := store.Username(token)
	assert.True(t, ok)
	assert.Equal(t, "admin", username)

	// второй токен не пересекается с первым
	token2 := store.Create("admin")
	assert.NotEqual(t, token, token2)

	store.Revoke(token)
	_, ok = store.Username(token)
	assert.False(t, ok)

	_, ok = store.Username(token2)
	assert.True(t, ok)
}

func TestSessionStore_UnknownToken(t *testing.T) {
	store := NewSessionStore()

	_, ok := store.Username("no-such-token")
	assert.False(t, ok)
}
