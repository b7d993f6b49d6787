package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrlite/crm-backend-go/internal/domain/user"
)

func TestStore_CreateAndGet(t *testing.T) {
	store := NewStore()

	sess := store.Create(user.User{ID: 1, Username: "admin"})
	require.NotEmpty(t, sess.Token)

	got, ok := store.Get(sess.Token)
	require.True(t, ok)
	assert.Equal(t, "admin", got.User.Username)
}

func TestStore_TokensAreUnique(t *testing.T) {
	store := NewStore()

	a := store.Create(user.User{ID: 1, Username: "admin"})
	b := store.Create(user.User{ID: 1, Username: "admin"})
	assert.NotEqual(t, a.Token, b.Token)
}

func TestStore_Delete(t *testing.T) {
	store := NewStore()

	sess := store.Create(user.User{ID: 1, Username: "admin"})
	store.Delete(sess.Token)

	_, ok := store.Get(sess.Token)
	assert.False(t, ok)

	// Unknown tokens delete silently.
	store.Delete("not-a-token")
}

func TestStore_GetUnknownToken(t *testing.T) {
	store := NewStore()

	_, ok := store.Get("missing")
	assert.False(t, ok)
}
