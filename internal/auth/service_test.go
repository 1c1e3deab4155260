package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyanshi012/studio/internal/session"
)

func newTestService() (*Service, *session.MemoryStore) {
	store := session.NewMemoryStore()
	return NewServiceWithDelay(store, 0), store
}

func TestLogin_AlwaysSucceedsRegardlessOfPassword(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for _, password := range []string{"secret1", "", "anything at all"} {
		user, err := svc.Login(ctx, "s1", "a@b.com", password)

		require.NoError(t, err)
		assert.Equal(t, "a@b.com", user.Email)
		assert.True(t, strings.HasPrefix(user.ID, "mock-user-id-"))
		assert.Equal(t, "John Doe", user.Name)
	}
}

func TestSignup_UsesSuppliedName(t *testing.T) {
	svc, _ := newTestService()

	user, err := svc.Signup(context.Background(), "s1", "new@shop.wave", "pw", "Ada")

	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "new@shop.wave", user.Email)
}

func TestCurrentUser_HydratesPersistedSession(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	logged, err := svc.Login(ctx, "s1", "a@b.com", "pw")
	require.NoError(t, err)

	user, ok, err := svc.CurrentUser(ctx, "s1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, logged, user)
}

func TestCurrentUser_NoSession(t *testing.T) {
	svc, _ := newTestService()

	_, ok, err := svc.CurrentUser(context.Background(), "s1")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCurrentUser_MalformedSessionDiscarded(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "s1", session.KeyUser, []byte(`%%%`)))

	_, ok, err := svc.CurrentUser(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, ok)

	// The corrupt value is gone, not just skipped
	_, err = store.Get(ctx, "s1", session.KeyUser)
	assert.ErrorIs(t, err, session.ErrKeyNotFound)
}

func TestLogout_ClearsSession(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Login(ctx, "s1", "a@b.com", "pw")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, "s1"))

	_, ok, err := svc.CurrentUser(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLogin_CancelledContextAborts(t *testing.T) {
	svc := NewServiceWithDelay(session.NewMemoryStore(), 5*time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Login(ctx, "s1", "a@b.com", "pw")

	assert.ErrorIs(t, err, context.Canceled)
}
