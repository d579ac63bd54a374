package businessflow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore(time.Minute)

	t.Run("absent session is nil", func(t *testing.T) {
		session, err := store.Get(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("put then get", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, &BrowseSession{UserID: 1, State: StateAwaitingPeriod}))

		session, err := store.Get(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, StateAwaitingPeriod, session.State)
	})

	t.Run("delete removes the session", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, 1))

		session, err := store.Get(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, session)
	})
}

func TestMemorySessionStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore(20 * time.Millisecond)

	require.NoError(t, store.Put(ctx, &BrowseSession{UserID: 7, State: StateAwaitingSelection}))
	time.Sleep(60 * time.Millisecond)

	session, err := store.Get(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, session, "expired session must read as absent")
}
