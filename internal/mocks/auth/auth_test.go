package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/makka/storefront-api/internal/domain/auth"
)

func TestMemorySessionStore(t *testing.T) {
	t.Parallel()

	store := NewMemorySessionStore()
	ctx := context.Background()

	sess := domainauth.Session{ID: "s1", UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	assert.Equal(t, ErrNotFound, err)
}

func TestMemoryEventBus(t *testing.T) {
	t.Parallel()

	bus := NewMemoryEventBus()
	ctx := context.Background()

	var seen []domainauth.Event
	unsubscribe, err := bus.Subscribe(ctx, func(ev domainauth.Event) {
		seen = append(seen, ev)
	})
	require.NoError(t, err)

	require.NoError(t, bus.Publish(ctx, domainauth.Event{Kind: domainauth.EventSignedIn, UserID: "u1"}))
	require.Len(t, seen, 1)

	unsubscribe()
	require.NoError(t, bus.Publish(ctx, domainauth.Event{Kind: domainauth.EventSignedOut, UserID: "u1"}))
	assert.Len(t, seen, 1, "no delivery after unsubscribe")
	assert.Len(t, bus.Published, 2)
}
