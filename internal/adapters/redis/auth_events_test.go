package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/makka/storefront-api/internal/domain/auth"
)

func TestAuthEventBus_PublishSubscribe(t *testing.T) {
	client := setupTestRedis(t)

	bus := NewAuthEventBus(client, nil)
	defer bus.Close()

	ctx := context.Background()
	received := make(chan domainauth.Event, 1)

	unsubscribe, err := bus.Subscribe(ctx, func(ev domainauth.Event) {
		received <- ev
	})
	require.NoError(t, err)
	defer unsubscribe()

	event := domainauth.Event{
		Kind:      domainauth.EventSignedOut,
		UserID:    "user-123",
		SessionID: "sess-1",
		At:        time.Now().UTC(),
	}
	require.NoError(t, bus.Publish(ctx, event))

	select {
	case got := <-received:
		assert.Equal(t, domainauth.EventSignedOut, got.Kind)
		assert.Equal(t, "user-123", got.UserID)
		assert.Equal(t, "sess-1", got.SessionID)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for auth event")
	}
}

func TestAuthEventBus_UnsubscribeStopsDelivery(t *testing.T) {
	client := setupTestRedis(t)

	bus := NewAuthEventBus(client, nil)
	defer bus.Close()

	ctx := context.Background()
	received := make(chan domainauth.Event, 4)

	unsubscribe, err := bus.Subscribe(ctx, func(ev domainauth.Event) {
		received <- ev
	})
	require.NoError(t, err)

	unsubscribe()
	// Unsubscribe is idempotent.
	unsubscribe()

	require.NoError(t, bus.Publish(ctx, domainauth.Event{Kind: domainauth.EventSignedIn, UserID: "u"}))

	select {
	case <-received:
		t.Fatal("received event after unsubscribe")
	case <-time.After(200 * time.Millisecond):
	}
}
