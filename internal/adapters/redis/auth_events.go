package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"

	domainauth "github.com/makka/storefront-api/internal/domain/auth"
)

const authEventsChannel = "auth:events"

// AuthEventBus broadcasts auth-state changes over Redis pub/sub so that every
// process invalidates cached identities at the same time.
type AuthEventBus struct {
	client  redis.UniversalClient
	channel string
	logger  *slog.Logger

	mu   sync.Mutex
	subs map[*redis.PubSub]chan struct{}
}

// NewAuthEventBus creates a pub/sub backed auth event bus.
func NewAuthEventBus(client redis.UniversalClient, logger *slog.Logger) *AuthEventBus {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthEventBus{
		client:  client,
		channel: authEventsChannel,
		logger:  logger,
		subs:    make(map[*redis.PubSub]chan struct{}),
	}
}

// Publish sends the event to every subscriber across processes.
func (b *AuthEventBus) Publish(ctx context.Context, event domainauth.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal auth event: %w", err)
	}
	if err := b.client.Publish(ctx, b.channel, data).Err(); err != nil {
		return fmt.Errorf("publish auth event: %w", err)
	}
	return nil
}

// Subscribe registers a handler for auth events. The handler runs on a
// dedicated goroutine; the returned function unsubscribes and waits for that
// goroutine to drain.
func (b *AuthEventBus) Subscribe(ctx context.Context, handler func(domainauth.Event)) (func(), error) {
	pubsub := b.client.Subscribe(ctx, b.channel)

	// Force the subscription to be established before returning so callers
	// never miss events published right after Subscribe.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("subscribe auth events: %w", err)
	}

	done := make(chan struct{})
	b.mu.Lock()
	b.subs[pubsub] = done
	b.mu.Unlock()

	go func() {
		defer close(done)
		for msg := range pubsub.Channel() {
			var event domainauth.Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				b.logger.Error("decode auth event", "error", err)
				continue
			}
			handler(event)
		}
	}()

	unsubscribe := func() {
		b.mu.Lock()
		done, ok := b.subs[pubsub]
		if ok {
			delete(b.subs, pubsub)
		}
		b.mu.Unlock()
		if !ok {
			return
		}
		if err := pubsub.Close(); err != nil {
			b.logger.Error("close auth event subscription", "error", err)
		}
		<-done
	}

	return unsubscribe, nil
}

// Close unsubscribes every remaining subscriber.
func (b *AuthEventBus) Close() {
	b.mu.Lock()
	subs := make([]*redis.PubSub, 0, len(b.subs))
	chans := make([]chan struct{}, 0, len(b.subs))
	for ps, done := range b.subs {
		subs = append(subs, ps)
		chans = append(chans, done)
	}
	b.subs = make(map[*redis.PubSub]chan struct{})
	b.mu.Unlock()

	for _, ps := range subs {
		_ = ps.Close()
	}
	for _, done := range chans {
		<-done
	}
}
