package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/makka/storefront-api/internal/data"
	domainauth "github.com/makka/storefront-api/internal/domain/auth"
	"github.com/makka/storefront-api/internal/ports"
)

// ProfileReader fetches the profile for a user.
type ProfileReader interface {
	GetByID(ctx context.Context, id string) (*domainauth.Profile, error)
}

// StoreAdminReader fetches the store-admin grant for a user.
type StoreAdminReader interface {
	GetByUserID(ctx context.Context, userID string) (*domainauth.StoreAdmin, error)
}

// IdentityServiceOptions groups dependencies for IdentityService.
type IdentityServiceOptions struct {
	Sessions    ports.SessionStore
	Profiles    ProfileReader
	StoreAdmins StoreAdminReader
	Events      ports.AuthEventBus // optional; enables cross-process cache invalidation
	Logger      *slog.Logger
	CacheTTL    time.Duration // default 30s when zero
}

// IdentityService resolves the full Identity (session + profile + store-admin
// grant) for a request. Profile and grant are fetched concurrently and the
// results cached per user; auth events drop cache entries so role changes on
// other processes take effect promptly.
type IdentityService struct {
	sessions    ports.SessionStore
	profiles    ProfileReader
	storeAdmins StoreAdminReader
	events      ports.AuthEventBus
	logger      *slog.Logger
	cacheTTL    time.Duration

	mu          sync.Mutex
	cache       map[string]cachedIdentity
	unsubscribe func()
}

type cachedIdentity struct {
	profile    *domainauth.Profile
	storeAdmin *domainauth.StoreAdmin
	expiresAt  time.Time
}

// NewIdentityService constructs a new IdentityService.
func NewIdentityService(opts IdentityServiceOptions) *IdentityService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	ttl := opts.CacheTTL
	if ttl == 0 {
		ttl = 30 * time.Second
	}
	return &IdentityService{
		sessions:    opts.Sessions,
		profiles:    opts.Profiles,
		storeAdmins: opts.StoreAdmins,
		events:      opts.Events,
		logger:      logger,
		cacheTTL:    ttl,
		cache:       make(map[string]cachedIdentity),
	}
}

// Start subscribes to auth events for cache invalidation. Safe to skip when
// no event bus is configured.
func (s *IdentityService) Start(ctx context.Context) error {
	if s.events == nil {
		return nil
	}
	unsubscribe, err := s.events.Subscribe(ctx, func(ev domainauth.Event) {
		s.Invalidate(ev.UserID)
	})
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.unsubscribe = unsubscribe
	s.mu.Unlock()
	return nil
}

// Stop releases the auth event subscription.
func (s *IdentityService) Stop() {
	s.mu.Lock()
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()
	if unsubscribe != nil {
		unsubscribe()
	}
}

// Invalidate drops the cached identity for a user.
func (s *IdentityService) Invalidate(userID string) {
	if userID == "" {
		return
	}
	s.mu.Lock()
	delete(s.cache, userID)
	s.mu.Unlock()
}

// Resolve produces the Identity for a session ID. A missing or expired
// session yields an unauthenticated identity, not an error. Profile and
// store-admin fetches run concurrently; a failed fetch (other than not-found)
// is logged and treated as absence so the user keeps default customer
// treatment rather than being locked out.
func (s *IdentityService) Resolve(ctx context.Context, sessionID string) (domainauth.Identity, error) {
	if sessionID == "" {
		return domainauth.Identity{}, nil
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domainauth.Identity{Loading: true}, ctxErr
		}
		// Treat lookup failures as signed-out; the session store logs its own errors.
		return domainauth.Identity{}, nil
	}
	if session.Expired() {
		return domainauth.Identity{}, nil
	}

	profile, storeAdmin, err := s.resolveGrants(ctx, session.UserID)
	if err != nil {
		// Only context cancellation surfaces here; report it as still-loading.
		return domainauth.Identity{Session: &session, Loading: true}, err
	}

	return domainauth.Identity{
		Session:    &session,
		Profile:    profile,
		StoreAdmin: storeAdmin,
	}, nil
}

func (s *IdentityService) resolveGrants(
	ctx context.Context,
	userID string,
) (*domainauth.Profile, *domainauth.StoreAdmin, error) {
	s.mu.Lock()
	if entry, ok := s.cache[userID]; ok && time.Now().Before(entry.expiresAt) {
		s.mu.Unlock()
		return entry.profile, entry.storeAdmin, nil
	}
	s.mu.Unlock()

	var (
		profile    *domainauth.Profile
		storeAdmin *domainauth.StoreAdmin
	)

	// Both fetches settle before the identity is considered resolved.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.profiles.GetByID(gctx, userID)
		if err != nil {
			if errors.Is(err, data.ErrProfileNotFound) {
				return nil
			}
			if gctx.Err() != nil {
				return gctx.Err()
			}
			s.logger.ErrorContext(gctx, "profile fetch failed; treating as absent",
				"user_id", userID, "error", err)
			return nil
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		sa, err := s.storeAdmins.GetByUserID(gctx, userID)
		if err != nil {
			if errors.Is(err, data.ErrStoreAdminNotFound) {
				return nil
			}
			if gctx.Err() != nil {
				return gctx.Err()
			}
			s.logger.ErrorContext(gctx, "store admin fetch failed; treating as absent",
				"user_id", userID, "error", err)
			return nil
		}
		storeAdmin = sa
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	s.mu.Lock()
	s.cache[userID] = cachedIdentity{
		profile:    profile,
		storeAdmin: storeAdmin,
		expiresAt:  time.Now().Add(s.cacheTTL),
	}
	s.mu.Unlock()

	return profile, storeAdmin, nil
}
