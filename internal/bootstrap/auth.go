package bootstrap

import (
	"log/slog"

	"github.com/makka/storefront-api/config"
	"github.com/makka/storefront-api/internal/adapters/devauth"
	"github.com/makka/storefront-api/internal/adapters/oidc"
	"github.com/makka/storefront-api/internal/adapters/passwordauth"
	"github.com/makka/storefront-api/internal/ports"
	"github.com/makka/storefront-api/internal/service"
)

// AuthConfig contains configuration for auth service.
type AuthConfig struct {
	Auth        config.AuthConfig
	Sessions    ports.SessionStore
	Credentials passwordauth.CredentialStore
	Profiles    service.ProfileStore
	Identity    *service.IdentityService
	Events      ports.AuthEventBus
	Logger      *slog.Logger
}

// BuildAuthService creates an auth service based on the configured auth mode.
// Returns nil if auth is not configured or configuration is invalid.
func BuildAuthService(cfg AuthConfig) *service.AuthService {
	if cfg.Sessions == nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("auth service disabled: session store not configured", "mode", cfg.Auth.Mode)
		}
		return nil
	}

	switch cfg.Auth.Mode {
	case config.AuthModePassword:
		return buildPasswordAuthService(cfg)

	case config.AuthModeOAuth:
		return buildOAuthService(cfg)

	case config.AuthModeMock:
		return buildDevAuthService(cfg)

	default:
		return nil
	}
}

func buildPasswordAuthService(cfg AuthConfig) *service.AuthService {
	if cfg.Credentials == nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("AuthModePassword selected but credential store missing; auth disabled")
		}
		return nil
	}

	prov, err := passwordauth.NewProvider(passwordauth.ProviderOptions{
		Store:           cfg.Credentials,
		BcryptCost:      cfg.Auth.BcryptCost,
		SessionDuration: cfg.Auth.SessionDuration,
	})
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("failed to create password auth provider, auth disabled", "error", err)
		}
		return nil
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Passwords: prov,
		Sessions:  cfg.Sessions,
		Profiles:  cfg.Profiles,
		Identity:  cfg.Identity,
		Events:    cfg.Events,
		Logger:    cfg.Logger,
	})
}

func buildOAuthService(cfg AuthConfig) *service.AuthService {
	// Only enable when fully configured
	oauth := cfg.Auth.OAuth
	if oauth.DiscoveryURL == "" || oauth.ClientID == "" || oauth.ClientSecret == "" {
		if cfg.Logger != nil {
			cfg.Logger.Warn("AuthModeOAuth selected but required config missing; auth disabled",
				"discovery_url_empty", oauth.DiscoveryURL == "",
				"client_id_empty", oauth.ClientID == "",
				"client_secret_empty", oauth.ClientSecret == "",
			)
		}
		return nil
	}

	prov, err := oidc.NewProvider(oidc.ProviderConfig{
		ClientID:     oauth.ClientID,
		ClientSecret: oauth.ClientSecret,
		RedirectURL:  oauth.RedirectURL,
		Scope:        oauth.Scope,
		DiscoveryURL: oauth.DiscoveryURL,
		LogoutURL:    oauth.LogoutURL,
	})
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("failed to create OIDC provider, auth disabled", "error", err)
		}
		return nil
	}

	return service.NewAuthService(service.AuthServiceOptions{
		OAuth:    prov,
		Sessions: cfg.Sessions,
		Profiles: cfg.Profiles,
		Identity: cfg.Identity,
		Events:   cfg.Events,
		Logger:   cfg.Logger,
	})
}

func buildDevAuthService(cfg AuthConfig) *service.AuthService {
	// Explicitly enabled dev auth mode; build a local provider that serves
	// both the password and the OAuth flows.
	prov, err := devauth.NewProvider(devauth.Config{
		UserID:          cfg.Auth.DevAuth.UserID,
		Email:           cfg.Auth.DevAuth.Email,
		FullName:        cfg.Auth.DevAuth.Name,
		SessionDuration: cfg.Auth.SessionDuration,
	})
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("failed to create dev auth provider, auth disabled", "error", err)
		}
		return nil
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Passwords: prov,
		OAuth:     prov,
		Sessions:  cfg.Sessions,
		Profiles:  cfg.Profiles,
		Identity:  cfg.Identity,
		Events:    cfg.Events,
		Logger:    cfg.Logger,
	})
}
