package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMode_UnmarshalText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    AuthMode
		wantErr bool
	}{
		{"password", AuthModePassword, false},
		{"OAUTH", AuthModeOAuth, false},
		{"Mock", AuthModeMock, false},
		{"ldap", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		var mode AuthMode
		err := mode.UnmarshalText([]byte(tt.input))
		if tt.wantErr {
			require.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, mode)
	}
}

func TestAuthConfig_Sanitize(t *testing.T) {
	t.Parallel()

	cfg := AuthConfig{SessionDuration: -time.Hour, BcryptCost: 4}
	cfg.Sanitize()
	assert.Equal(t, 24*time.Hour, cfg.SessionDuration)
	assert.Equal(t, 10, cfg.BcryptCost)

	cfg = AuthConfig{SessionDuration: time.Hour, BcryptCost: 31}
	cfg.Sanitize()
	assert.Equal(t, time.Hour, cfg.SessionDuration)
	assert.Equal(t, 16, cfg.BcryptCost)
}

func TestStorageConfig_Sanitize(t *testing.T) {
	t.Parallel()

	cfg := StorageConfig{
		PublicBaseURL:  " https://cdn.example.com/storage/v1/object/public/ ",
		ProductsBucket: "/products/",
	}
	cfg.Sanitize()
	assert.Equal(t, "https://cdn.example.com/storage/v1/object/public", cfg.PublicBaseURL)
	assert.Equal(t, "products", cfg.ProductsBucket)
	assert.Equal(t, "/placeholder.svg", cfg.PlaceholderPath)
}

func TestAppConfig_Sanitize_DetectsDevMode(t *testing.T) {
	t.Setenv("NODE_ENV", "development")

	cfg := AppConfig{}
	cfg.Sanitize()
	assert.True(t, cfg.IsDev)
}
