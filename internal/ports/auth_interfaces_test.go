package ports_test

import (
	"testing"

	mocks "github.com/makka/storefront-api/internal/mocks/auth"
	"github.com/makka/storefront-api/internal/ports"
)

// This test only verifies that our mocks conform to the ports at compile time.
func TestMocksImplementPorts(t *testing.T) {
	t.Helper()

	var _ ports.PasswordProvider = (*mocks.MockPasswordProvider)(nil)
	var _ ports.OAuthProvider = (*mocks.MockOAuthProvider)(nil)
	var _ ports.SessionStore = (*mocks.MemorySessionStore)(nil)
	var _ ports.AuthEventBus = (*mocks.MemoryEventBus)(nil)
}
