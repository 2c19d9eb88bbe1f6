package auth

import "time"

// EventKind distinguishes auth-state changes.
type EventKind string

const (
	EventSignedIn  EventKind = "SIGNED_IN"
	EventSignedOut EventKind = "SIGNED_OUT"
	// EventRoleChanged covers super-admin actions that alter a user's
	// authorization: role promotion and store-admin grant changes.
	EventRoleChanged EventKind = "ROLE_CHANGED"
)

// Event is broadcast whenever a user's auth state changes. Subscribers use it
// to invalidate or refresh cached identities.
type Event struct {
	Kind      EventKind `json:"kind"`
	UserID    string    `json:"user_id"`
	SessionID string    `json:"session_id,omitempty"`
	At        time.Time `json:"at"`
}
