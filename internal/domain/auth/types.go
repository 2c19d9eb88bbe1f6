package auth

// Package auth contains domain-level types for authentication and
// authorization. It is pure and free of framework/adapter concerns.

import (
	"fmt"
	"strings"
	"time"
)

// Role represents an application's authorization role.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below.
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleCustomer   Role = "CUSTOMER"
)

// Valid reports whether the role is one of the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleCustomer:
		return true
	default:
		return false
	}
}

// ParseRole converts a wire string into a Role, rejecting unknown values.
func ParseRole(value string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(value)))
	if !r.Valid() {
		return "", fmt.Errorf("invalid role %q", value)
	}
	return r, nil
}

// Account represents the authenticated principal returned by an identity
// provider. Adapters map provider-specific claims into this shape.
type Account struct {
	UserID    string // stable user identifier (uuid or sub claim)
	Email     string
	FullName  string
	Phone     string
	ExpiresAt time.Time // absolute expiry from the provider
}

// Session is the server-side record we persist for an authenticated user.
// ID is an opaque session identifier (e.g., random URL-safe string).
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session has passed its expiry.
func (s Session) Expired() bool { return time.Now().After(s.ExpiresAt) }

// Profile is the per-user application record holding the global role.
// Created at registration; role/store assignment change only through
// super-admin action.
type Profile struct {
	ID        string    `json:"id"         db:"id"`
	Role      Role      `json:"role"       db:"role"`
	StoreID   *string   `json:"store_id"   db:"store_id"`
	FullName  *string   `json:"full_name"  db:"full_name"`
	Phone     *string   `json:"phone"      db:"phone"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// StoreAdmin grants a user administrative rights over one specific store.
// Presence of the record is the sole source of store-admin capability,
// independent of Profile.Role. At most one record exists per user.
type StoreAdmin struct {
	ID        string    `json:"id"         db:"id"`
	StoreID   string    `json:"store_id"   db:"store_id"`
	UserID    string    `json:"user_id"    db:"user_id"`
	Role      string    `json:"role"       db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
