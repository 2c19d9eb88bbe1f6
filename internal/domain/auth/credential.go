package auth

import "time"

// Credential is a first-party login record (email + bcrypt hash).
type Credential struct {
	UserID       string    `json:"user_id"       db:"user_id"`
	Email        string    `json:"email"         db:"email"`
	PasswordHash string    `json:"-"             db:"password_hash"`
	CreatedAt    time.Time `json:"created_at"    db:"created_at"`
}
