package domain

import "time"

// User represents a registered user of the inventory API.
// Email is the login key and is unique across users.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // bcrypt hash, never the plaintext password

	// Refresh token state. At most one refresh token is live per user: every
	// successful login or refresh overwrites the stored pair (rotation).
	// The stored value is a SHA-256 digest of the issued token, never the raw token.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`

	AuditFields
}

// HasValidRefreshToken reports whether the user currently holds an unexpired
// refresh token. An expired-but-still-stored token counts as absent.
func (u *User) HasValidRefreshToken(now time.Time) bool {
	return u.RefreshTokenHash != "" && u.RefreshTokenExpiryTime != nil && u.RefreshTokenExpiryTime.After(now)
}
