package repositories

import (
	"context"
	"time"

	"github.com/antu41/ECommerceInventory/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by their email (the login key).
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByRefreshTokenHash retrieves the user whose stored refresh token
	// digest matches and has not expired. Expired matches return ErrNotFound.
	FindUserByRefreshTokenHash(ctx context.Context, refreshTokenHash string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. A duplicate email returns ErrUserAlreadyExists.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateRefreshToken unconditionally replaces the stored refresh token
	// digest and expiry for a user (used on login and registration).
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiry time.Time) error

	// RotateRefreshToken atomically replaces the stored refresh token digest,
	// but only if it still equals oldHash and has not expired. This is a single
	// conditional update: when two calls race on the same presented token,
	// exactly one wins and the other gets ErrNotFound.
	RotateRefreshToken(ctx context.Context, oldHash string, newHash string, expiry time.Time) (*domain.User, error)
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
