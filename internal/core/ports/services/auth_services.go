package services

import (
	"context"
	"time"

	"github.com/antu41/ECommerceInventory/internal/core/domain"
	"github.com/antu41/ECommerceInventory/internal/dto"
)

// TokenSvcFacade defines the interface for token issuance. It is stateless:
// nothing here touches storage.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT carrying the user's identity
	// claims, returning the token and its expiry.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates an opaque random refresh token and its expiry.
	GenerateRefreshToken(ctx context.Context) (string, time.Time, error)
}

// AuthSvcFacade defines the authentication operations exposed to the HTTP layer.
type AuthSvcFacade interface {
	// Register creates a new account and issues its first token pair.
	// Fails with apperrors.ErrUserAlreadyExists when the email is taken.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.TokenPair, error)

	// Login verifies credentials and issues a fresh token pair, replacing any
	// previously stored refresh token. Fails with apperrors.ErrInvalidCredentials
	// for both an unknown email and a wrong password.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.TokenPair, error)

	// Refresh exchanges a valid refresh token for a fresh pair, rotating the
	// stored token so the presented one is single-use. Fails with
	// apperrors.ErrInvalidRefreshToken when no matching unexpired token exists.
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
}
