package services

import (
	"context"
	"fmt"
	"time"

	"github.com/antu41/ECommerceInventory/internal/core/domain"
	portssvc "github.com/antu41/ECommerceInventory/internal/core/ports/services"
	"github.com/antu41/ECommerceInventory/internal/platform/config"
	"github.com/antu41/ECommerceInventory/internal/utils"
)

// refreshTokenBytes is the entropy of a refresh token: 32 bytes = 256 bits,
// hex-encoded to a 64-character string.
const refreshTokenBytes = 32

// tokenService implements TokenSvcFacade. The signing key, issuer, audience and
// TTLs are fixed at construction; nothing is read from ambient configuration at
// call time.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new signed JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, user.Email, s.cfg.JWTSecret, s.cfg.JWTIssuer, s.cfg.JWTAudience, s.cfg.JWTExpiryDuration)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return accessToken, expiryTime, nil
}

// GenerateRefreshToken creates a new opaque refresh token and its expiry.
// Stateless: persisting the token is the caller's job.
func (s *tokenService) GenerateRefreshToken(ctx context.Context) (string, time.Time, error) {
	rawRefreshToken, err := utils.GenerateSecureRandomString(refreshTokenBytes)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	expiryTime := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)

	return rawRefreshToken, expiryTime, nil
}
