package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/antu41/ECommerceInventory/internal/apperrors"
	"github.com/antu41/ECommerceInventory/internal/core/domain"
	portsrepo "github.com/antu41/ECommerceInventory/internal/core/ports/repositories"
	portssvc "github.com/antu41/ECommerceInventory/internal/core/ports/services"
	"github.com/antu41/ECommerceInventory/internal/dto"
	"github.com/antu41/ECommerceInventory/internal/utils"
)

// authService implements AuthSvcFacade: it orchestrates the credential store,
// the password hasher and the token issuer. It holds no mutable state, so one
// instance is safe for concurrent use.
type authService struct {
	userRepo portsrepo.UserRepositoryFacade
	tokenSvc portssvc.TokenSvcFacade

	// dummyPasswordHash is compared against when login hits an unknown email,
	// so that path costs a bcrypt verification just like a wrong password does.
	dummyPasswordHash string
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, tokenSvc portssvc.TokenSvcFacade) (portssvc.AuthSvcFacade, error) {
	random, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return nil, fmt.Errorf("failed to seed dummy password hash: %w", err)
	}
	dummyHash, err := utils.HashPassword(random)
	if err != nil {
		return nil, fmt.Errorf("failed to create dummy password hash: %w", err)
	}

	return &authService{
		userRepo:          userRepo,
		tokenSvc:          tokenSvc,
		dummyPasswordHash: dummyHash,
	}, nil
}

// Register creates a new user with a hashed password and issues the first token pair.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.TokenPair, error) {
	existing, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserAlreadyExists
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	// SaveUser maps a unique-violation to ErrUserAlreadyExists, which also
	// covers two registrations racing past the lookup above.
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	return s.issueTokenPair(ctx, &user)
}

// Login verifies the email/password pair and issues a fresh token pair,
// overwriting any previously stored refresh token.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*domain.TokenPair, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Burn a bcrypt verification so unknown-email and wrong-password
			// responses take comparable time.
			utils.CheckPasswordHash(req.Password, s.dummyPasswordHash)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokenPair(ctx, user)
}

// Refresh exchanges a valid refresh token for a fresh pair. The stored token is
// replaced in the same conditional update that matches it, so the presented
// token is single-use: a replay (or the loser of two racing calls) gets
// ErrInvalidRefreshToken.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	newRefreshToken, expiry, err := s.tokenSvc.GenerateRefreshToken(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.RotateRefreshToken(ctx,
		utils.HashRefreshToken(refreshToken),
		utils.HashRefreshToken(newRefreshToken),
		expiry,
	)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	accessToken, _, err := s.tokenSvc.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, err
	}

	return &domain.TokenPair{AccessToken: accessToken, RefreshToken: newRefreshToken}, nil
}

// issueTokenPair generates a fresh pair and persists the refresh token digest
// before returning, replacing whatever token was stored (the rotation point for
// register and login).
func (s *authService) issueTokenPair(ctx context.Context, user *domain.User) (*domain.TokenPair, error) {
	accessToken, _, err := s.tokenSvc.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, err
	}

	refreshToken, expiry, err := s.tokenSvc.GenerateRefreshToken(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateRefreshToken(ctx, user.UserID, utils.HashRefreshToken(refreshToken), expiry); err != nil {
		return nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return &domain.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
