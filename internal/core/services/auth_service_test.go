package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/antu41/ECommerceInventory/internal/apperrors"
	"github.com/antu41/ECommerceInventory/internal/core/domain"
	portssvc "github.com/antu41/ECommerceInventory/internal/core/ports/services"
	"github.com/antu41/ECommerceInventory/internal/core/services"
	"github.com/antu41/ECommerceInventory/internal/dto"
	"github.com/antu41/ECommerceInventory/internal/platform/config"
	"github.com/antu41/ECommerceInventory/internal/utils"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
	FindUserByIDFn               func(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmailFn            func(ctx context.Context, email string) (*domain.User, error)
	FindUserByRefreshTokenHashFn func(ctx context.Context, refreshTokenHash string) (*domain.User, error)
	SaveUserFn                   func(ctx context.Context, user domain.User) error
	UpdateRefreshTokenFn         func(ctx context.Context, userID string, refreshTokenHash string, expiry time.Time) error
	RotateRefreshTokenFn         func(ctx context.Context, oldHash string, newHash string, expiry time.Time) (*domain.User, error)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindUserByEmailFn != nil {
		return m.FindUserByEmailFn(ctx, email)
	}
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByRefreshTokenHash(ctx context.Context, refreshTokenHash string) (*domain.User, error) {
	if m.FindUserByRefreshTokenHashFn != nil {
		return m.FindUserByRefreshTokenHashFn(ctx, refreshTokenHash)
	}
	args := m.Called(ctx, refreshTokenHash)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	if m.SaveUserFn != nil {
		return m.SaveUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiry time.Time) error {
	if m.UpdateRefreshTokenFn != nil {
		return m.UpdateRefreshTokenFn(ctx, userID, refreshTokenHash, expiry)
	}
	args := m.Called(ctx, userID, refreshTokenHash, expiry)
	return args.Error(0)
}

func (m *MockUserRepository) RotateRefreshToken(ctx context.Context, oldHash string, newHash string, expiry time.Time) (*domain.User, error) {
	if m.RotateRefreshTokenFn != nil {
		return m.RotateRefreshTokenFn(ctx, oldHash, newHash, expiry)
	}
	args := m.Called(ctx, oldHash, newHash, expiry)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:                  "test-secret-key-for-auth-service-tests",
		JWTIssuer:                  "ecommerce-inventory-api",
		JWTAudience:                "ecommerce-inventory-clients",
		JWTExpiryDuration:          15 * time.Minute,
		RefreshTokenExpiryDuration: 7 * 24 * time.Hour,
	}
}

// --- Test Suite ---
type AuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	cfg          *config.Config
	service      portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.cfg = testConfig()
	tokenSvc := services.NewTokenService(suite.cfg)
	service, err := services.NewAuthService(suite.mockUserRepo, tokenSvc)
	suite.Require().NoError(err)
	suite.service = service
}

// --- Register Tests ---

func (suite *AuthServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Username: "newuser",
		Email:    "new@example.com",
		Password: "password123",
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == req.Email &&
			user.Username == req.Username &&
			user.PasswordHash != req.Password &&
			utils.CheckPasswordHash(req.Password, user.PasswordHash)
	})).Return(nil).Once()
	suite.mockUserRepo.On("UpdateRefreshToken", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil).Once()

	pair, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(pair)
	suite.NotEmpty(pair.AccessToken)
	suite.NotEmpty(pair.RefreshToken)

	claims, err := utils.ParseAndValidateJWT(pair.AccessToken, suite.cfg.JWTSecret, suite.cfg.JWTIssuer, suite.cfg.JWTAudience)
	suite.Require().NoError(err)
	suite.Equal(req.Email, claims.Email)
	suite.NotEmpty(claims.Subject)

	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegister_EmailTaken() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Username: "dupe",
		Email:    "taken@example.com",
		Password: "password123",
	}
	existing := &domain.User{UserID: uuid.NewString(), Email: req.Email}

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(existing, nil).Once()

	pair, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Nil(pair)
	suite.ErrorIs(err, apperrors.ErrUserAlreadyExists)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegister_DuplicateRace() {
	// Two registrations race past the existence check: the second insert hits
	// the unique constraint and the repo reports ErrUserAlreadyExists.
	ctx := context.Background()
	req := dto.RegisterRequest{
		Username: "racer",
		Email:    "race@example.com",
		Password: "password123",
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrUserAlreadyExists).Once()

	pair, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Nil(pair)
	suite.ErrorIs(err, apperrors.ErrUserAlreadyExists)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- Login Tests ---

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	password := "correct-password"
	passwordHash, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "loginuser",
		Email:        "login@example.com",
		PasswordHash: passwordHash,
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()
	suite.mockUserRepo.On("UpdateRefreshToken", ctx, user.UserID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil).Once()

	pair, err := suite.service.Login(ctx, dto.LoginRequest{Email: user.Email, Password: password})

	suite.Require().NoError(err)
	suite.Require().NotNil(pair)
	suite.NotEmpty(pair.AccessToken)
	suite.NotEmpty(pair.RefreshToken)

	claims, err := utils.ParseAndValidateJWT(pair.AccessToken, suite.cfg.JWTSecret, suite.cfg.JWTIssuer, suite.cfg.JWTAudience)
	suite.Require().NoError(err)
	suite.Equal(user.UserID, claims.Subject)

	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	passwordHash, err := utils.HashPassword("the-real-password")
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "login@example.com",
		PasswordHash: passwordHash,
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	pair, err := suite.service.Login(ctx, dto.LoginRequest{Email: user.Email, Password: "wrong-password"})

	suite.Require().Error(err)
	suite.Nil(pair)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateRefreshToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	// An unknown email yields the same error as a wrong password.
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	pair, err := suite.service.Login(ctx, dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})

	suite.Require().Error(err)
	suite.Nil(pair)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockUserRepo.On("FindUserByEmail", ctx, "login@example.com").Return(nil, expectedErr).Once()

	pair, err := suite.service.Login(ctx, dto.LoginRequest{Email: "login@example.com", Password: "password123"})

	suite.Require().Error(err)
	suite.Nil(pair)
	suite.ErrorIs(err, expectedErr)
	suite.NotErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- Refresh Tests ---

func (suite *AuthServiceTestSuite) TestRefresh_Success() {
	ctx := context.Background()
	presented := "some-opaque-refresh-token"
	user := &domain.User{UserID: uuid.NewString(), Email: "refresh@example.com"}

	var rotatedToNewHash string
	suite.mockUserRepo.RotateRefreshTokenFn = func(ctx context.Context, oldHash, newHash string, expiry time.Time) (*domain.User, error) {
		suite.Equal(utils.HashRefreshToken(presented), oldHash)
		suite.NotEqual(oldHash, newHash)
		suite.True(expiry.After(time.Now()))
		rotatedToNewHash = newHash
		return user, nil
	}

	pair, err := suite.service.Refresh(ctx, presented)

	suite.Require().NoError(err)
	suite.Require().NotNil(pair)
	suite.NotEmpty(pair.AccessToken)
	suite.NotEqual(presented, pair.RefreshToken)
	// The stored digest must match the token handed back to the client.
	suite.Equal(utils.HashRefreshToken(pair.RefreshToken), rotatedToNewHash)

	claims, err := utils.ParseAndValidateJWT(pair.AccessToken, suite.cfg.JWTSecret, suite.cfg.JWTIssuer, suite.cfg.JWTAudience)
	suite.Require().NoError(err)
	suite.Equal(user.UserID, claims.Subject)
}

func (suite *AuthServiceTestSuite) TestRefresh_UnknownToken() {
	ctx := context.Background()

	suite.mockUserRepo.On("RotateRefreshToken", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrNotFound).Once()

	pair, err := suite.service.Refresh(ctx, "never-issued-token")

	suite.Require().Error(err)
	suite.Nil(pair)
	suite.ErrorIs(err, apperrors.ErrInvalidRefreshToken)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRefresh_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockUserRepo.On("RotateRefreshToken", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Return(nil, expectedErr).Once()

	pair, err := suite.service.Refresh(ctx, "some-token")

	suite.Require().Error(err)
	suite.Nil(pair)
	suite.ErrorIs(err, expectedErr)
	suite.NotErrorIs(err, apperrors.ErrInvalidRefreshToken)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

// --- Rotation semantics against a CAS-backed store ---

// casTokenStore is an in-memory UserRepositoryFacade holding a single user's
// refresh token state. RotateRefreshToken performs a compare-and-swap under a
// mutex, mirroring the conditional UPDATE the real repository runs.
type casTokenStore struct {
	mu     sync.Mutex
	user   domain.User
	hash   string
	expiry time.Time
}

func (s *casTokenStore) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return nil, apperrors.ErrNotFound
}

func (s *casTokenStore) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, apperrors.ErrNotFound
}

func (s *casTokenStore) FindUserByRefreshTokenHash(ctx context.Context, refreshTokenHash string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hash == refreshTokenHash && s.expiry.After(time.Now()) {
		u := s.user
		return &u, nil
	}
	return nil, apperrors.ErrNotFound
}

func (s *casTokenStore) SaveUser(ctx context.Context, user domain.User) error {
	return nil
}

func (s *casTokenStore) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiry time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hash = refreshTokenHash
	s.expiry = expiry
	return nil
}

func (s *casTokenStore) RotateRefreshToken(ctx context.Context, oldHash string, newHash string, expiry time.Time) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hash != oldHash || !s.expiry.After(time.Now()) {
		return nil, apperrors.ErrNotFound
	}
	s.hash = newHash
	s.expiry = expiry
	u := s.user
	return &u, nil
}

func newCASAuthService(t *testing.T, store *casTokenStore) portssvc.AuthSvcFacade {
	t.Helper()
	tokenSvc := services.NewTokenService(testConfig())
	service, err := services.NewAuthService(store, tokenSvc)
	if err != nil {
		t.Fatalf("failed to build auth service: %v", err)
	}
	return service
}

func TestRefresh_RotationChain(t *testing.T) {
	ctx := context.Background()
	store := &casTokenStore{
		user: domain.User{UserID: uuid.NewString(), Email: "chain@example.com"},
	}
	service := newCASAuthService(t, store)

	t1, _, err := services.NewTokenService(testConfig()).GenerateRefreshToken(ctx)
	assert.NoError(t, err)
	store.hash = utils.HashRefreshToken(t1)
	store.expiry = time.Now().Add(time.Hour)

	pair2, err := service.Refresh(ctx, t1)
	assert.NoError(t, err)
	t2 := pair2.RefreshToken

	pair3, err := service.Refresh(ctx, t2)
	assert.NoError(t, err)
	t3 := pair3.RefreshToken

	// Every ancestor of the live token is dead.
	_, err = service.Refresh(ctx, t1)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
	_, err = service.Refresh(ctx, t2)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)

	// The head of the chain still works.
	_, err = service.Refresh(ctx, t3)
	assert.NoError(t, err)
}

func TestRefresh_ExpiredToken(t *testing.T) {
	ctx := context.Background()
	store := &casTokenStore{
		user: domain.User{UserID: uuid.NewString(), Email: "expired@example.com"},
	}
	service := newCASAuthService(t, store)

	token := "expired-refresh-token"
	store.hash = utils.HashRefreshToken(token)
	store.expiry = time.Now().Add(-time.Minute)

	pair, err := service.Refresh(ctx, token)
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
}

func TestRefresh_ConcurrentSingleWinner(t *testing.T) {
	ctx := context.Background()
	store := &casTokenStore{
		user: domain.User{UserID: uuid.NewString(), Email: "race@example.com"},
	}
	service := newCASAuthService(t, store)

	token := "contended-refresh-token"
	store.hash = utils.HashRefreshToken(token)
	store.expiry = time.Now().Add(time.Hour)

	const callers = 16
	results := make(chan error, callers)
	var start sync.WaitGroup
	start.Add(1)

	for i := 0; i < callers; i++ {
		go func() {
			start.Wait()
			_, err := service.Refresh(ctx, token)
			results <- err
		}()
	}
	start.Done()

	var wins, losses int
	for i := 0; i < callers; i++ {
		err := <-results
		switch {
		case err == nil:
			wins++
		default:
			assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
			losses++
		}
	}

	assert.Equal(t, 1, wins, "exactly one concurrent refresh must win")
	assert.Equal(t, callers-1, losses)
}
