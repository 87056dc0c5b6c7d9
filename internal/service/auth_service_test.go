package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"quizroom/internal/auth"
	errs "quizroom/internal/errors"
	"quizroom/internal/model"
)

// MockTokenStore is a mock implementation of auth.TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	args := m.Called(ctx, jti, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	args := m.Called(ctx, jti)
	return args.Bool(0), args.Error(1)
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService("test-secret")
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		existing      *model.User
		lookupErr     error
		createErr     error
		expectCreate  bool
		expectedError error
	}{
		{
			name:         "new email registers",
			email:        "new@example.com",
			lookupErr:    gorm.ErrRecordNotFound,
			expectCreate: true,
		},
		{
			name:          "duplicate email is rejected",
			email:         "taken@example.com",
			existing:      &model.User{ID: 1, Email: "taken@example.com"},
			expectedError: errs.ErrUserExists,
		},
		{
			// lost the race with a concurrent registration: the existence
			// check saw nothing but the unique index fired on insert
			name:          "duplicate insert maps to the conflict error",
			email:         "raced@example.com",
			lookupErr:     gorm.ErrRecordNotFound,
			createErr:     gorm.ErrDuplicatedKey,
			expectCreate:  true,
			expectedError: errs.ErrUserExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserRepository)
			users.On("FindByEmail", mock.Anything, tt.email).Return(tt.existing, tt.lookupErr)
			if tt.expectCreate {
				users.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(tt.createErr)
			}

			svc := NewAuthService(users, testJWTService(), new(MockTokenStore))
			user, err := svc.Register(context.Background(), "Sam", tt.email, "hunter22")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.email, user.Email)
			assert.NotEqual(t, "hunter22", user.PasswordHash)
			users.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	stored := &model.User{
		ID:           1,
		Name:         "Sam",
		Email:        "sam@example.com",
		PasswordHash: "",
	}

	tests := []struct {
		name          string
		password      string
		lookupUser    *model.User
		lookupErr     error
		expectedError error
	}{
		{
			name:       "valid credentials return a token",
			password:   "hunter22",
			lookupUser: stored,
		},
		{
			name:          "wrong password is rejected",
			password:      "nope",
			lookupUser:    stored,
			expectedError: ErrInvalidCredentials,
		},
		{
			name:          "unknown email is rejected with the same error",
			password:      "hunter22",
			lookupErr:     gorm.ErrRecordNotFound,
			expectedError: ErrInvalidCredentials,
		},
	}

	stored.PasswordHash = hashPassword(t, "hunter22")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserRepository)
			users.On("FindByEmail", mock.Anything, "sam@example.com").Return(tt.lookupUser, tt.lookupErr)

			svc := NewAuthService(users, testJWTService(), new(MockTokenStore))
			token, user, err := svc.Login(context.Background(), "sam@example.com", tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.Equal(t, "sam@example.com", user.Email)
		})
	}
}

func TestAuthService_LogoutRevokesRemainingLifetime(t *testing.T) {
	jwtService := testJWTService()
	token, err := jwtService.Generate("sam@example.com")
	assert.NoError(t, err)

	claims, err := jwtService.Validate(token)
	assert.NoError(t, err)

	tokenStore := new(MockTokenStore)
	tokenStore.On("Revoke", mock.Anything, claims.ID, mock.MatchedBy(func(ttl time.Duration) bool {
		return ttl > 0 && ttl <= auth.AccessTokenExpiry
	})).Return(nil)

	svc := NewAuthService(new(MockUserRepository), jwtService, tokenStore)
	assert.NoError(t, svc.Logout(context.Background(), token))
	tokenStore.AssertExpectations(t)
}

func TestAuthService_VerifyToken(t *testing.T) {
	jwtService := testJWTService()
	token, err := jwtService.Generate("sam@example.com")
	assert.NoError(t, err)

	t.Run("live token verifies and yields the subject", func(t *testing.T) {
		tokenStore := new(MockTokenStore)
		tokenStore.On("IsRevoked", mock.Anything, mock.AnythingOfType("string")).Return(false, nil)

		svc := NewAuthService(new(MockUserRepository), jwtService, tokenStore)
		claims, err := svc.VerifyToken(context.Background(), token)

		assert.NoError(t, err)
		assert.Equal(t, "sam@example.com", claims.Subject)
	})

	t.Run("revoked token is rejected", func(t *testing.T) {
		tokenStore := new(MockTokenStore)
		tokenStore.On("IsRevoked", mock.Anything, mock.AnythingOfType("string")).Return(true, nil)

		svc := NewAuthService(new(MockUserRepository), jwtService, tokenStore)
		claims, err := svc.VerifyToken(context.Background(), token)

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		svc := NewAuthService(new(MockUserRepository), jwtService, new(MockTokenStore))
		claims, err := svc.VerifyToken(context.Background(), "not.a.token")

		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}
