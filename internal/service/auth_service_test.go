package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"metalflow/internal/config"
	"metalflow/internal/domain"
	"metalflow/mocks"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "test-secret-do-not-use",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 24 * time.Hour,
		Issuer:             "metalflow-test",
	}
}

func testUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{
		ID:           uuid.New(),
		Email:        "trader@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleMember,
		IsActive:     true,
	}
}

func TestLogin_Success(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := NewAuthService(repo, testJWTConfig())
	user := testUser(t, "correct-horse-battery")

	repo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	pair, err := svc.Login(context.Background(), LoginInput{Email: user.Email, Password: "correct-horse-battery"})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	claims, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, domain.RoleMember, claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := NewAuthService(repo, testJWTConfig())
	user := testUser(t, "correct-horse-battery")

	repo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	_, err := svc.Login(context.Background(), LoginInput{Email: user.Email, Password: "wrong-password-00"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UnknownEmailMapsToInvalidCredentials(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := NewAuthService(repo, testJWTConfig())

	repo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, domain.ErrNotFound)

	_, err := svc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "irrelevant-pass"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := NewAuthService(repo, testJWTConfig())
	user := testUser(t, "correct-horse-battery")
	user.IsActive = false

	repo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	_, err := svc.Login(context.Background(), LoginInput{Email: user.Email, Password: "correct-horse-battery"})
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestValidateToken_RejectsRefreshTokenAsAccess(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := NewAuthService(repo, testJWTConfig())
	user := testUser(t, "correct-horse-battery")

	repo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	pair, err := svc.Login(context.Background(), LoginInput{Email: user.Email, Password: "correct-horse-battery"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.RefreshToken)
	assert.Error(t, err)
}

func TestRefreshToken_IssuesNewPair(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := NewAuthService(repo, testJWTConfig())
	user := testUser(t, "correct-horse-battery")

	repo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)
	repo.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	pair, err := svc.Login(context.Background(), LoginInput{Email: user.Email, Password: "correct-horse-battery"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefreshToken_RejectsAccessToken(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := NewAuthService(repo, testJWTConfig())
	user := testUser(t, "correct-horse-battery")

	repo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	pair, err := svc.Login(context.Background(), LoginInput{Email: user.Email, Password: "correct-horse-battery"})
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
