package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"metalflow/internal/domain"
	"metalflow/mocks"
)

func TestUserCreate_HashesPassword(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := NewUserService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "new@example.com" && u.IsActive && u.PasswordHash != "plain-password-1"
	})).Return(nil)

	user, err := svc.Create(context.Background(), CreateUserInput{
		Email:    "new@example.com",
		Password: "plain-password-1",
		FullName: "New Trader",
		Role:     domain.RoleMember,
	})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("plain-password-1")))
}

func TestUserCreate_InvalidRole(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), CreateUserInput{
		Email:    "new@example.com",
		Password: "plain-password-1",
		FullName: "New Trader",
		Role:     domain.UserRole("superuser"),
	})
	require.ErrorIs(t, err, domain.ErrInvalidRole)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserUpdate_PatchesOnlyGivenFields(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := NewUserService(repo)
	id := uuid.New()

	existing := &domain.User{ID: id, Email: "old@example.com", FullName: "Old Name", Role: domain.RoleMember, IsActive: true}
	repo.On("GetByID", mock.Anything, id).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.FullName == "New Name" && u.Email == "old@example.com" && u.Role == domain.RoleMember
	})).Return(nil)

	name := "New Name"
	user, err := svc.Update(context.Background(), id, UpdateUserInput{FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, "New Name", user.FullName)
}

func TestUserUpdate_InvalidRole(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := NewUserService(repo)
	id := uuid.New()

	repo.On("GetByID", mock.Anything, id).Return(&domain.User{ID: id, Role: domain.RoleMember}, nil)

	bad := domain.UserRole("root")
	_, err := svc.Update(context.Background(), id, UpdateUserInput{Role: &bad})
	require.ErrorIs(t, err, domain.ErrInvalidRole)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
