package sqlite

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/budgetkeeper/internal/models"
	"github.com/iudanet/budgetkeeper/internal/server/storage"
)

func TestUserStorage_CreateUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := &models.User{
		UUID:         uuid.New().String(),
		Username:     "alice_smith",
		Email:        "alice@example.com",
		PasswordHash: "hash123",
	}

	err := s.CreateUser(ctx, user)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	// Verify user was created
	retrieved, err := s.GetUserByUUID(ctx, user.UUID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, retrieved.ID)
	assert.Equal(t, user.Username, retrieved.Username)
	assert.Equal(t, user.Email, retrieved.Email)
	assert.Equal(t, user.PasswordHash, retrieved.PasswordHash)

	byEmail, err := s.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.UUID, byEmail.UUID)
}

func TestUserStorage_CreateUser_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	first := &models.User{UUID: uuid.New().String(), Username: "first_user", Email: "dup@example.com", PasswordHash: "h"}
	require.NoError(t, s.CreateUser(ctx, first))

	second := &models.User{UUID: uuid.New().String(), Username: "second_user", Email: "dup@example.com", PasswordHash: "h"}
	err := s.CreateUser(ctx, second)
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)
}

func TestUserStorage_GetUser_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetUserByUUID(ctx, uuid.New().String())
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = s.GetUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUserStorage_UpdateUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userUUID := createTestUser(t, ctx, s)
	otherUUID := createTestUser(t, ctx, s)
	other, err := s.GetUserByUUID(ctx, otherUUID)
	require.NoError(t, err)

	tests := []struct {
		wantError error
		mutate    func(u *models.User)
		name      string
	}{
		{
			name: "change username and email",
			mutate: func(u *models.User) {
				u.Username = "renamed_user"
				u.Email = "renamed@example.com"
			},
		},
		{
			name:      "email taken by another user",
			mutate:    func(u *models.User) { u.Email = other.Email },
			wantError: storage.ErrAlreadyExists,
		},
		{
			name:      "unknown user",
			mutate:    func(u *models.User) { u.UUID = uuid.New().String() },
			wantError: storage.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := s.GetUserByUUID(ctx, userUUID)
			require.NoError(t, err)

			tt.mutate(user)
			err = s.UpdateUser(ctx, user)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			retrieved, err := s.GetUserByUUID(ctx, userUUID)
			require.NoError(t, err)
			assert.Equal(t, user.Username, retrieved.Username)
			assert.Equal(t, user.Email, retrieved.Email)
		})
	}
}

func TestUserStorage_DeleteUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userUUID := createTestUser(t, ctx, s)

	require.NoError(t, s.DeleteUser(ctx, userUUID))

	_, err := s.GetUserByUUID(ctx, userUUID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Повторное удаление
	assert.ErrorIs(t, s.DeleteUser(ctx, userUUID), storage.ErrNotFound)
}
