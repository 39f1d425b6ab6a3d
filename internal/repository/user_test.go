package repository

import (
	"context"
	"testing"

	"wrenchbase/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Upsert(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{
		ClerkID:   "user_abc123",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Role:      models.UserRoleSuperAdmin,
	}
	require.NoError(t, repo.Upsert(ctx, user))

	t.Run("Redelivered create converges without duplicating", func(t *testing.T) {
		again := &models.User{
			ClerkID:   "user_abc123",
			FirstName: "Ada",
			LastName:  "Byron",
			Email:     "ada@example.com",
			Role:      models.UserRoleUser,
		}
		require.NoError(t, repo.Upsert(ctx, again))

		var count int64
		require.NoError(t, db.Model(&models.User{}).Where("clerk_id = ?", "user_abc123").Count(&count).Error)
		assert.Equal(t, int64(1), count)

		got, err := repo.GetByClerkID(ctx, "user_abc123")
		require.NoError(t, err)
		assert.Equal(t, "Byron", got.LastName)
		// Role is excluded from the conflict update so a redelivered create
		// never demotes a promoted account.
		assert.Equal(t, models.UserRoleSuperAdmin, got.Role)
	})
}

func TestUserRepository_GetByClerkID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &models.User{ClerkID: "user_x", Email: "x@example.com"}))

	got, err := repo.GetByClerkID(ctx, "user_x")
	require.NoError(t, err)
	assert.Equal(t, "x@example.com", got.Email)

	_, err = repo.GetByClerkID(ctx, "user_missing")
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &models.User{ClerkID: "user_y", Email: "y@example.com"}))

	got, err := repo.GetByEmail(ctx, "y@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "user_y", got.ClerkID)

	// Absent email is not an error, just nil.
	got, err = repo.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &models.User{
		ClerkID: "user_z",
		Email:   "z@example.com",
		Bio:     "weekend wrencher",
		Role:    models.UserRoleAdmin,
	}))

	err := repo.UpdateProfile(ctx, "user_z", &models.User{
		FirstName: "Zoe",
		Email:     "zoe@example.com",
	})
	require.NoError(t, err)

	got, err := repo.GetByClerkID(ctx, "user_z")
	require.NoError(t, err)
	assert.Equal(t, "Zoe", got.FirstName)
	assert.Equal(t, "zoe@example.com", got.Email)
	// Locally-owned fields survive provider updates.
	assert.Equal(t, "weekend wrencher", got.Bio)
	assert.Equal(t, models.UserRoleAdmin, got.Role)

	err = repo.UpdateProfile(ctx, "user_missing", &models.User{FirstName: "Nope"})
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestUserRepository_DeleteByClerkID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &models.User{ClerkID: "user_gone", Email: "gone@example.com"}))
	require.NoError(t, repo.DeleteByClerkID(ctx, "user_gone"))

	_, err := repo.GetByClerkID(ctx, "user_gone")
	require.Error(t, err)

	// Deleting an already-absent user is a no-op, matching webhook
	// redelivery semantics.
	require.NoError(t, repo.DeleteByClerkID(ctx, "user_gone"))
}
