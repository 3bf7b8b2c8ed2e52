package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinema/internal/entities"
	"cinema/internal/repository"
)

func TestUsersRepo_Integration(t *testing.T) {
	repo := repository.NewUsersRepo(getDb(t))
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		userID := "user_" + uuid.NewString()

		err := repo.Create(ctx, &entities.User{
			UserID: userID,
			Email:  "ada@example.com",
			Name:   "Ada Lovelace",
			Image:  "https://img.example.com/ada.png",
		})
		require.NoError(t, err)

		user, err := repo.GetByID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", user.Name)
		assert.Equal(t, "ada@example.com", user.Email)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("duplicate create fails", func(t *testing.T) {
		userID := "user_" + uuid.NewString()
		user := &entities.User{UserID: userID, Email: "a@example.com", Name: "A B"}

		require.NoError(t, repo.Create(ctx, user))

		err := repo.Create(ctx, user)
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrUserAlreadyExists)
	})

	t.Run("update overwrites projection", func(t *testing.T) {
		userID := "user_" + uuid.NewString()

		require.NoError(t, repo.Create(ctx, &entities.User{
			UserID: userID,
			Email:  "old@example.com",
			Name:   "Old Name",
		}))

		err := repo.Update(ctx, &entities.User{
			UserID: userID,
			Email:  "new@example.com",
			Name:   "New Name",
			Image:  "https://img.example.com/new.png",
		})
		require.NoError(t, err)

		user, err := repo.GetByID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "New Name", user.Name)
		assert.Equal(t, "new@example.com", user.Email)
	})

	t.Run("update of missing user is a no-op", func(t *testing.T) {
		err := repo.Update(ctx, &entities.User{
			UserID: "user_" + uuid.NewString(),
			Email:  "ghost@example.com",
			Name:   "Ghost",
		})
		require.NoError(t, err)
	})

	t.Run("delete removes user", func(t *testing.T) {
		userID := "user_" + uuid.NewString()

		require.NoError(t, repo.Create(ctx, &entities.User{
			UserID: userID,
			Email:  "gone@example.com",
			Name:   "Gone Soon",
		}))
		require.NoError(t, repo.Delete(ctx, userID))

		_, err := repo.GetByID(ctx, userID)
		require.Error(t, err)
	})

	t.Run("delete of missing user is a no-op", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "user_"+uuid.NewString()))
	})
}
