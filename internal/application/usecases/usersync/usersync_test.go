package usersync_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinema/internal/application/usecases/usersync"
	"cinema/internal/application/usecases/usersync/mocks"
	"cinema/internal/entities"
)

func TestOnUserCreated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usersRepo := mocks.NewMockUsersRepo(ctrl)
	usecase := usersync.NewSyncUsersUsecase(usersRepo)

	var created *entities.User
	usersRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *entities.User) error {
			created = user
			return nil
		})

	err := usecase.OnUserCreated(context.Background(), &entities.UserCreated_v1{
		Header:    entities.NewEventHeader(),
		UserID:    "user_123",
		FirstName: "Ada",
		LastName:  "Lovelace",
		EmailAddresses: []entities.EmailAddress{
			{EmailAddress: "ada@example.com"},
			{EmailAddress: "secondary@example.com"},
		},
		ImageURL: "https://img.example.com/ada.png",
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, "user_123", created.UserID)
	assert.Equal(t, "Ada Lovelace", created.Name)
	assert.Equal(t, "ada@example.com", created.Email)
	assert.Equal(t, "https://img.example.com/ada.png", created.Image)
}

func TestOnUserCreated_NoEmailAddresses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usersRepo := mocks.NewMockUsersRepo(ctrl)
	usecase := usersync.NewSyncUsersUsecase(usersRepo)

	var created *entities.User
	usersRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *entities.User) error {
			created = user
			return nil
		})

	err := usecase.OnUserCreated(context.Background(), &entities.UserCreated_v1{
		Header:    entities.NewEventHeader(),
		UserID:    "user_456",
		FirstName: "Grace",
		LastName:  "Hopper",
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Empty(t, created.Email)
}

func TestOnUserCreated_DuplicatePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usersRepo := mocks.NewMockUsersRepo(ctrl)
	usecase := usersync.NewSyncUsersUsecase(usersRepo)

	usersRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(entities.ErrUserAlreadyExists)

	err := usecase.OnUserCreated(context.Background(), &entities.UserCreated_v1{
		Header: entities.NewEventHeader(),
		UserID: "user_123",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, entities.ErrUserAlreadyExists))
}

func TestOnUserUpdated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usersRepo := mocks.NewMockUsersRepo(ctrl)
	usecase := usersync.NewSyncUsersUsecase(usersRepo)

	var updated *entities.User
	usersRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *entities.User) error {
			updated = user
			return nil
		})

	err := usecase.OnUserUpdated(context.Background(), &entities.UserUpdated_v1{
		Header:    entities.NewEventHeader(),
		UserID:    "user_123",
		FirstName: "Ada",
		LastName:  "King",
		EmailAddresses: []entities.EmailAddress{
			{EmailAddress: "ada@example.com"},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, updated)
	assert.Equal(t, "Ada King", updated.Name)
}

func TestOnUserDeleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usersRepo := mocks.NewMockUsersRepo(ctrl)
	usecase := usersync.NewSyncUsersUsecase(usersRepo)

	usersRepo.EXPECT().
		Delete(gomock.Any(), "user_123").
		Return(nil)

	err := usecase.OnUserDeleted(context.Background(), &entities.UserDeleted_v1{
		Header: entities.NewEventHeader(),
		UserID: "user_123",
	})
	require.NoError(t, err)
}
