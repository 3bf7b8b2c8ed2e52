package usersync

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"

	"cinema/internal/entities"
)

//go:generate mockgen -destination=mocks/mock_users_repo.go -package=mocks cinema/internal/application/usecases/usersync UsersRepo
type UsersRepo interface {
	Create(ctx context.Context, user *entities.User) error
	Update(ctx context.Context, user *entities.User) error
	Delete(ctx context.Context, userID string) error
}

// SyncUsersUsecase projects identity-provider lifecycle events onto
// the local users table.
type SyncUsersUsecase struct {
	usersRepo UsersRepo
}

func NewSyncUsersUsecase(usersRepo UsersRepo) *SyncUsersUsecase {
	return &SyncUsersUsecase{usersRepo: usersRepo}
}

func (s *SyncUsersUsecase) OnUserCreated(ctx context.Context, event *entities.UserCreated_v1) error {
	user := projection(event.UserID, event.FirstName, event.LastName, event.EmailAddresses, event.ImageURL)

	if err := s.usersRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to sync created user: %w", err)
	}

	log.FromContext(ctx).Info("Synced created user: ", user.UserID)
	return nil
}

func (s *SyncUsersUsecase) OnUserUpdated(ctx context.Context, event *entities.UserUpdated_v1) error {
	user := projection(event.UserID, event.FirstName, event.LastName, event.EmailAddresses, event.ImageURL)

	if err := s.usersRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to sync updated user: %w", err)
	}

	log.FromContext(ctx).Info("Synced updated user: ", user.UserID)
	return nil
}

func (s *SyncUsersUsecase) OnUserDeleted(ctx context.Context, event *entities.UserDeleted_v1) error {
	if err := s.usersRepo.Delete(ctx, event.UserID); err != nil {
		return fmt.Errorf("failed to sync deleted user: %w", err)
	}

	log.FromContext(ctx).Info("Synced deleted user: ", event.UserID)
	return nil
}

func projection(id, firstName, lastName string, emails []entities.EmailAddress, imageURL string) *entities.User {
	var email string
	if len(emails) > 0 {
		email = emails[0].EmailAddress
	}

	return &entities.User{
		UserID: id,
		Email:  email,
		Name:   firstName + " " + lastName,
		Image:  imageURL,
	}
}
