package events

import (
	"context"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"

	"cinema/internal/entities"
)

func (h *Handler) SyncUserCreatedHandler() cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"sync_user_created_handler",
		func(ctx context.Context, payload *entities.UserCreated_v1) error {
			log.FromContext(ctx).Info("Syncing created user: ", payload.UserID)

			return h.userSyncer.OnUserCreated(ctx, payload)
		},
	)
}

func (h *Handler) SyncUserUpdatedHandler() cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"sync_user_updated_handler",
		func(ctx context.Context, payload *entities.UserUpdated_v1) error {
			log.FromContext(ctx).Info("Syncing updated user: ", payload.UserID)

			return h.userSyncer.OnUserUpdated(ctx, payload)
		},
	)
}

func (h *Handler) SyncUserDeletedHandler() cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"sync_user_deleted_handler",
		func(ctx context.Context, payload *entities.UserDeleted_v1) error {
			log.FromContext(ctx).Info("Syncing deleted user: ", payload.UserID)

			return h.userSyncer.OnUserDeleted(ctx, payload)
		},
	)
}
