package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"cinema/internal/entities"
)

//go:generate mockgen -destination=mocks/user_syncer_mock.go -package=mocks . UserSyncer
type UserSyncer interface {
	OnUserCreated(ctx context.Context, event *entities.UserCreated_v1) error
	OnUserUpdated(ctx context.Context, event *entities.UserUpdated_v1) error
	OnUserDeleted(ctx context.Context, event *entities.UserDeleted_v1) error
}

//go:generate mockgen -destination=mocks/seat_releaser_mock.go -package=mocks . SeatReleaser
type SeatReleaser interface {
	SchedulePaymentCheck(ctx context.Context, bookingID uuid.UUID) (time.Time, error)
	ReleaseIfUnpaid(ctx context.Context, bookingID uuid.UUID) error
}

type Handler struct {
	userSyncer   UserSyncer
	seatReleaser SeatReleaser
}

func NewHandler(
	userSyncer UserSyncer,
	seatReleaser SeatReleaser,
) *Handler {
	return &Handler{
		userSyncer:   userSyncer,
		seatReleaser: seatReleaser,
	}
}
