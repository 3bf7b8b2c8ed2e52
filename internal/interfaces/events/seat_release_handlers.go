package events

import (
	"context"
	"errors"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"cinema/internal/entities"
)

var seatReleaseIntegrityFaultsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "seat_release_integrity_faults_total",
	Help: "Total number of release checks that found a booking referencing a missing show",
})

func (h *Handler) SchedulePaymentCheckHandler() cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"schedule_payment_check_handler",
		func(ctx context.Context, payload *entities.PaymentPending_v1) error {
			log.FromContext(ctx).Info("Payment pending for booking: ", payload.BookingID)

			_, err := h.seatReleaser.SchedulePaymentCheck(ctx, payload.BookingID)
			return err
		},
	)
}

func (h *Handler) ReleaseSeatsHandler() cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"release_seats_handler",
		func(ctx context.Context, payload *entities.SeatReleaseDue_v1) error {
			log.FromContext(ctx).Info("Release due for booking: ", payload.BookingID)

			err := h.seatReleaser.ReleaseIfUnpaid(ctx, payload.BookingID)
			if errors.Is(err, entities.ErrShowNotFound) {
				// Data-integrity fault: the booking points at a show that is
				// gone. Retrying cannot fix it, so report and terminate this
				// instance instead of poisoning the consumer group.
				seatReleaseIntegrityFaultsTotal.Inc()
				log.FromContext(ctx).
					WithField("booking_id", payload.BookingID).
					Error("Booking references a missing show, terminating release: ", err)
				return nil
			}

			return err
		},
	)
}
