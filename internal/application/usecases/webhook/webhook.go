package webhook

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"

	"cinema/internal/entities"
	"cinema/internal/interfaces/events"
	"cinema/internal/outbox"
)

// IngestEventUsecase persists an inbound webhook as an event in the
// Postgres outbox; the forwarder moves it to Redis. Publish and any
// future same-transaction writes commit or roll back together.
type IngestEventUsecase struct {
	trManager       trm.Manager
	trGetter        *trmsqlx.CtxGetter
	watermillLogger watermill.LoggerAdapter
}

func NewIngestEventUsecase(
	trManager trm.Manager,
	trGetter *trmsqlx.CtxGetter,
	watermillLogger watermill.LoggerAdapter,
) *IngestEventUsecase {
	return &IngestEventUsecase{
		trManager:       trManager,
		trGetter:        trGetter,
		watermillLogger: watermillLogger,
	}
}

func (s *IngestEventUsecase) Ingest(ctx context.Context, event entities.Event) error {
	return s.trManager.Do(ctx, func(ctx context.Context) error {
		tr := s.trGetter.DefaultTrOrDB(ctx, nil)
		if tr == nil {
			return fmt.Errorf("failed to get transaction from context")
		}

		publisher, err := outbox.NewPublisher(tr, s.watermillLogger)
		if err != nil {
			return fmt.Errorf("failed to create event publisher: %w", err)
		}

		eb, err := events.NewEventBus(publisher, s.watermillLogger)
		if err != nil {
			return fmt.Errorf("failed to create event bus: %w", err)
		}

		return eb.Publish(ctx, event)
	})
}
