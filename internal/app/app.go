package app

import (
	"context"
	"os"
	"time"

	commonHTTP "github.com/ThreeDotsLabs/go-event-driven/common/http"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	trmanager "github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"cinema/internal/application/usecases/seatrelease"
	"cinema/internal/application/usecases/usersync"
	"cinema/internal/application/usecases/webhook"
	"cinema/internal/config"
	"cinema/internal/interfaces/events"
	"cinema/internal/interfaces/http"
	"cinema/internal/outbox"
	"cinema/internal/repository"
	"cinema/internal/scheduler"
)

type App struct {
	watermillLogger watermill.LoggerAdapter
	logger          zerolog.Logger
	router          *message.Router
	srv             *http.Server
	forwarder       *outbox.Forwarder
	scheduler       *scheduler.Scheduler
	reminderPlanner *scheduler.ReminderPlanner
	db              *sqlx.DB
}

func NewApp(
	watermillLogger watermill.LoggerAdapter,
	redisClient *redis.Client,
	db *sqlx.DB,
	cfg config.Config,
) (*App, error) {
	usersRepo := repository.NewUsersRepo(db)
	showsRepo := repository.NewShowsRepo(db)
	bookingsRepo := repository.NewBookingsRepo(db)
	timersRepo := repository.NewReleaseTimersRepo(db)

	trManager := trmanager.Must(trmsqlx.NewDefaultFactory(db))

	router, err := message.NewRouter(message.RouterConfig{}, watermillLogger)
	if err != nil {
		return nil, err
	}

	publisher, err := events.NewRedisPublisher(watermillLogger, redisClient)
	if err != nil {
		return nil, err
	}

	eventBus, err := events.NewEventBus(publisher, watermillLogger)
	if err != nil {
		return nil, err
	}

	syncUsers := usersync.NewSyncUsersUsecase(usersRepo)
	releaseSeats := seatrelease.NewReleaseSeatsUsecase(
		bookingsRepo,
		showsRepo,
		timersRepo,
		trManager,
		cfg.GracePeriod,
	)
	ingestor := webhook.NewIngestEventUsecase(trManager, trmsqlx.DefaultCtxGetter, watermillLogger)

	e := commonHTTP.NewEcho()
	srv := http.NewServer(e, cfg.HTTPAddr, ingestor, router.IsRunning)

	router.AddMiddleware(middleware.Recoverer)
	router.AddMiddleware(events.CorrelationIDMiddleware)
	router.AddMiddleware(events.LoggingMiddleware)
	router.AddMiddleware(events.MetricsMiddleware)

	router.AddMiddleware(middleware.Retry{
		MaxRetries:      10,
		InitialInterval: time.Millisecond * 100,
		MaxInterval:     time.Second,
		Multiplier:      2,
		Logger:          watermillLogger,
	}.Middleware)

	// skip marshalling errors before retrying
	router.AddMiddleware(events.SkipMarshallingErrorsMiddleware)

	eventHandler := events.NewHandler(syncUsers, releaseSeats)

	processor, err := cqrs.NewEventProcessorWithConfig(
		router,
		events.NewEventProcessorConfig(redisClient, watermillLogger),
	)
	if err != nil {
		return nil, err
	}
	err = processor.AddHandlers(
		// identity provider events
		eventHandler.SyncUserCreatedHandler(),
		eventHandler.SyncUserUpdatedHandler(),
		eventHandler.SyncUserDeletedHandler(),

		// seat-release compensation
		eventHandler.SchedulePaymentCheckHandler(),
		eventHandler.ReleaseSeatsHandler(),
	)
	if err != nil {
		return nil, err
	}

	forwarder, err := outbox.NewForwarder(db, redisClient, watermillLogger)
	if err != nil {
		return nil, err
	}

	logger := zerolog.New(os.Stdout)

	return &App{
		watermillLogger: watermillLogger,
		logger:          logger,
		router:          router,
		srv:             srv,
		forwarder:       forwarder,
		scheduler:       scheduler.NewScheduler(timersRepo, eventBus, cfg.TimerPollInterval, logger),
		reminderPlanner: scheduler.NewReminderPlanner(showsRepo, cfg.ReminderWindow, time.Hour, logger),
		db:              db,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	err := repository.InitializeDBSchema(a.db)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info().Msg("starting router")

		return a.router.Run(ctx)
	})

	g.Go(func() error {
		a.logger.Info().Msg("starting outbox forwarder")

		return a.forwarder.Run(ctx)
	})

	g.Go(func() error {
		<-a.router.Running()
		a.logger.Info().Msg("starting release scheduler")

		return a.scheduler.Run(ctx)
	})

	g.Go(func() error {
		a.logger.Info().Msg("starting reminder planner")

		return a.reminderPlanner.Run(ctx)
	})

	g.Go(func() error {
		<-a.router.Running()
		a.logger.Info().Msg("router is running")

		a.logger.Info().Msg("starting server")
		return a.srv.Start()
	})

	g.Go(func() error {
		<-ctx.Done()

		err := a.srv.Stop(ctx)
		if err != nil {
			a.logger.Err(err).Msg("error stopping server")
		}

		return err
	})

	return g.Wait()
}
