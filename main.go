package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"cinema/internal/app"
	"cinema/internal/config"
	"cinema/internal/observability"
)

func main() {
	log.Init(logrus.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	tp := observability.ConfigureTraceProvider()
	defer func() {
		_ = tp.Shutdown(context.Background())
	}()

	watermillLogger := log.NewWatermill(logrus.NewEntry(logrus.StandardLogger()))

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	db, err := sqlx.Open("postgres", cfg.PostgresURL)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, err := app.NewApp(watermillLogger, redisClient, db, cfg)
	if err != nil {
		panic(err)
	}

	if err := a.Run(ctx); err != nil {
		panic(err)
	}
}
