package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr    string
	PostgresURL string
	RedisAddr   string

	// GracePeriod is how long an unpaid booking keeps its seats.
	GracePeriod time.Duration
	// TimerPollInterval is how often the scheduler scans for due
	// release timers.
	TimerPollInterval time.Duration
	// ReminderWindow is how far ahead of start time a show becomes
	// eligible for a reminder.
	ReminderWindow time.Duration
}

func Load() (Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:          getenv("HTTP_ADDR", ":8080"),
		PostgresURL:       os.Getenv("POSTGRES_URL"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		GracePeriod:       10 * time.Minute,
		TimerPollInterval: time.Second,
		ReminderWindow:    8 * time.Hour,
	}

	if cfg.PostgresURL == "" {
		return Config{}, fmt.Errorf("missing required env var: POSTGRES_URL")
	}
	if cfg.RedisAddr == "" {
		return Config{}, fmt.Errorf("missing required env var: REDIS_ADDR")
	}

	var err error
	if cfg.GracePeriod, err = getenvDuration("GRACE_PERIOD", cfg.GracePeriod); err != nil {
		return Config{}, err
	}
	if cfg.TimerPollInterval, err = getenvDuration("TIMER_POLL_INTERVAL", cfg.TimerPollInterval); err != nil {
		return Config{}, err
	}
	if cfg.ReminderWindow, err = getenvDuration("REMINDER_WINDOW", cfg.ReminderWindow); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
