package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"cinema/internal/application/usecases/reminders"
	"cinema/internal/entities"
)

type ShowsRepo interface {
	ListStartingBetween(ctx context.Context, from, to time.Time) ([]entities.Show, error)
}

// ReminderPlanner periodically plans reminders for shows starting
// within the reminder window. Delivery is owned by the notification
// side; this service only produces and reports the plan.
type ReminderPlanner struct {
	showsRepo    ShowsRepo
	window       time.Duration
	planInterval time.Duration
	logger       zerolog.Logger
}

func NewReminderPlanner(
	showsRepo ShowsRepo,
	window time.Duration,
	planInterval time.Duration,
	logger zerolog.Logger,
) *ReminderPlanner {
	return &ReminderPlanner{
		showsRepo:    showsRepo,
		window:       window,
		planInterval: planInterval,
		logger:       logger,
	}
}

func (p *ReminderPlanner) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.planInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := p.PlanDue(ctx); err != nil {
				p.logger.Err(err).Msg("failed to plan show reminders")
			}
		}
	}
}

// PlanDue plans reminders for every show starting within the window
// from now.
func (p *ReminderPlanner) PlanDue(ctx context.Context) ([]reminders.Task, error) {
	now := time.Now().UTC()

	shows, err := p.showsRepo.ListStartingBetween(ctx, now, now.Add(p.window))
	if err != nil {
		return nil, err
	}

	tasks := reminders.Plan(now, p.window, shows)
	for _, task := range tasks {
		p.logger.Info().
			Str("show_id", task.ShowID).
			Time("start_time", task.StartTime).
			Int("recipients", len(task.UserIDs)).
			Msg("planned show reminder")
	}

	return tasks, nil
}
