package jobs

import (
	"context"
	"log/slog"
	"time"

	"checkout/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AbandonedCheckoutJob periodically cancels checkouts that have seen no
// activity for longer than the configured idle window.
type AbandonedCheckoutJob struct {
	handler    commands.CancelStaleCheckoutsCommandHandler
	staleAfter time.Duration
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewAbandonedCheckoutJob creates the sweep job. schedule is a six-field
// cron expression; staleAfter is the idle window after which a checkout
// counts as abandoned.
func NewAbandonedCheckoutJob(
	handler commands.CancelStaleCheckoutsCommandHandler,
	schedule string,
	staleAfter time.Duration,
	logger *slog.Logger,
) *AbandonedCheckoutJob {
	return &AbandonedCheckoutJob{
		handler:    handler,
		staleAfter: staleAfter,
		schedule:   schedule,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "abandoned_checkout_job"),
	}
}

// Start schedules the sweep.
func (j *AbandonedCheckoutJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewCancelStaleCheckoutsCommand(j.staleAfter)
		if err != nil {
			j.logger.ErrorContext(ctx, "Abandoned checkout sweep misconfigured", "error", err)
			return
		}

		canceled, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Abandoned checkout sweep failed", "error", err)
			return
		}

		if canceled > 0 {
			j.logger.InfoContext(ctx, "Canceled abandoned checkouts", "count", canceled)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Abandoned checkout job started", "schedule", j.schedule)
	return nil
}

// Stop stops the sweep job.
func (j *AbandonedCheckoutJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Abandoned checkout job stopped")
}
