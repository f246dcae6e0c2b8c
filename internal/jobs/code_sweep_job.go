package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CodeSweepJob periodically clears delivery codes whose validity window has
// passed. Verification rejects expired codes on its own; the sweep keeps the
// stored set small and bounds how long a code lingers after expiry.
type CodeSweepJob struct {
	handler commands.SweepExpiredCodesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCodeSweepJob creates a job that sweeps expired delivery codes every minute.
func NewCodeSweepJob(handler commands.SweepExpiredCodesCommandHandler, logger *slog.Logger) *CodeSweepJob {
	return &CodeSweepJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "code_sweep_job"),
	}
}

// Start begins the sweep schedule.
func (j *CodeSweepJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewSweepExpiredCodesCommand()

		cleared, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Delivery code sweep failed", "error", err)
			return
		}

		if cleared > 0 {
			j.logger.InfoContext(ctx, "Expired delivery codes cleared", "count", cleared)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Code sweep job started (running every minute)")
	return nil
}

// Stop stops the sweep schedule.
func (j *CodeSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Code sweep job stopped")
}
