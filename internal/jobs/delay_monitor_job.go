package jobs

import (
	"context"
	"log/slog"
	"time"

	"track/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DelayMonitorJob manages the scheduled scan for overdue hub transits.
// Runs every minute to record delay events for tracks past their estimate.
type DelayMonitorJob struct {
	handler commands.RecordHubDelaysCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDelayMonitorJob creates a new job for delay monitoring.
// Uses RecordHubDelaysCommandHandler to scan in-flight tracks every minute.
func NewDelayMonitorJob(handler commands.RecordHubDelaysCommandHandler, logger *slog.Logger) *DelayMonitorJob {
	return &DelayMonitorJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delay_monitor_job"),
	}
}

// Start begins the delay monitor job to run every minute.
func (j *DelayMonitorJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewRecordHubDelaysCommand(time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "Delay monitor job failed to build command", "error", err)
			return
		}

		recorded, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Delay monitor job failed", "error", err)
			return
		}
		if recorded > 0 {
			j.logger.InfoContext(ctx, "Delay monitor recorded overdue transits", "count", recorded)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delay monitor job started (running every minute)")
	return nil
}

// Stop stops the delay monitor job.
func (j *DelayMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delay monitor job stopped")
}
