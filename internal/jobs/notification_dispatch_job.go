package jobs

import (
	"context"
	"log/slog"

	"pharmacy/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// dispatchBatchSize bounds one outbox drain. Anything left over is picked up
// by the next tick.
const dispatchBatchSize = 100

// NotificationDispatchJob periodically drains the notification outbox.
// Notifications are written inside workflow transactions; this job is the
// asynchronous half of the outbox pattern, handing pending rows to the
// notifier a few seconds after the transition that created them committed.
type NotificationDispatchJob struct {
	handler commands.DispatchNotificationsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewNotificationDispatchJob creates a job that drains the outbox every five seconds.
func NewNotificationDispatchJob(
	handler commands.DispatchNotificationsCommandHandler,
	logger *slog.Logger,
) *NotificationDispatchJob {
	return &NotificationDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "notification_dispatch_job"),
	}
}

// Start begins the dispatch job.
func (j *NotificationDispatchJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewDispatchNotificationsCommand(dispatchBatchSize)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build dispatch command", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			// Transport failures leave the rows pending; the next tick retries.
			j.logger.ErrorContext(ctx, "Notification dispatch failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification dispatch job started (running every five seconds)")
	return nil
}

// Stop stops the dispatch job.
func (j *NotificationDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification dispatch job stopped")
}
