package jobs

import (
	"context"
	"log/slog"
	"time"

	"commerce/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// reviewReminderSchedule runs the reminder every five minutes.
const reviewReminderSchedule = "*/5 * * * *"

// ReviewReminderJob periodically counts orders stuck in checking and
// reminds operators to review them. Read-only; it never mutates orders.
type ReviewReminderJob struct {
	handler   queries.CountStaleCheckingOrdersQueryHandler
	olderThan time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewReviewReminderJob creates a job that flags orders awaiting review
// longer than olderThan.
func NewReviewReminderJob(
	handler queries.CountStaleCheckingOrdersQueryHandler,
	olderThan time.Duration,
	logger *slog.Logger,
) *ReviewReminderJob {
	return &ReviewReminderJob{
		handler:   handler,
		olderThan: olderThan,
		cron:      cron.New(),
		logger:    logger.With("component", "review_reminder_job"),
	}
}

// Start begins the review reminder job on its five minute schedule.
func (j *ReviewReminderJob) Start() error {
	_, err := j.cron.AddFunc(reviewReminderSchedule, func() {
		ctx := context.Background()

		query, err := queries.NewCountStaleCheckingOrdersQuery(j.olderThan)
		if err != nil {
			j.logger.ErrorContext(ctx, "Review reminder job misconfigured", "error", err)
			return
		}

		count, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Review reminder job failed", "error", err)
			return
		}

		if count > 0 {
			j.logger.WarnContext(ctx, "Orders awaiting review",
				"count", count,
				"older_than", j.olderThan.String())
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Review reminder job started (running every five minutes)")
	return nil
}

// Stop stops the review reminder job.
func (j *ReviewReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Review reminder job stopped")
}
