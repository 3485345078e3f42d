package jobs

import (
	"context"
	"log/slog"

	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/unit"

	"github.com/robfig/cron/v3"
)

// ExceptionMonitorJob periodically surfaces shipment units stuck in the
// EXCEPTION status. Runs every minute and logs a warning with the count so
// operators can follow up.
type ExceptionMonitorJob struct {
	handler queries.ListUnitsByStatusQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewExceptionMonitorJob creates a new job for monitoring exception units.
// Uses ListUnitsByStatusQueryHandler to poll for units in EXCEPTION status.
func NewExceptionMonitorJob(handler queries.ListUnitsByStatusQueryHandler, logger *slog.Logger) *ExceptionMonitorJob {
	return &ExceptionMonitorJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "exception_monitor_job"),
	}
}

// Start begins the exception monitor job to run once a minute.
func (j *ExceptionMonitorJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewListUnitsByStatusQuery(unit.Exception, queries.MaxPageLimit, 0)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Exception monitor job failed to build query", "error", queryErr)
			return
		}

		page, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Exception monitor job failed", "error", handleErr)
			return
		}

		if page.Total == 0 {
			return
		}

		trackingIDs := make([]string, 0, len(page.Units))
		for _, aggregate := range page.Units {
			trackingIDs = append(trackingIDs, aggregate.TrackingID())
		}

		j.logger.WarnContext(ctx, "Shipment units in exception status",
			"count", page.Total,
			"trackingIds", trackingIDs,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Exception monitor job started (running every minute)")
	return nil
}

// Stop stops the exception monitor job.
func (j *ExceptionMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Exception monitor job stopped")
}
