package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/hafizn/kirimbot/internal/report"
)

// newSummaryReportTask creates the scheduled task that logs a daily
// summary of the stored records: totals, upcoming deliveries, unique
// phone numbers, and the per-month distribution.
func newSummaryReportTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "summary_report")

	return func(ctx context.Context) error {
		customers, err := deps.Store.ListCustomers(ctx)
		if err != nil {
			log.ErrorContext(ctx, "Summary report failed to list customers", "error", err)
			return fmt.Errorf("summary report: %w", err)
		}

		summary := report.Summarize(customers, time.Now())
		log.InfoContext(ctx, "Daily delivery summary",
			"total", summary.Total,
			"upcoming", summary.Upcoming,
			"unique_phones", summary.UniquePhones,
			"months", len(summary.PerMonth),
		)
		return nil
	}
}
