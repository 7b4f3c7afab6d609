package service

import (
	"github.com/robfig/cron/v3"

	"github.com/immaculate/crm-backend/pkg/logger"
)

// SummaryJob logs a daily business summary from the stats snapshot so
// the owner gets the headline numbers without opening the dashboard.
type SummaryJob struct {
	stats    *StatsService
	schedule string
	cron     *cron.Cron
}

func NewSummaryJob(stats *StatsService, schedule string) *SummaryJob {
	return &SummaryJob{
		stats:    stats,
		schedule: schedule,
		cron:     cron.New(),
	}
}

func (j *SummaryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}
	j.cron.Start()
	logger.Info("Summary job scheduled", "schedule", j.schedule)
	return nil
}

func (j *SummaryJob) Stop() {
	j.cron.Stop()
}

// Run computes and logs the summary once. Exported so the scheduler
// and an operator-triggered run share one code path.
func (j *SummaryJob) Run() {
	snap := j.stats.Snapshot()

	topService := "none"
	if len(snap.PopularServices) > 0 {
		topService = snap.PopularServices[0].Name
	}

	logger.Info("Daily business summary",
		"total_customers", snap.TotalCustomers,
		"total_bookings", snap.TotalBookings,
		"new_customers_this_month", snap.NewCustomersThisMonth,
		"bookings_this_month", snap.BookingsThisMonth,
		"top_service", topService,
	)
}
