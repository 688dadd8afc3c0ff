package jobs

import (
	"fmt"

	"registry/internal/core/application/usecases/queries"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the order service.
type JobManager struct {
	orderStatsJob *OrderStatsJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	countOrdersHandler queries.CountOrdersByStatusQueryHandler,
	ordersByStatus *prometheus.GaugeVec,
	orderStatsSchedule string,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		orderStatsJob: NewOrderStatsJob(countOrdersHandler, ordersByStatus, orderStatsSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderStatsJob.Start(); err != nil {
		return fmt.Errorf("failed to start order stats job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderStatsJob.Stop()
}
