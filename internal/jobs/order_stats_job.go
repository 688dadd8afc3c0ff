package jobs

import (
	"context"

	"registry/internal/core/application/usecases/queries"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultOrderStatsSchedule runs the statistics job every 30 seconds.
const DefaultOrderStatsSchedule = "*/30 * * * * *"

// OrderStatsJob periodically counts stored orders per status and publishes
// the result to a gauge.
type OrderStatsJob struct {
	handler  queries.CountOrdersByStatusQueryHandler
	gauge    *prometheus.GaugeVec
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewOrderStatsJob creates the job. The schedule is a six-field cron
// expression with seconds; an empty schedule falls back to DefaultOrderStatsSchedule.
func NewOrderStatsJob(
	handler queries.CountOrdersByStatusQueryHandler,
	gauge *prometheus.GaugeVec,
	schedule string,
	logger *zap.Logger,
) *OrderStatsJob {
	if schedule == "" {
		schedule = DefaultOrderStatsSchedule
	}
	return &OrderStatsJob{
		handler:  handler,
		gauge:    gauge,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With(zap.String("component", "order_stats_job")),
	}
}

// Start registers the job on its schedule and starts the scheduler.
func (j *OrderStatsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Order stats job started", zap.String("schedule", j.schedule))
	return nil
}

// Run collects the counts once.
func (j *OrderStatsJob) Run(ctx context.Context) {
	rows, err := j.handler.Handle(ctx, queries.NewCountOrdersByStatusQuery())
	if err != nil {
		j.logger.Error("Order stats job failed", zap.Error(err))
		return
	}

	fields := make([]zap.Field, 0, len(rows))
	for _, row := range rows {
		j.gauge.WithLabelValues(row.Status.String()).Set(float64(row.Count))
		fields = append(fields, zap.Int(row.Status.String(), row.Count))
	}
	j.logger.Debug("Orders by status", fields...)
}

// Stop stops the scheduler and waits for a running collection to finish.
func (j *OrderStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Order stats job stopped")
}
