package jobs

import (
	"context"
	"log/slog"
	"sync"

	"atelier/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderResyncer runs one resynchronization pass over all orders in production.
type OrderResyncer interface {
	Handle(ctx context.Context, command commands.ResyncAllCommand) (commands.ResyncAllResult, error)
}

// OrderResyncJob periodically recomputes order statuses from their tasks,
// repairing orders whose event-driven synchronization failed.
type OrderResyncJob struct {
	handler  OrderResyncer
	schedule string
	workers  int
	cron     *cron.Cron
	logger   *slog.Logger

	// running guards against overlapping passes when one outlasts the schedule interval.
	running sync.Mutex
}

// NewOrderResyncJob creates the job. schedule accepts standard cron
// expressions with an optional seconds field as well as descriptors such as
// "@every 5m".
func NewOrderResyncJob(handler OrderResyncer, schedule string, workers int, logger *slog.Logger) *OrderResyncJob {
	return &OrderResyncJob{
		handler:  handler,
		schedule: schedule,
		workers:  workers,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor))),
		logger:   logger.With("component", "order_resync_job"),
	}
}

// Start validates the job settings and schedules the pass.
func (j *OrderResyncJob) Start() error {
	if _, err := commands.NewResyncAllCommand(j.workers); err != nil {
		return err
	}

	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order resync job started", "schedule", j.schedule, "workers", j.workers)
	return nil
}

// Run executes a single pass. A pass that starts while another is still
// running is skipped.
func (j *OrderResyncJob) Run(ctx context.Context) {
	if !j.running.TryLock() {
		j.logger.WarnContext(ctx, "Previous order resync still running, skipping")
		return
	}
	defer j.running.Unlock()

	cmd, err := commands.NewResyncAllCommand(j.workers)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order resync misconfigured", "error", err)
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order resync failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Order resync finished",
		"orders", result.Orders,
		"changed", result.Changed,
		"failures", result.Failures,
		"duration", result.Duration,
	)
}

// Stop unschedules the job and waits for a running pass to finish.
func (j *OrderResyncJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order resync job stopped")
}
