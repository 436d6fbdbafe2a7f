package commands

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/ports"

	"github.com/sourcegraph/conc/pool"
)

// ResyncAllResult summarizes one resync pass.
type ResyncAllResult struct {
	Orders   int
	Changed  int
	Failures int
	Duration time.Duration
}

// ResyncAllCommandHandler heals orders left stale by failed synchronizations.
// Orders are synchronized one by one through the manual path of the
// synchronizer, with a bounded number running at the same time. A failing
// order is logged and counted; it never stops the pass.
type ResyncAllCommandHandler struct {
	uowFactory OrderUoWFactory
	syncer     OrderStatusSyncer
	metrics    ports.WorkflowMetrics
	logger     *slog.Logger
}

func NewResyncAllCommandHandler(
	uowFactory OrderUoWFactory,
	syncer OrderStatusSyncer,
	metrics ports.WorkflowMetrics,
	logger *slog.Logger,
) ResyncAllCommandHandler {
	return ResyncAllCommandHandler{
		uowFactory: uowFactory,
		syncer:     syncer,
		metrics:    metrics,
		logger:     logger.With("component", "resync_all"),
	}
}

func (h ResyncAllCommandHandler) Handle(ctx context.Context, command ResyncAllCommand) (ResyncAllResult, error) {
	if err := command.Validate(); err != nil {
		return ResyncAllResult{}, err
	}

	started := time.Now()
	ids, err := h.uowFactory.Create().OrderRepository().ListIDsInProduction(ctx)
	if err != nil {
		return ResyncAllResult{}, err
	}

	var changed, failures atomic.Int64
	p := pool.New().WithMaxGoroutines(command.Workers())
	for _, id := range ids {
		p.Go(func() {
			if ctx.Err() != nil {
				failures.Add(1)
				return
			}
			res, syncErr := h.syncOne(ctx, id)
			switch {
			case syncErr != nil:
				failures.Add(1)
				h.logger.ErrorContext(ctx, "order resync failed", "order_id", id.String(), "error", syncErr)
			case res.Changed:
				changed.Add(1)
			}
		})
	}
	p.Wait()

	result := ResyncAllResult{
		Orders:   len(ids),
		Changed:  int(changed.Load()),
		Failures: int(failures.Load()),
		Duration: time.Since(started),
	}
	if h.metrics != nil {
		h.metrics.ResyncCompleted(result.Duration, result.Orders, result.Failures)
	}
	return result, ctx.Err()
}

func (h ResyncAllCommandHandler) syncOne(ctx context.Context, orderID kernel.UUID) (SyncOrderStatusResult, error) {
	cmd, err := NewSyncOrderStatusCommand(orderID)
	if err != nil {
		return SyncOrderStatusResult{}, err
	}
	return h.syncer.Handle(ctx, cmd)
}
