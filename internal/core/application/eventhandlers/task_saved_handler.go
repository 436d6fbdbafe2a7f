// Package eventhandlers reacts to domain events published after a commit.
package eventhandlers

import (
	"context"
	"log/slog"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/task"
	"atelier/internal/core/ports"
)

// TaskSavedHandler keeps an order's status in line with its latest saved task.
//
// It runs after the task write has committed, so a failure here never undoes
// that write. The order stays stale until the next successful sync (the next
// task save, a manual resync or the periodic resync job).
type TaskSavedHandler struct {
	syncer commands.OrderStatusSyncer
	logger *slog.Logger
}

var _ ports.TaskSavedHandler = (*TaskSavedHandler)(nil)

func NewTaskSavedHandler(syncer commands.OrderStatusSyncer, logger *slog.Logger) *TaskSavedHandler {
	return &TaskSavedHandler{
		syncer: syncer,
		logger: logger.With("component", "status_sync"),
	}
}

// Handle synchronizes the owning order for the saved task's stage.
// A returned error is always an *errs.StatusSyncError.
func (h *TaskSavedHandler) Handle(ctx context.Context, event task.TaskSaved) error {
	cmd, err := commands.NewTaskSavedSyncCommand(event.OrderID, event.TaskID, event.Stage)
	if err != nil {
		return err
	}

	res, err := h.syncer.Handle(ctx, cmd)
	if err != nil {
		h.logger.ErrorContext(ctx, "order status sync failed",
			"order_id", event.OrderID.String(),
			"task_id", event.TaskID.String(),
			"stage", event.Stage.String(),
			"error", err,
		)
		return err
	}

	if res.Changed {
		h.logger.DebugContext(ctx, "order status synchronized",
			"order_id", event.OrderID.String(),
			"from", res.Previous.String(),
			"to", res.Current.String(),
		)
	}
	return nil
}
