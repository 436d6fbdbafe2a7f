package commands

import (
	"context"
	"errors"
	"log/slog"

	"atelier/internal/pkg/errs"
)

// DeleteTaskCommandHandler removes a task with its history, detaches it from
// the owning order and then resynchronizes that order from the tasks left.
//
// A failed resync is logged and does not undo the delete.
type DeleteTaskCommandHandler struct {
	uowFactory UoWFactory
	syncer     OrderStatusSyncer
	clock      Clock
	logger     *slog.Logger
}

func NewDeleteTaskCommandHandler(
	uowFactory UoWFactory,
	syncer OrderStatusSyncer,
	clock Clock,
	logger *slog.Logger,
) DeleteTaskCommandHandler {
	return DeleteTaskCommandHandler{
		uowFactory: uowFactory,
		syncer:     syncer,
		clock:      clock,
		logger:     logger.With("component", "delete_task"),
	}
}

func (h DeleteTaskCommandHandler) Handle(ctx context.Context, command DeleteTaskCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	taskRepo := uow.TaskRepository()
	orderRepo := uow.OrderRepository()

	t, err := taskRepo.Get(ctx, command.TaskID())
	if err != nil {
		return err
	}

	owner, err := orderRepo.Get(ctx, t.OrderID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err = taskRepo.Delete(ctx, t.ID()); err != nil {
		return err
	}
	if owner != nil {
		owner.DetachTask(t.ID(), h.clock.now())
		if err = orderRepo.Update(ctx, owner); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if owner == nil {
		return nil
	}

	syncCmd, err := NewSyncOrderStatusCommand(owner.ID())
	if err != nil {
		return err
	}
	if _, err = h.syncer.Handle(ctx, syncCmd); err != nil {
		h.logger.ErrorContext(ctx, "order status sync after task delete failed",
			"order_id", owner.ID().String(),
			"task_id", t.ID().String(),
			"stage", t.Stage().String(),
			"error", err,
		)
	}
	return nil
}
