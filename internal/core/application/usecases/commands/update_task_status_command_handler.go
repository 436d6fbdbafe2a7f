package commands

import (
	"context"

	"atelier/internal/core/domain/model/task"
)

// UpdateTaskStatusCommandHandler records progress on an active task.
// A reassigned task is frozen and yields errs.ErrObjectConflict.
type UpdateTaskStatusCommandHandler struct {
	uowFactory UoWFactory
	clock      Clock
}

func NewUpdateTaskStatusCommandHandler(uowFactory UoWFactory, clock Clock) UpdateTaskStatusCommandHandler {
	return UpdateTaskStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle applies the status change and returns the updated task.
func (h UpdateTaskStatusCommandHandler) Handle(ctx context.Context, command UpdateTaskStatusCommand) (*task.Task, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	taskRepo := uow.TaskRepository()
	t, err := taskRepo.Get(ctx, command.TaskID())
	if err != nil {
		return nil, err
	}

	if err = t.ChangeStatus(command.Status(), command.Remarks(), h.clock.now()); err != nil {
		return nil, err
	}

	if err = taskRepo.Update(ctx, t); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return t, nil
}
