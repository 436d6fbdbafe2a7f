package commands

import (
	"context"

	"atelier/internal/core/domain/model/task"
)

// ReassignTaskCommandHandler runs the reassignment workflow for one task.
//
// The old task keeps its row, gains one "reassigned" history entry and
// becomes Reassigned; a new Pending task for the same order and stage is
// created for the new staff member and returned.
type ReassignTaskCommandHandler struct {
	uowFactory   UoWFactory
	enforceRoles bool
	clock        Clock
}

func NewReassignTaskCommandHandler(uowFactory UoWFactory, enforceRoles bool, clock Clock) ReassignTaskCommandHandler {
	return ReassignTaskCommandHandler{
		uowFactory:   uowFactory,
		enforceRoles: enforceRoles,
		clock:        clock,
	}
}

func (h ReassignTaskCommandHandler) Handle(ctx context.Context, command ReassignTaskCommand) (*task.Task, error) {
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

	current, err := uow.TaskRepository().Get(ctx, command.TaskID())
	if err != nil {
		return nil, err
	}
	if !current.IsActive() {
		return nil, task.ErrTaskIsNotActive
	}

	owner, err := loadOpenOrder(ctx, uow.OrderRepository(), current.OrderID())
	if err != nil {
		return nil, err
	}

	if err = resolveAssignee(ctx, uow, command.NewStaffID(), current.Stage(), h.enforceRoles); err != nil {
		return nil, err
	}

	successor, err := reassign(
		ctx, uow, owner, current,
		command.NewStaffID(), command.ReassignedBy(), command.Note(),
		h.clock.now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return successor, nil
}
