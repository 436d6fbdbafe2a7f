package commands

import (
	"context"
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/task"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"
)

// resolveAssignee loads a staff member and checks that it may take stage.
func resolveAssignee(ctx context.Context, uow UoW, staffID kernel.UUID, stage task.Stage, enforceRoles bool) error {
	member, err := uow.StaffDirectory().Get(ctx, staffID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewObjectNotFoundErrorWithCause("staffId", staffID.String(), err)
	}
	if err != nil {
		return err
	}
	return member.CheckAssignable(stage, enforceRoles)
}

// loadOpenOrder fetches the owning order of a task write. Delivered orders
// accept no further task changes.
func loadOpenOrder(ctx context.Context, orders ports.OrderRepository, orderID kernel.UUID) (*order.Order, error) {
	o, err := orders.Get(ctx, orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewObjectNotFoundErrorWithCause("orderId", orderID.String(), err)
	}
	if err != nil {
		return nil, err
	}
	if o.Status().IsTerminal() {
		return nil, order.ErrOrderIsDelivered
	}
	return o, nil
}

// reassign flips current to Reassigned and stores its successor bound to
// newAssignee. The old row is written first so the active-task index never
// sees two live rows for the stage.
func reassign(
	ctx context.Context,
	uow UoW,
	owner *order.Order,
	current *task.Task,
	newAssignee, reassignedBy kernel.UUID,
	note string,
	now time.Time,
) (*task.Task, error) {
	successor, err := current.Reassign(kernel.NewUUID(), newAssignee, reassignedBy, note, now)
	if err != nil {
		return nil, err
	}

	taskRepo := uow.TaskRepository()
	if err = taskRepo.Update(ctx, current); err != nil {
		return nil, err
	}
	if err = taskRepo.Add(ctx, successor); err != nil {
		return nil, err
	}

	if err = owner.AttachTask(successor.ID(), now); err != nil {
		return nil, err
	}
	if err = uow.OrderRepository().Update(ctx, owner); err != nil {
		return nil, err
	}
	return successor, nil
}
