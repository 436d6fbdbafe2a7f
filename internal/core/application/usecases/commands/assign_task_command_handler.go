package commands

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/task"
	"atelier/internal/pkg/errs"
)

// AssignTaskCommandHandler implements the assignment protocol for one
// (order-or-item, stage) pair:
//   - no active task: a new Pending task is created
//   - active task with another assignee, or a forced reassignment: the
//     reassignment workflow supersedes it
//   - active task with the same assignee: deadline and remarks are updated in place
//
// The owning order's status is synchronized afterwards by the TaskSaved
// subscriber, not by this handler.
type AssignTaskCommandHandler struct {
	uowFactory   UoWFactory
	enforceRoles bool
	clock        Clock
}

// NewAssignTaskCommandHandler creates the handler. With enforceRoles set, a
// staff member whose role does not match the stage is rejected.
func NewAssignTaskCommandHandler(uowFactory UoWFactory, enforceRoles bool, clock Clock) AssignTaskCommandHandler {
	return AssignTaskCommandHandler{
		uowFactory:   uowFactory,
		enforceRoles: enforceRoles,
		clock:        clock,
	}
}

// Handle returns the task that is active for the stage after the call.
func (h AssignTaskCommandHandler) Handle(ctx context.Context, command AssignTaskCommand) (*task.Task, error) {
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

	orderRepo := uow.OrderRepository()
	taskRepo := uow.TaskRepository()
	now := h.clock.now()

	owner, err := loadOpenOrder(ctx, orderRepo, command.OrderID())
	if err != nil {
		return nil, err
	}

	if err = resolveAssignee(ctx, uow, command.StaffID(), command.Stage(), h.enforceRoles); err != nil {
		return nil, err
	}

	var result *task.Task
	active, err := taskRepo.GetActive(ctx, command.OrderID(), command.Stage())
	switch {
	case err == nil && (command.ForceReassign() || !active.AssignedTo().IsEqual(command.StaffID())):
		result, err = reassign(ctx, uow, owner, active, command.StaffID(), command.AssignedBy(), command.Remarks(), now)
		if err != nil {
			return nil, err
		}
		if command.Deadline() != nil {
			if err = result.UpdateAssignment(command.Deadline(), "", now); err != nil {
				return nil, err
			}
			if err = taskRepo.Update(ctx, result); err != nil {
				return nil, err
			}
		}

	case err == nil:
		if err = active.UpdateAssignment(command.Deadline(), command.Remarks(), now); err != nil {
			return nil, err
		}
		if err = taskRepo.Update(ctx, active); err != nil {
			return nil, err
		}
		result = active

	case errors.Is(err, errs.ErrObjectNotFound):
		count, countErr := taskRepo.CountActive(ctx, command.OrderID(), command.Stage())
		if countErr != nil {
			return nil, countErr
		}
		if count > 0 {
			return nil, errs.NewObjectConflictError("stage", command.Stage().String())
		}

		result, err = task.NewTask(
			kernel.NewUUID(),
			command.OrderID(),
			command.Stage(),
			command.StaffID(),
			command.AssignedBy(),
			command.Deadline(),
			command.Remarks(),
			now,
		)
		if err != nil {
			return nil, err
		}
		if err = taskRepo.Add(ctx, result); err != nil {
			return nil, err
		}
		if err = owner.AttachTask(result.ID(), now); err != nil {
			return nil, err
		}
		if err = orderRepo.Update(ctx, owner); err != nil {
			return nil, err
		}

	default:
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return result, nil
}
