package commands

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/task"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrAssignTaskCommandIsNotConstructed = errors.New(
	"AssignTaskCommand must be created via NewAssignTaskCommand constructor",
)

// AssignTaskCommand binds a production stage of an order or line item to a
// staff member. AssignedBy is the caller; it becomes the task's assigner.
//
// Example:
//
//	cmd, err := NewAssignTaskCommand(itemID, task.Cutting, cutterID, managerID, &deadline, "slim fit", false)
//	if err != nil {
//	    return err
//	}
//	assigned, err := handler.Handle(ctx, cmd)
type AssignTaskCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	stage         task.Stage
	staffID       kernel.UUID
	assignedBy    kernel.UUID
	deadline      *time.Time
	remarks       string
	forceReassign bool

	guard guard.ConstructorGuard
}

// NewAssignTaskCommand validates identifiers and stage. forceReassign asks for
// the reassignment workflow even when the assignee would not change.
func NewAssignTaskCommand(
	orderID kernel.UUID,
	stage task.Stage,
	staffID, assignedBy kernel.UUID,
	deadline *time.Time,
	remarks string,
	forceReassign bool,
) (AssignTaskCommand, error) {
	command := AssignTaskCommand{
		remarks:       remarks,
		forceReassign: forceReassign,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setStage(stage),
		command.setStaffID(staffID),
		command.setAssignedBy(assignedBy),
	); err != nil {
		return AssignTaskCommand{}, err
	}

	if deadline != nil {
		d := *deadline
		command.deadline = &d
	}
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignTaskCommand) Validate() error {
	return c.guard.Validate(ErrAssignTaskCommandIsNotConstructed)
}

func (c AssignTaskCommand) OrderID() kernel.UUID { return c.orderID }
func (c AssignTaskCommand) Stage() task.Stage { return c.stage }
func (c AssignTaskCommand) StaffID() kernel.UUID { return c.staffID }
func (c AssignTaskCommand) AssignedBy() kernel.UUID { return c.assignedBy }
func (c AssignTaskCommand) Deadline() *time.Time { return c.deadline }
func (c AssignTaskCommand) Remarks() string { return c.remarks }
func (c AssignTaskCommand) ForceReassign() bool { return c.forceReassign }

func (c *AssignTaskCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	c.orderID = id
	return nil
}

func (c *AssignTaskCommand) setStage(stage task.Stage) error {
	if err := stage.Validate(); err != nil {
		return err
	}
	c.stage = stage
	return nil
}

func (c *AssignTaskCommand) setStaffID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("staffId", err)
	}
	c.staffID = id
	return nil
}

func (c *AssignTaskCommand) setAssignedBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("assignedBy", err)
	}
	c.assignedBy = id
	return nil
}
