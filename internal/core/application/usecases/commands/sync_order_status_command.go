package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/task"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrSyncOrderStatusCommandIsNotConstructed = errors.New(
	"SyncOrderStatusCommand must be created via a NewSyncOrderStatusCommand constructor",
)

// SyncOrderStatusCommand asks for an order's status to be brought in line
// with its tasks.
//
// A command built by NewTaskSavedSyncCommand carries the stage of the task
// that was just saved, and the status policy is applied to that stage. A
// manual command carries no stage; the most recently updated task of the
// order is used instead.
type SyncOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	taskID  *kernel.UUID
	stage   task.Stage

	guard guard.ConstructorGuard
}

// NewSyncOrderStatusCommand builds a manual resync of orderID.
func NewSyncOrderStatusCommand(orderID kernel.UUID) (SyncOrderStatusCommand, error) {
	command := SyncOrderStatusCommand{guard: guard.NewConstructorGuard()}
	if err := command.setOrderID(orderID); err != nil {
		return SyncOrderStatusCommand{}, err
	}
	return command, nil
}

// NewTaskSavedSyncCommand builds the synchronization that follows a task write.
func NewTaskSavedSyncCommand(orderID, taskID kernel.UUID, stage task.Stage) (SyncOrderStatusCommand, error) {
	command := SyncOrderStatusCommand{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTrigger(taskID, stage),
	); err != nil {
		return SyncOrderStatusCommand{}, err
	}
	return command, nil
}

func (c SyncOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrSyncOrderStatusCommandIsNotConstructed)
}

func (c SyncOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }

// TaskID is the saved task that triggered the sync, nil for a manual sync.
func (c SyncOrderStatusCommand) TaskID() *kernel.UUID { return c.taskID }

// Stage is task.UnknownStage for a manual sync.
func (c SyncOrderStatusCommand) Stage() task.Stage { return c.stage }

// IsManual reports whether the command recomputes from stored tasks.
func (c SyncOrderStatusCommand) IsManual() bool { return c.taskID == nil }

func (c *SyncOrderStatusCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	c.orderID = id
	return nil
}

func (c *SyncOrderStatusCommand) setTrigger(taskID kernel.UUID, stage task.Stage) error {
	if err := taskID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("taskId", err)
	}
	if err := stage.Validate(); err != nil {
		return err
	}
	c.taskID = &taskID
	c.stage = stage
	return nil
}
