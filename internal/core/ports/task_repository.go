package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/task"
)

// TaskRepository defines the persistence contract for task aggregates,
// including their assignment history.
type TaskRepository interface {
	// Add persists a new task. A second active task for the same order and
	// stage is reported as errs.ErrObjectConflict.
	Add(ctx context.Context, aggregate *task.Task) error

	// Update persists the task and appends history entries it does not have yet.
	Update(ctx context.Context, aggregate *task.Task) error

	// Get retrieves a task with its history, or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*task.Task, error)

	// Delete removes a task and its history.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetActive returns the active task of orderID for stage, or errs.ErrObjectNotFound.
	GetActive(ctx context.Context, orderID kernel.UUID, stage task.Stage) (*task.Task, error)

	// CountActive counts active tasks of orderID for stage.
	CountActive(ctx context.Context, orderID kernel.UUID, stage task.Stage) (int64, error)

	// GetLatestForOrder returns the most recently updated task of orderID,
	// preferring tasks that were not reassigned, or errs.ErrObjectNotFound
	// when the order has no tasks.
	GetLatestForOrder(ctx context.Context, orderID kernel.UUID) (*task.Task, error)
}
