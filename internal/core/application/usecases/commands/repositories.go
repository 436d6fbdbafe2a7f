// Package commands contains the operations that change workflow state:
// order intake, task assignment, reassignment, status updates, deletion and
// order status synchronization.
// Every handler validates its command, opens a unit of work, mutates the
// aggregates and commits. Tasks written through the unit of work are
// announced as TaskSaved events after the commit.
package commands

import (
	"context"

	"atelier/internal/core/ports"
)

// Unit of Work interfaces give command handlers a transaction boundary and
// repositories bound to it.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TaskRepoFactory provides access to task repository within a transaction.
	TaskRepoFactory interface {
		TaskRepository() ports.TaskRepository
	}

	// StaffDirectoryFactory provides read access to staff records within a transaction.
	StaffDirectoryFactory interface {
		StaffDirectory() ports.StaffDirectory
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions spanning orders, tasks and the staff directory.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   taskRepo := uow.TaskRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		TaskRepoFactory
		StaffDirectoryFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
