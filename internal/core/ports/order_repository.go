// Package ports defines the contracts between the workflow core and its
// infrastructure: repositories, the staff directory, the unit of work, event
// publication and metrics.
package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// main orders and line items alike.
type OrderRepository interface {
	// Add persists a new order. A duplicate order number is reported as
	// errs.ErrObjectConflict.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, task references and delivery date of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id, or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListIDsInProduction returns the ids of orders whose status may still be
	// moved by status synchronization (Placed up to Quality Check), oldest first.
	ListIDsInProduction(ctx context.Context) ([]kernel.UUID, error)
}
