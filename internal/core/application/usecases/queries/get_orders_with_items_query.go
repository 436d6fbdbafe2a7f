package queries

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/task"
	"atelier/internal/pkg/guard"
)

var (
	ErrGetOrdersWithItemsQueryIsNotConstructed = errors.New(
		"GetOrdersWithItemsQuery must be created via NewGetOrdersWithItemsQuery constructor",
	)
)

// GetOrdersWithItemsQuery retrieves every main order grouped with its line
// items. Each order carries the active task of every stage that has one.
//
// Example:
//
//	query := NewGetOrdersWithItemsQuery()
//	handler := NewGetOrdersWithItemsQueryHandler(db)
//
//	groups, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load orders: %w", err)
//	}
//	for _, g := range groups {
//	    fmt.Printf("%s (%s): %d items\n", g.Order.OrderNo, g.Order.Status, len(g.Items))
//	}
type GetOrdersWithItemsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrdersWithItemsQuery() GetOrdersWithItemsQuery {
	return GetOrdersWithItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersWithItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersWithItemsQueryIsNotConstructed)
}

// ActiveTaskView is the live assignment of one stage.
type ActiveTaskView struct {
	ID         kernel.UUID
	Stage      task.Stage
	AssignedTo kernel.UUID
	Status     task.Status
	Deadline   *time.Time
	UpdatedAt  time.Time
}

// OrderView is the flat read model of a main order or a line item.
// ActiveTasks is sorted by stage.
type OrderView struct {
	ID                 kernel.UUID
	OrderNo            string
	ParentID           *kernel.UUID
	Category           string
	Priority           order.Priority
	Status             order.Status
	ExpectedDate       time.Time
	ActualDeliveryDate *time.Time
	CreatedAt          time.Time
	ActiveTasks        []ActiveTaskView
}

// GetOrdersWithItemsQueryResponse groups a main order with its line items,
// both in creation order.
type GetOrdersWithItemsQueryResponse struct {
	Order OrderView
	Items []OrderView
}
