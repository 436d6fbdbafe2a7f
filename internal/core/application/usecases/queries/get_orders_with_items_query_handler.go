package queries

import (
	"context"
	"database/sql"
	"sort"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/task"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersWithItemsQueryHandler reads the order overview with two queries:
// one for all orders and one for all active tasks, joined in memory.
type GetOrdersWithItemsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersWithItemsQueryHandler(db *gorm.DB) GetOrdersWithItemsQueryHandler {
	return GetOrdersWithItemsQueryHandler{db: db}
}

// Handle returns main orders oldest first. A line item whose parent is
// missing is listed as a group of its own rather than dropped.
func (h GetOrdersWithItemsQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersWithItemsQuery,
) ([]GetOrdersWithItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.loadOrders(ctx)
	if err != nil {
		return nil, err
	}
	active, err := h.loadActiveTasks(ctx)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].ActiveTasks = active[orders[i].ID]
		if orders[i].ActiveTasks == nil {
			orders[i].ActiveTasks = []ActiveTaskView{}
		}
	}

	groups := make([]GetOrdersWithItemsQueryResponse, 0)
	index := make(map[kernel.UUID]int)
	for _, o := range orders {
		if o.ParentID == nil {
			index[o.ID] = len(groups)
			groups = append(groups, GetOrdersWithItemsQueryResponse{Order: o, Items: []OrderView{}})
		}
	}
	for _, o := range orders {
		if o.ParentID == nil {
			continue
		}
		if i, ok := index[*o.ParentID]; ok {
			groups[i].Items = append(groups[i].Items, o)
			continue
		}
		groups = append(groups, GetOrdersWithItemsQueryResponse{Order: o, Items: []OrderView{}})
	}

	return groups, nil
}

func (h GetOrdersWithItemsQueryHandler) loadOrders(ctx context.Context) ([]OrderView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_no,
			parent_id,
			category,
			priority,
			status,
			expected_date,
			actual_delivery_date,
			created_at
		FROM orders
		ORDER BY created_at, order_no
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	for rows.Next() {
		var (
			v         OrderView
			id        uuid.UUID
			parentID  uuid.NullUUID
			priority  string
			status    int
			delivered sql.NullTime
		)
		if err := rows.Scan(
			&id,
			&v.OrderNo,
			&parentID,
			&v.Category,
			&priority,
			&status,
			&v.ExpectedDate,
			&delivered,
			&v.CreatedAt,
		); err != nil {
			return nil, err
		}

		if v.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if parentID.Valid {
			parent, err := kernel.UUIDFromGoogle(parentID.UUID)
			if err != nil {
				return nil, err
			}
			v.ParentID = &parent
		}
		v.Priority = order.Priority(priority)
		v.Status = order.Status(status)
		v.ActualDeliveryDate = nullTime(delivered)
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return views, nil
}

func (h GetOrdersWithItemsQueryHandler) loadActiveTasks(ctx context.Context) (map[kernel.UUID][]ActiveTaskView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			stage,
			assigned_to,
			status,
			deadline,
			updated_at
		FROM tasks
		WHERE is_reassigned = ? AND status <> ?
	`, false, int(task.Reassigned)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byOrder := make(map[kernel.UUID][]ActiveTaskView)
	for rows.Next() {
		var (
			v               ActiveTaskView
			id, orderID, to uuid.UUID
			stage, status   int
			deadline        sql.NullTime
		)
		if err := rows.Scan(&id, &orderID, &stage, &to, &status, &deadline, &v.UpdatedAt); err != nil {
			return nil, err
		}

		owner, err := kernel.UUIDFromGoogle(orderID)
		if err != nil {
			return nil, err
		}
		if v.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if v.AssignedTo, err = kernel.UUIDFromGoogle(to); err != nil {
			return nil, err
		}
		v.Stage = task.Stage(stage)
		v.Status = task.Status(status)
		v.Deadline = nullTime(deadline)
		byOrder[owner] = append(byOrder[owner], v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, tasks := range byOrder {
		sort.Slice(tasks, func(i, j int) bool { return tasks[i].Stage < tasks[j].Stage })
	}
	return byOrder, nil
}
