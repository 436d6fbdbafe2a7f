// Package queries contains read operations over orders, tasks and staff.
// Queries bypass the aggregates and read flat projections straight from the
// database; they never open a unit of work and never publish events.
package queries

import (
	"database/sql"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/task"

	"github.com/google/uuid"
)

// TaskView is the read model of a task joined with the number of its order.
// It satisfies services.PartitionItem so worklists can be partitioned
// without converting to the aggregate.
type TaskView struct {
	ID           kernel.UUID
	OrderID      kernel.UUID
	OrderNo      string
	Stage        task.Stage
	AssignedTo   kernel.UUID
	AssignedBy   kernel.UUID
	Status       task.Status
	Deadline     *time.Time
	Remarks      string
	IsReassigned bool
	StartedAt    *time.Time
	CompletedAt  *time.Time
	UpdatedAt    time.Time
}

func (v TaskView) Key() (string, task.Stage) { return v.OrderNo, v.Stage }
func (v TaskView) TaskStatus() task.Status { return v.Status }
func (v TaskView) Reassigned() bool { return v.IsReassigned }
func (v TaskView) LastUpdated() time.Time { return v.UpdatedAt }
func (v TaskView) SortID() string { return v.ID.String() }

// taskViewColumns is shared by every query returning TaskView rows; the
// tasks table is aliased t and orders o.
const taskViewColumns = `
	t.id,
	t.order_id,
	o.order_no,
	t.stage,
	t.assigned_to,
	t.assigned_by,
	t.status,
	t.deadline,
	t.remarks,
	t.is_reassigned,
	t.started_at,
	t.completed_at,
	t.updated_at`

func scanTaskViews(rows *sql.Rows) ([]TaskView, error) {
	defer rows.Close()

	views := make([]TaskView, 0)
	for rows.Next() {
		var (
			v                           TaskView
			id, orderID, to, by         uuid.UUID
			stage, status               int
			deadline, started, finished sql.NullTime
			remarks                     sql.NullString
		)
		if err := rows.Scan(
			&id,
			&orderID,
			&v.OrderNo,
			&stage,
			&to,
			&by,
			&status,
			&deadline,
			&remarks,
			&v.IsReassigned,
			&started,
			&finished,
			&v.UpdatedAt,
		); err != nil {
			return nil, err
		}

		ids := []*kernel.UUID{&v.ID, &v.OrderID, &v.AssignedTo, &v.AssignedBy}
		for i, raw := range []uuid.UUID{id, orderID, to, by} {
			converted, err := kernel.UUIDFromGoogle(raw)
			if err != nil {
				return nil, err
			}
			*ids[i] = converted
		}

		v.Stage = task.Stage(stage)
		v.Status = task.Status(status)
		v.Remarks = remarks.String
		v.Deadline = nullTime(deadline)
		v.StartedAt = nullTime(started)
		v.CompletedAt = nullTime(finished)
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return views, nil
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
