package queries

import (
	"context"

	"atelier/internal/core/domain/services"
	"atelier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetTasksForStaffQueryResponse is a staff task board: every task ever
// assigned to the member, deduplicated per order number and stage and
// bucketed by status. A task handed over to someone else shows up in
// Reassigned and nowhere else.
type GetTasksForStaffQueryResponse = services.Partition[TaskView]

// GetTasksForStaffQueryHandler reads the worklist of a staff member.
type GetTasksForStaffQueryHandler struct {
	db *gorm.DB
}

func NewGetTasksForStaffQueryHandler(db *gorm.DB) GetTasksForStaffQueryHandler {
	return GetTasksForStaffQueryHandler{db: db}
}

// Handle loads the member's task rows and partitions them with
// services.PartitionTasks. An unknown staff id is reported as not found.
func (h GetTasksForStaffQueryHandler) Handle(
	ctx context.Context,
	query GetTasksForStaffQuery,
) (GetTasksForStaffQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTasksForStaffQueryResponse{}, err
	}

	var known int64
	if err := h.db.WithContext(ctx).
		Table("staff").
		Where("id = ?", query.StaffID().Bytes()).
		Count(&known).Error; err != nil {
		return GetTasksForStaffQueryResponse{}, err
	}
	if known == 0 {
		return GetTasksForStaffQueryResponse{}, errs.NewObjectNotFoundError("staffId", query.StaffID().String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+taskViewColumns+`
		FROM tasks t
		JOIN orders o ON o.id = t.order_id
		WHERE t.assigned_to = ?
	`, query.StaffID().Bytes()).Rows()
	if err != nil {
		return GetTasksForStaffQueryResponse{}, err
	}

	views, err := scanTaskViews(rows)
	if err != nil {
		return GetTasksForStaffQueryResponse{}, err
	}

	return services.PartitionTasks(views), nil
}
