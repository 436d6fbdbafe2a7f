package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// ListTasksQueryHandler lists tasks across all orders, newest first.
type ListTasksQueryHandler struct {
	db *gorm.DB
}

func NewListTasksQueryHandler(db *gorm.DB) ListTasksQueryHandler {
	return ListTasksQueryHandler{db: db}
}

func (h ListTasksQueryHandler) Handle(ctx context.Context, query ListTasksQuery) ([]TaskView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		where []string
		args  []any
	)
	if stage := query.Stage(); stage != nil {
		where = append(where, "t.stage = ?")
		args = append(args, int(*stage))
	}
	if status := query.Status(); status != nil {
		where = append(where, "t.status = ?")
		args = append(args, int(*status))
	}

	sql := `SELECT ` + taskViewColumns + `
		FROM tasks t
		JOIN orders o ON o.id = t.order_id`
	if len(where) > 0 {
		sql += "\n\t\tWHERE " + strings.Join(where, " AND ")
	}
	sql += "\n\t\tORDER BY t.updated_at DESC, t.id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	return scanTaskViews(rows)
}
