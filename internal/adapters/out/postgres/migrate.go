package postgres

import (
	"fmt"

	"atelier/internal/adapters/out/postgres/orderrepo"
	"atelier/internal/adapters/out/postgres/staffrepo"
	"atelier/internal/adapters/out/postgres/taskrepo"
	"atelier/internal/core/domain/model/task"

	"gorm.io/gorm"
)

// activeTaskIndex allows at most one task per order and stage that is neither
// flagged as reassigned nor in Reassigned status. The statement is valid for
// both PostgreSQL and SQLite.
var activeTaskIndex = fmt.Sprintf(
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_tasks_active_stage ON tasks (order_id, stage) `+
		`WHERE is_reassigned = false AND status <> %d`,
	int(task.Reassigned),
)

// Migrate creates or updates the schema for orders, tasks, task history and staff.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&taskrepo.TaskDTO{},
		&taskrepo.HistoryEntryDTO{},
		&staffrepo.StaffDTO{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if err := db.Exec(activeTaskIndex).Error; err != nil {
		return fmt.Errorf("create active task index: %w", err)
	}
	return nil
}
