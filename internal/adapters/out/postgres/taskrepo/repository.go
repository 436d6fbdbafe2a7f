package taskrepo

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/task"
	"atelier/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTaskRepository implements ports.TaskRepository using GORM.
type GormTaskRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTaskRepository creates a new GORM task repository.
func NewGormTaskRepository(db *gorm.DB, tracker aggregateTracker) *GormTaskRepository {
	return &GormTaskRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new task and its history. A unique index violation means a
// concurrent writer already created the active task for this stage.
func (r *GormTaskRepository) Add(ctx context.Context, aggregate *task.Task) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectConflictErrorWithCause("stage", aggregate.Stage().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves task columns and inserts history rows that are not stored yet.
// Existing history rows are never rewritten.
func (r *GormTaskRepository) Update(ctx context.Context, aggregate *task.Task) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&TaskDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at", "History").
		Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewObjectConflictErrorWithCause("stage", aggregate.Stage().String(), result.Error)
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("task", aggregate.ID().String())
	}

	if len(dto.History) > 0 {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.History).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a task with its history.
func (r *GormTaskRepository) Get(ctx context.Context, id kernel.UUID) (*task.Task, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TaskDTO
	if err := r.withHistory(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("task", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the task and its history rows.
func (r *GormTaskRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("task_id = ?", id.Bytes()).Delete(&HistoryEntryDTO{}).Error; err != nil {
		return err
	}
	result := db.Where("id = ?", id.Bytes()).Delete(&TaskDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("task", id.String())
	}
	return nil
}

// GetActive returns the live assignment of orderID for stage.
func (r *GormTaskRepository) GetActive(ctx context.Context, orderID kernel.UUID, stage task.Stage) (*task.Task, error) {
	var dto TaskDTO
	err := r.active(r.withHistory(ctx), orderID, stage).
		Order("updated_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("activeTask", orderID.String()+"/"+stage.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// CountActive counts active tasks of orderID for stage.
func (r *GormTaskRepository) CountActive(ctx context.Context, orderID kernel.UUID, stage task.Stage) (int64, error) {
	var count int64
	err := r.active(r.db.WithContext(ctx).Model(&TaskDTO{}), orderID, stage).Count(&count).Error
	return count, err
}

// GetLatestForOrder returns the most recently updated task of orderID that
// has not been reassigned. Reassigned rows are only considered when no other
// task of the order is left.
func (r *GormTaskRepository) GetLatestForOrder(ctx context.Context, orderID kernel.UUID) (*task.Task, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto TaskDTO
	err := r.withHistory(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("is_reassigned, updated_at DESC, created_at DESC, id").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("task", "latest of order "+orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormTaskRepository) withHistory(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("History", func(db *gorm.DB) *gorm.DB {
		return db.Order("seq")
	})
}

func (r *GormTaskRepository) active(db *gorm.DB, orderID kernel.UUID, stage task.Stage) *gorm.DB {
	return db.Where(
		"order_id = ? AND stage = ? AND is_reassigned = ? AND status <> ?",
		orderID.Bytes(), int(stage), false, int(task.Reassigned),
	)
}
