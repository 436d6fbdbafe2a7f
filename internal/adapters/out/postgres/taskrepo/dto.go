// Package taskrepo persists task aggregates together with their assignment history.
package taskrepo

import (
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/task"

	"github.com/google/uuid"
)

// TaskDTO represents the database structure for persisting task aggregates.
// The active-task uniqueness rule is enforced by a partial unique index
// created in the schema migration, not by a gorm tag.
type TaskDTO struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID         `gorm:"type:uuid;not null;index"`
	Stage        int               `gorm:"not null"`
	AssignedTo   uuid.UUID         `gorm:"type:uuid;not null;index"`
	AssignedBy   uuid.UUID         `gorm:"type:uuid;not null"`
	Deadline     *time.Time        `gorm:"default:null"`
	Status       int               `gorm:"not null"`
	Remarks      string            `gorm:"type:text"`
	StartedAt    *time.Time        `gorm:"default:null"`
	CompletedAt  *time.Time        `gorm:"default:null"`
	IsReassigned bool              `gorm:"not null;default:false"`
	CreatedAt    time.Time         `gorm:"autoCreateTime:false"`
	UpdatedAt    time.Time         `gorm:"autoUpdateTime:false;index"`
	History      []HistoryEntryDTO `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for task entities.
func (TaskDTO) TableName() string {
	return "tasks"
}

// HistoryEntryDTO is one row of a task's append-only history. Seq is the
// entry's position in the history, so re-saving a task never duplicates rows.
type HistoryEntryDTO struct {
	TaskID uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Seq    int        `gorm:"primaryKey;autoIncrement:false"`
	Action string     `gorm:"type:varchar(32);not null"`
	From   *uuid.UUID `gorm:"column:from_staff_id;type:uuid"`
	To     *uuid.UUID `gorm:"column:to_staff_id;type:uuid"`
	Note   string     `gorm:"type:text"`
	At     time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for history rows.
func (HistoryEntryDTO) TableName() string {
	return "task_history"
}

func fromDomain(t *task.Task) TaskDTO {
	taskID := t.ID().Bytes()
	history := make([]HistoryEntryDTO, 0, len(t.History()))
	for i, h := range t.History() {
		history = append(history, HistoryEntryDTO{
			TaskID: taskID,
			Seq:    i,
			Action: string(h.Action()),
			From:   rawID(h.From()),
			To:     rawID(h.To()),
			Note:   h.Note(),
			At:     h.At(),
		})
	}

	return TaskDTO{
		ID:           taskID,
		OrderID:      t.OrderID().Bytes(),
		Stage:        int(t.Stage()),
		AssignedTo:   t.AssignedTo().Bytes(),
		AssignedBy:   t.AssignedBy().Bytes(),
		Deadline:     t.Deadline(),
		Status:       int(t.Status()),
		Remarks:      t.Remarks(),
		StartedAt:    t.StartedAt(),
		CompletedAt:  t.CompletedAt(),
		IsReassigned: t.IsReassigned(),
		CreatedAt:    t.CreatedAt(),
		UpdatedAt:    t.UpdatedAt(),
		History:      history,
	}
}

func toDomain(dto TaskDTO) (*task.Task, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromGoogle(dto.OrderID)
	if err != nil {
		return nil, err
	}
	assignedTo, err := kernel.UUIDFromGoogle(dto.AssignedTo)
	if err != nil {
		return nil, err
	}
	assignedBy, err := kernel.UUIDFromGoogle(dto.AssignedBy)
	if err != nil {
		return nil, err
	}

	history := make([]task.HistoryEntry, 0, len(dto.History))
	for _, h := range dto.History {
		from, fromErr := domainID(h.From)
		if fromErr != nil {
			return nil, fromErr
		}
		to, toErr := domainID(h.To)
		if toErr != nil {
			return nil, toErr
		}
		history = append(history, task.NewHistoryEntry(task.Action(h.Action), from, to, h.Note, h.At))
	}

	return task.RestoreTask(
		id, orderID,
		task.Stage(dto.Stage),
		assignedTo, assignedBy,
		dto.Deadline,
		task.Status(dto.Status),
		dto.Remarks,
		dto.StartedAt, dto.CompletedAt,
		dto.IsReassigned,
		history,
		dto.CreatedAt, dto.UpdatedAt,
	)
}

func rawID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func domainID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromGoogle(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
