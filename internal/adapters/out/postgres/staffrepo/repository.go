package staffrepo

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/staff"
	"atelier/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStaffDirectory implements ports.StaffDirectory using GORM.
type GormStaffDirectory struct {
	db *gorm.DB
}

// NewGormStaffDirectory creates a new GORM-backed staff directory.
func NewGormStaffDirectory(db *gorm.DB) *GormStaffDirectory {
	return &GormStaffDirectory{db: db}
}

// Get retrieves a staff member by ID.
func (r *GormStaffDirectory) Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StaffDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("staff", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListByRole returns all members holding role, ordered by name.
func (r *GormStaffDirectory) ListByRole(ctx context.Context, role staff.Role) ([]*staff.Staff, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}

	var dtos []StaffDTO
	if err := r.db.WithContext(ctx).Where("role = ?", role.String()).Order("name, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	members := make([]*staff.Staff, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		members = append(members, s)
	}
	return members, nil
}

// Save inserts or fully replaces staff records.
func (r *GormStaffDirectory) Save(ctx context.Context, members ...*staff.Staff) error {
	if len(members) == 0 {
		return nil
	}

	dtos := make([]StaffDTO, 0, len(members))
	for _, m := range members {
		if err := m.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(m))
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&dtos).Error
}
