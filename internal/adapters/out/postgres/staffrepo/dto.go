// Package staffrepo stores the staff read model and loads it from a YAML seed file.
package staffrepo

import (
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

// StaffDTO represents a staff record as stored in the database.
type StaffDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Role       string    `gorm:"type:varchar(32);not null;index"`
	Certified  bool      `gorm:"not null;default:false"`
	Experience int       `gorm:"not null;default:0"`
	IsActive   bool      `gorm:"not null"`
}

// TableName specifies the database table name for staff records.
func (StaffDTO) TableName() string {
	return "staff"
}

func fromDomain(s *staff.Staff) StaffDTO {
	return StaffDTO{
		ID:         s.ID().Bytes(),
		Name:       s.Name(),
		Role:       s.Role().String(),
		Certified:  s.IsCertified(),
		Experience: s.Experience(),
		IsActive:   s.IsActive(),
	}
}

func toDomain(dto StaffDTO) (*staff.Staff, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	return staff.NewStaff(id, dto.Name, staff.Role(dto.Role), dto.Certified, dto.Experience, dto.IsActive)
}
