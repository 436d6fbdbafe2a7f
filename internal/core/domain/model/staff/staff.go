package staff

import (
	"errors"
	"fmt"
	"strings"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/task"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	// ErrStaffIsNotConstructed is returned when using a Staff value that bypassed NewStaff.
	ErrStaffIsNotConstructed = errors.New("Staff must be created via NewStaff constructor")
	// ErrNameIsRequired is returned when a staff record has no name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Staff is a member of the shop as seen by task assignment.
//
// Business rules:
//   - Staff must have a valid UUID, a non-empty name and a known role
//   - Experience is counted in whole years and is never negative
//   - Inactive staff keep their existing tasks but receive no new ones
type Staff struct {
	// id uniquely identifies the staff member
	id kernel.UUID
	// name is the display name shown on task boards
	name string
	// role decides which stages the member normally works on
	role Role
	// certified marks staff holding a trade certification
	certified bool
	// experience is the number of years in the trade
	experience int
	// active is false for staff who left or are on extended leave
	active bool
	// guard ensures the staff value was properly constructed
	guard guard.ConstructorGuard
}

// NewStaff builds a staff record. It is used both by the staff directory when
// loading records and by tests.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - name: Display name (must be non-empty after trimming)
//   - role: One of the known roles
//   - certified: Whether the member holds a trade certification
//   - experience: Years in the trade, 0 to 80
//   - active: Whether the member can receive new tasks
//
// Example:
//
//	s, err := staff.NewStaff(kernel.NewUUID(), "Ravi", staff.Cutter, true, 7, true)
//	if err != nil {
//	    return err
//	}
func NewStaff(id kernel.UUID, name string, role Role, certified bool, experience int, active bool) (*Staff, error) {
	s := &Staff{
		certified: certified,
		active:    active,
		guard:     guard.NewConstructorGuard(),
	}
	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setRole(role),
		s.setExperience(experience),
	); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate ensures the staff value was created through NewStaff.
func (s *Staff) Validate() error {
	if s == nil {
		return ErrStaffIsNotConstructed
	}
	return s.guard.Validate(ErrStaffIsNotConstructed)
}

// ID returns the staff member's identifier.
func (s *Staff) ID() kernel.UUID {
	return s.id
}

// Name returns the display name.
func (s *Staff) Name() string {
	return s.name
}

// Role returns the staff member's role.
func (s *Staff) Role() Role {
	return s.role
}

// IsCertified reports whether the member holds a trade certification.
func (s *Staff) IsCertified() bool {
	return s.certified
}

// Experience returns years in the trade.
func (s *Staff) Experience() int {
	return s.experience
}

// IsActive reports whether the member may receive new tasks.
func (s *Staff) IsActive() bool {
	return s.active
}

// CanWork reports whether the member's role is the one expected for stage.
func (s *Staff) CanWork(stage task.Stage) bool {
	role, err := RoleForStage(stage)
	if err != nil {
		return false
	}
	return s.role == role
}

// CheckAssignable returns nil when the member can receive a new task for stage.
//
// Inactive staff are always rejected. A role mismatch is rejected only when
// enforceRole is true; otherwise the stage-role table is advisory and only
// drives ranking.
func (s *Staff) CheckAssignable(stage task.Stage, enforceRole bool) error {
	if !s.active {
		return errs.NewValueIsInvalidErrorWithCause("staffId", fmt.Errorf("staff %s is not active", s.id))
	}
	if enforceRole && !s.CanWork(stage) {
		return errs.NewValueIsInvalidErrorWithCause(
			"staffId",
			fmt.Errorf("%s %s cannot work on stage %s", s.role, s.id, stage),
		)
	}
	return nil
}

func (s *Staff) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Staff) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	s.name = name
	return nil
}

func (s *Staff) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	s.role = role
	return nil
}

func (s *Staff) setExperience(years int) error {
	if years < 0 || years > 80 {
		return errs.NewValueIsOutOfRangeError("experience", years, 0, 80)
	}
	s.experience = years
	return nil
}
