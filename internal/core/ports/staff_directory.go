package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/staff"
)

// StaffDirectory is the read-only view of staff records the workflow depends on.
type StaffDirectory interface {
	// Get retrieves a staff member by id, or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error)

	// ListByRole returns every staff member holding role, active or not.
	ListByRole(ctx context.Context, role staff.Role) ([]*staff.Staff, error)
}
