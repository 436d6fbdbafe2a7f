package queries

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/staff"
	"atelier/internal/core/domain/services"
	"atelier/internal/core/ports"
)

// GetAssignableStaffQueryResponse is one ranked assignment candidate.
type GetAssignableStaffQueryResponse struct {
	ID         kernel.UUID
	Name       string
	Role       staff.Role
	Certified  bool
	Experience int
}

// GetAssignableStaffQueryHandler ranks the staff holding the role that
// conventionally works a stage. Ranking itself lives in services.StaffRanker.
type GetAssignableStaffQueryHandler struct {
	directory ports.StaffDirectory
	ranker    services.StaffRanker
}

func NewGetAssignableStaffQueryHandler(directory ports.StaffDirectory) GetAssignableStaffQueryHandler {
	return GetAssignableStaffQueryHandler{directory: directory, ranker: services.NewStaffRanker()}
}

func (h GetAssignableStaffQueryHandler) Handle(
	ctx context.Context,
	query GetAssignableStaffQuery,
) ([]GetAssignableStaffQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	role, err := staff.RoleForStage(query.Stage())
	if err != nil {
		return nil, err
	}
	members, err := h.directory.ListByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	ranked, err := h.ranker.Rank(query.Stage(), members)
	if err != nil {
		return nil, err
	}

	result := make([]GetAssignableStaffQueryResponse, 0, len(ranked))
	for _, m := range ranked {
		result = append(result, GetAssignableStaffQueryResponse{
			ID:         m.ID(),
			Name:       m.Name(),
			Role:       m.Role(),
			Certified:  m.IsCertified(),
			Experience: m.Experience(),
		})
	}
	return result, nil
}
