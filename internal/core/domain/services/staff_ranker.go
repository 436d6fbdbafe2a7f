package services

import (
	"sort"

	"atelier/internal/core/domain/model/staff"
	"atelier/internal/core/domain/model/task"
)

// StaffRanker orders assignment candidates for a production stage.
//
// Business rules:
//   - Only active staff whose role matches the stage (per staff.RoleForStage) qualify
//   - Certified staff come before uncertified staff
//   - Within the same certification, more experience comes first
//   - Remaining ties are broken by name, then id, so the ranking is stable
//
// Example usage:
//
//	ranker := services.NewStaffRanker()
//	candidates, err := ranker.Rank(task.Cutting, allCutters)
//	if err != nil {
//	    return err
//	}
type StaffRanker struct{}

// NewStaffRanker creates a new StaffRanker instance.
func NewStaffRanker() StaffRanker {
	return StaffRanker{}
}

// Rank filters members down to those assignable for stage and sorts them.
// The input slice is not modified.
func (StaffRanker) Rank(stage task.Stage, members []*staff.Staff) ([]*staff.Staff, error) {
	if err := stage.Validate(); err != nil {
		return nil, err
	}

	ranked := make([]*staff.Staff, 0, len(members))
	for _, m := range members {
		if err := m.Validate(); err != nil {
			return nil, err
		}
		if m.IsActive() && m.CanWork(stage) {
			ranked = append(ranked, m)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.IsCertified() != b.IsCertified() {
			return a.IsCertified()
		}
		if a.Experience() != b.Experience() {
			return a.Experience() > b.Experience()
		}
		if a.Name() != b.Name() {
			return a.Name() < b.Name()
		}
		return a.ID().String() < b.ID().String()
	})
	return ranked, nil
}
