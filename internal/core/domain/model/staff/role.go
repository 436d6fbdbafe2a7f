package staff

import (
	"fmt"
	"strings"

	"atelier/internal/core/domain/model/task"
	"atelier/internal/pkg/errs"
)

// Role is the job a staff member holds in the shop.
type Role string

const (
	Admin      Role = "Admin"
	Manager    Role = "Manager"
	Cutter     Role = "Cutter"
	Tailor     Role = "Tailor"
	Handworker Role = "Handworker"
)

var roles = []Role{Admin, Manager, Cutter, Tailor, Handworker}

// stageRoles is the single source of truth for which role performs a stage.
// Quality checks are carried out by managers.
var stageRoles = map[task.Stage]Role{
	task.Cutting:      Cutter,
	task.Handworking:  Handworker,
	task.Tailoring:    Tailor,
	task.QualityCheck: Manager,
}

// ParseRole matches a role name case-insensitively.
func ParseRole(s string) (Role, error) {
	for _, r := range roles {
		if strings.EqualFold(string(r), strings.TrimSpace(s)) {
			return r, nil
		}
	}
	return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a staff role", s))
}

// RoleForStage returns the role expected to work on stage.
func RoleForStage(stage task.Stage) (Role, error) {
	role, ok := stageRoles[stage]
	if !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("stage", fmt.Errorf("no role is defined for stage %s", stage))
	}
	return role, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) Validate() error {
	if _, err := ParseRole(string(r)); err != nil {
		return err
	}
	return nil
}
