package commands

import (
	"errors"

	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrResyncAllCommandIsNotConstructed = errors.New(
	"ResyncAllCommand must be created via NewResyncAllCommand constructor",
)

const maxResyncWorkers = 256

// ResyncAllCommand resynchronizes every order still in production.
type ResyncAllCommand struct {
	workers int

	guard guard.ConstructorGuard
}

// NewResyncAllCommand limits the pass to workers concurrent synchronizations.
func NewResyncAllCommand(workers int) (ResyncAllCommand, error) {
	if workers < 1 || workers > maxResyncWorkers {
		return ResyncAllCommand{}, errs.NewValueIsOutOfRangeError("workers", workers, 1, maxResyncWorkers)
	}
	return ResyncAllCommand{workers: workers, guard: guard.NewConstructorGuard()}, nil
}

func (c ResyncAllCommand) Validate() error {
	return c.guard.Validate(ErrResyncAllCommandIsNotConstructed)
}

func (c ResyncAllCommand) Workers() int { return c.workers }
