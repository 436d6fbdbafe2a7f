package services

import (
	"fmt"
	"strings"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/task"
	"atelier/internal/pkg/errs"
)

// Policy names accepted by NewStatusPolicy.
const (
	LastWriteWinsPolicy = "last-write-wins"
	MonotonicPolicy     = "monotonic"
)

// StatusPolicy decides the order status that follows from saving a task of
// the given stage while the order is in status current.
//
// Decide returns the target status and whether the order must be written.
// Implementations must be deterministic so that repeated synchronization for
// the same task is idempotent.
type StatusPolicy interface {
	Name() string
	Decide(current order.Status, stage task.Stage) (order.Status, bool)
}

// NewStatusPolicy resolves a policy by its configuration name.
// An empty name selects LastWriteWins.
func NewStatusPolicy(name string) (StatusPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", LastWriteWinsPolicy:
		return LastWriteWins{}, nil
	case MonotonicPolicy:
		return Monotonic{}, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("statusPolicy", fmt.Errorf("unknown policy %q", name))
	}
}

// LastWriteWins sets the order status to the label of whichever stage was
// saved most recently, even if that moves the order backwards.
type LastWriteWins struct{}

func (LastWriteWins) Name() string { return LastWriteWinsPolicy }

func (LastWriteWins) Decide(current order.Status, stage task.Stage) (order.Status, bool) {
	target, ok := order.StatusForStage(stage)
	if !ok || current.IsTerminal() {
		return current, false
	}
	return target, target != current
}

// Monotonic only moves an order forward along the shop floor sequence.
// A save for an earlier stage leaves the status as it is.
type Monotonic struct{}

func (Monotonic) Name() string { return MonotonicPolicy }

func (Monotonic) Decide(current order.Status, stage task.Stage) (order.Status, bool) {
	target, ok := order.StatusForStage(stage)
	if !ok || current.IsTerminal() {
		return current, false
	}
	if target <= current {
		return current, false
	}
	return target, true
}
