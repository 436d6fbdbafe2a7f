package task

import (
	"errors"
	"fmt"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

var (
	// ErrTaskIsNotConstructed is returned when a Task was not created through NewTask or RestoreTask.
	ErrTaskIsNotConstructed = errors.New("Task must be created via NewTask constructor")

	// ErrTaskIsNotActive is returned when mutating a task that has already been reassigned.
	ErrTaskIsNotActive = errs.NewObjectConflictError("task", "has been reassigned and is no longer active")
)

// Task binds one stage of an order (or line item) to a staff member.
//
// Task follows these invariants:
//   - Identity, owning order, stage, assignee and assigner are always set
//   - History is append-only
//   - Once reassigned the task is frozen
type Task struct {
	id          kernel.UUID
	orderID     kernel.UUID
	stage       Stage
	assignedTo  kernel.UUID
	assignedBy  kernel.UUID
	deadline    *time.Time
	status      Status
	remarks     string
	startedAt   *time.Time
	completedAt *time.Time
	reassigned  bool
	history     []HistoryEntry
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewTask creates a Pending task with a single "assigned" history entry.
//
// Example:
//
//	t, err := task.NewTask(kernel.NewUUID(), orderID, task.Cutting, cutterID, managerID, &deadline, "", time.Now())
//	if err != nil {
//	    return err
//	}
func NewTask(
	id, orderID kernel.UUID,
	stage Stage,
	assignedTo, assignedBy kernel.UUID,
	deadline *time.Time,
	remarks string,
	now time.Time,
) (*Task, error) {
	if err := validateDeadline(deadline, now); err != nil {
		return nil, err
	}
	return newTask(id, orderID, stage, assignedTo, assignedBy, deadline, remarks, "", now)
}

func newTask(
	id, orderID kernel.UUID,
	stage Stage,
	assignedTo, assignedBy kernel.UUID,
	deadline *time.Time,
	remarks, note string,
	now time.Time,
) (*Task, error) {
	t := &Task{
		stage:         stage,
		status:        Pending,
		deadline:      copyTime(deadline),
		remarks:       remarks,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}
	if err := errors.Join(
		t.setID(id),
		t.setOrderID(orderID),
		stage.Validate(),
		t.setAssignee(assignedTo),
		t.setAssigner(assignedBy),
	); err != nil {
		return nil, err
	}

	t.history = []HistoryEntry{NewHistoryEntry(ActionAssigned, nil, ref(assignedTo), note, now)}
	return t, nil
}

// RestoreTask rebuilds a task from storage without applying creation rules.
func RestoreTask(
	id, orderID kernel.UUID,
	stage Stage,
	assignedTo, assignedBy kernel.UUID,
	deadline *time.Time,
	status Status,
	remarks string,
	startedAt, completedAt *time.Time,
	reassigned bool,
	history []HistoryEntry,
	createdAt, updatedAt time.Time,
) (*Task, error) {
	t := &Task{
		stage:         stage,
		status:        status,
		deadline:      deadline,
		remarks:       remarks,
		startedAt:     startedAt,
		completedAt:   completedAt,
		reassigned:    reassigned,
		history:       append([]HistoryEntry(nil), history...),
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}
	if err := errors.Join(
		t.setID(id),
		t.setOrderID(orderID),
		stage.Validate(),
		status.Validate(),
		t.setAssignee(assignedTo),
		t.setAssigner(assignedBy),
	); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate ensures the task was built through a constructor.
func (t *Task) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTaskIsNotConstructed
	}
	return nil
}

func (t *Task) ID() kernel.UUID { return t.id }
func (t *Task) OrderID() kernel.UUID { return t.orderID }
func (t *Task) Stage() Stage { return t.stage }
func (t *Task) AssignedTo() kernel.UUID { return t.assignedTo }
func (t *Task) AssignedBy() kernel.UUID { return t.assignedBy }
func (t *Task) Deadline() *time.Time { return copyTime(t.deadline) }
func (t *Task) Status() Status { return t.status }
func (t *Task) Remarks() string { return t.remarks }
func (t *Task) StartedAt() *time.Time { return copyTime(t.startedAt) }
func (t *Task) CompletedAt() *time.Time { return copyTime(t.completedAt) }
func (t *Task) IsReassigned() bool { return t.reassigned }
func (t *Task) CreatedAt() time.Time { return t.createdAt }
func (t *Task) UpdatedAt() time.Time { return t.updatedAt }

// History returns a copy of the task's history entries, oldest first.
func (t *Task) History() []HistoryEntry {
	return append([]HistoryEntry(nil), t.history...)
}

// IsActive reports whether the task is the live assignment for its stage.
func (t *Task) IsActive() bool {
	return !t.reassigned && t.status != Reassigned
}

// UpdateAssignment changes deadline and remarks of an active task in place.
// A nil deadline keeps the current one; an empty remarks string keeps the current remarks.
func (t *Task) UpdateAssignment(deadline *time.Time, remarks string, now time.Time) error {
	if !t.IsActive() {
		return ErrTaskIsNotActive
	}
	if deadline != nil {
		if err := validateDeadline(deadline, now); err != nil {
			return err
		}
		t.deadline = copyTime(deadline)
	}
	if remarks != "" {
		t.remarks = remarks
	}
	t.updatedAt = now
	return nil
}

// ChangeStatus moves an active task between Pending, In Progress and Done.
//
// Entering In Progress stamps startedAt once; entering Done stamps completedAt
// (and startedAt when the task skipped In Progress); leaving Done clears completedAt.
// Every actual change appends a status_changed history entry.
func (t *Task) ChangeStatus(status Status, remarks string, now time.Time) error {
	if err := status.ValidateSettable(); err != nil {
		return err
	}
	if !t.IsActive() {
		return ErrTaskIsNotActive
	}
	if remarks != "" {
		t.remarks = remarks
	}
	if status == t.status {
		t.updatedAt = now
		return nil
	}

	previous := t.status
	switch status {
	case InProgress:
		if t.startedAt == nil {
			t.startedAt = copyTime(&now)
		}
		t.completedAt = nil
	case Done:
		if t.startedAt == nil {
			t.startedAt = copyTime(&now)
		}
		t.completedAt = copyTime(&now)
	case Pending:
		t.completedAt = nil
	}

	t.status = status
	t.history = append(t.history, NewHistoryEntry(
		ActionStatusChanged, nil, nil, fmt.Sprintf("%s -> %s", previous, status), now,
	))
	t.updatedAt = now
	return nil
}

// Reassign hands the stage over to newAssignee.
//
// The receiver is flipped to Reassigned with exactly one new history entry
// {reassigned, from: old assignee, to: newAssignee, note}. The returned task is
// the new active Pending assignment for the same order and stage, keeping the
// deadline and remarks of its predecessor.
func (t *Task) Reassign(newID, newAssignee, reassignedBy kernel.UUID, note string, now time.Time) (*Task, error) {
	if !t.IsActive() {
		return nil, ErrTaskIsNotActive
	}
	if err := newAssignee.Validate(); err != nil {
		return nil, err
	}
	if newAssignee.IsEqual(t.assignedTo) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"staffId",
			fmt.Errorf("task is already assigned to %s", newAssignee),
		)
	}

	successor, err := newTask(
		newID, t.orderID, t.stage, newAssignee, reassignedBy,
		t.deadline, t.remarks, fmt.Sprintf("takes over task %s", t.id), now,
	)
	if err != nil {
		return nil, err
	}

	t.history = append(t.history, NewHistoryEntry(ActionReassigned, ref(t.assignedTo), ref(newAssignee), note, now))
	t.reassigned = true
	t.status = Reassigned
	t.updatedAt = now
	return successor, nil
}

func (t *Task) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Task) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	t.orderID = id
	return nil
}

func (t *Task) setAssignee(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("staffId", err)
	}
	t.assignedTo = id
	return nil
}

func (t *Task) setAssigner(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("assignedBy", err)
	}
	t.assignedBy = id
	return nil
}

func validateDeadline(deadline *time.Time, now time.Time) error {
	if deadline == nil {
		return nil
	}
	if deadline.IsZero() || deadline.Before(now) {
		return errs.NewValueIsInvalidErrorWithCause(
			"deadline",
			fmt.Errorf("%s is in the past", deadline.Format(time.RFC3339)),
		)
	}
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
