package task

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// Status is the progress of a single task.
//
//	Pending <──> In Progress <──> Done
//	   │              │
//	   └──────────────┴────> Reassigned (only via Task.Reassign, final)
type Status int

const (
	UnknownStatus Status = iota
	Pending
	InProgress
	Done
	Reassigned
)

var statusNames = map[Status]string{
	Pending:    "Pending",
	InProgress: "In Progress",
	Done:       "Done",
	Reassigned: "Reassigned",
}

// ParseStatus accepts "In Progress", "InProgress", "in_progress" and friends.
func ParseStatus(s string) (Status, error) {
	key := normalize(s)
	for status, name := range statusNames {
		if normalize(name) == key {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a task status", s))
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// ValidateSettable rejects statuses that a status update may not set directly.
func (s Status) ValidateSettable() error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s == Reassigned {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s can only be reached through reassignment", s),
		)
	}
	return nil
}
