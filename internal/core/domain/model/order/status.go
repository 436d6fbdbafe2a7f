package order

import (
	"fmt"
	"strings"

	"atelier/internal/core/domain/model/task"
	"atelier/internal/pkg/errs"
)

// Status is the aggregate production status of an order. The numeric order
// follows the shop floor sequence and is used as a rank by monotonic policies.
type Status int

const (
	Unknown Status = iota
	Placed
	Cutting
	Handworking
	Tailoring
	QualityCheck
	ReadyToDeliver
	Delivered
)

var statusNames = map[Status]string{
	Placed:         "Placed",
	Cutting:        "Cutting",
	Handworking:    "Handworking",
	Tailoring:      "Tailoring",
	QualityCheck:   "Quality Check",
	ReadyToDeliver: "Ready to Deliver",
	Delivered:      "Delivered",
}

// stageStatuses maps a production stage onto the order status it announces.
var stageStatuses = map[task.Stage]Status{
	task.Cutting:      Cutting,
	task.Handworking:  Handworking,
	task.Tailoring:    Tailoring,
	task.QualityCheck: QualityCheck,
}

// StatusForStage returns the order status label for a stage, if one is defined.
func StatusForStage(stage task.Stage) (Status, bool) {
	s, ok := stageStatuses[stage]
	return s, ok
}

// ParseStatus accepts display names ("Ready to Deliver") and compact forms ("ReadyToDeliver").
func ParseStatus(s string) (Status, error) {
	key := compact(s)
	for status, name := range statusNames {
		if compact(name) == key {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not an order status", s))
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

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// IsProduction reports whether the status is one announced by a stage.
func (s Status) IsProduction() bool {
	for _, st := range stageStatuses {
		if st == s {
			return true
		}
	}
	return false
}

func compact(s string) string {
	return strings.ToLower(strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.TrimSpace(s)))
}
