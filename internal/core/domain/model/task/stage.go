package task

import (
	"fmt"
	"strings"

	"atelier/internal/pkg/errs"
)

// Stage is one production step of an order.
type Stage int

const (
	// UnknownStage catches uninitialized values.
	UnknownStage Stage = iota
	Cutting
	Handworking
	Tailoring
	QualityCheck
)

var stageNames = map[Stage]string{
	Cutting:      "Cutting",
	Handworking:  "Handworking",
	Tailoring:    "Tailoring",
	QualityCheck: "Quality Check",
}

// Stages lists every valid stage in production order.
func Stages() []Stage {
	return []Stage{Cutting, Handworking, Tailoring, QualityCheck}
}

// ParseStage accepts the display name ("Quality Check") as well as the
// compact form ("QualityCheck"), case-insensitively.
func ParseStage(s string) (Stage, error) {
	key := normalize(s)
	for stage, name := range stageNames {
		if normalize(name) == key {
			return stage, nil
		}
	}
	return UnknownStage, errs.NewValueIsInvalidErrorWithCause("stage", fmt.Errorf("%q is not a production stage", s))
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Validate fails for UnknownStage and out-of-range values.
func (s Stage) Validate() error {
	if _, ok := stageNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage", fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

func normalize(s string) string {
	return strings.ToLower(strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.TrimSpace(s)))
}
