package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"atelier/internal/pkg/errs"
)

const maxOrderNumberLength = 64

var orderNumberPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_\-/]*$`)

// ErrOrderNumberIsNotConstructed is returned when validating a zero-value OrderNumber.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError("orderNo")

// OrderNumber is the human-facing, immutable, shop-unique identifier of an
// order or line item, e.g. "ORD-100" or "ORD-200/1".
type OrderNumber struct {
	value string
}

// NewOrderNumber trims s and validates its shape.
func NewOrderNumber(s string) (OrderNumber, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return OrderNumber{}, errs.NewValueIsRequiredError("orderNo")
	}
	if len(s) > maxOrderNumberLength {
		return OrderNumber{}, errs.NewValueIsOutOfRangeError("orderNo length", len(s), 1, maxOrderNumberLength)
	}
	if !orderNumberPattern.MatchString(s) {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("orderNo", fmt.Errorf("%q has unsupported characters", s))
	}
	return OrderNumber{value: s}, nil
}

func (n OrderNumber) String() string {
	return n.value
}

// Validate fails for the zero value.
func (n OrderNumber) Validate() error {
	if n.value == "" {
		return ErrOrderNumberIsNotConstructed
	}
	return nil
}
