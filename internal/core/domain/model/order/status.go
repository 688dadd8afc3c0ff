package order

import (
	"fmt"
	"strings"

	"registry/internal/pkg/errs"
)

// Status is the lifecycle label of an order.
//
// The five valid values form a flat set: ChangeStatus accepts any valid status
// regardless of the current one, so delivered -> pending is as legal as
// pending -> confirmed. There is no transition graph.
type Status int

const (
	// Unknown is the zero value and is never valid.
	Unknown Status = iota

	// Pending is the initial status of every new order.
	Pending

	Confirmed
	Shipped
	Delivered
	Cancelled
)

// validStatuses lists the valid statuses in their canonical order.
// The order matters: it is how the statuses are enumerated in error messages.
var validStatuses = []Status{Pending, Confirmed, Shipped, Delivered, Cancelled}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Shipped:   "shipped",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// ValidStatuses returns the valid statuses in canonical order.
// The returned slice is a copy and may be modified by the caller.
func ValidStatuses() []Status {
	return append([]Status(nil), validStatuses...)
}

// ParseStatus converts a wire value such as "shipped" into a Status.
// Matching is exact and case-sensitive. The returned error is a
// *errs.ValueIsInvalidError whose cause enumerates every valid value.
//
// Example:
//
//	status, err := order.ParseStatus("delivered")
//	if err != nil {
//	    // err: value is invalid: status (cause: must be one of: pending, confirmed, ...)
//	}
func ParseStatus(s string) (Status, error) {
	for _, status := range validStatuses {
		if status.String() == s {
			return status, nil
		}
	}

	return Unknown, newStatusIsInvalidError(fmt.Errorf("%q is not a valid status", s))
}

// Validate returns an error for Unknown and for any value outside the enumerated set.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return newStatusIsInvalidError(fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

func newStatusIsInvalidError(cause error) error {
	names := make([]string, len(validStatuses))
	for i, status := range validStatuses {
		names[i] = status.String()
	}

	return errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%w, must be one of: %s", cause, strings.Join(names, ", ")),
	)
}
