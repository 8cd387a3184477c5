package delivery

import (
	"fmt"
	"strings"

	"dispatch/internal/pkg/errs"
)

// Status is the stored lifecycle state of a delivery.
//
// State transitions:
//
//	PENDING ──> ASSIGNED ──> IN_TRANSIT ──┬──> DELIVERED
//	   │           │             │        └──> FAILED
//	   └───────────┴─────────────┴──────────> CANCELLED
//
// DELIVERED, FAILED and CANCELLED are terminal. The event timeline uses a wider
// vocabulary, see EventLabel.
type Status int

const (
	// StatusUnknown catches uninitialized values.
	StatusUnknown Status = iota
	StatusPending
	StatusAssigned
	StatusInTransit
	StatusDelivered
	StatusFailed
	StatusCancelled
)

var statusNames = map[Status]string{
	StatusUnknown:   "UNKNOWN",
	StatusPending:   "PENDING",
	StatusAssigned:  "ASSIGNED",
	StatusInTransit: "IN_TRANSIT",
	StatusDelivered: "DELIVERED",
	StatusFailed:    "FAILED",
	StatusCancelled: "CANCELLED",
}

// ParseStatus converts a persisted or wire value into a Status.
func ParseStatus(value string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	for status, name := range statusNames {
		if status != StatusUnknown && name == normalized {
			return status, nil
		}
	}

	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", value),
	)
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[StatusUnknown]
}

// Validate rejects StatusUnknown and out of range values.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusCancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusFailed || s == StatusCancelled
}

// IsActive reports whether the delivery is still being worked on.
func (s Status) IsActive() bool {
	return s.Validate() == nil && !s.IsTerminal()
}

// guardTransition returns the error for a move from s to next given the set of
// statuses that allow it.
func (s Status) guardTransition(next Status, allowed ...Status) error {
	if s.IsTerminal() {
		return errs.NewTerminalStateError(s, next)
	}
	for _, a := range allowed {
		if s == a {
			return nil
		}
	}
	return errs.NewInvalidTransitionError(s, next)
}
