package delivery

import (
	"fmt"
	"strings"

	"dispatch/internal/pkg/errs"
)

type FailureReason int

const (
	ReasonUnknown FailureReason = iota
	ReasonCustomerUnavailable
	ReasonWrongAddress
	ReasonPackageDamaged
	ReasonRefusedByCustomer
	ReasonNoContact
	ReasonReturnedToSender
	ReasonOther
)

var reasonNames = map[FailureReason]string{
	ReasonUnknown:             "UNKNOWN",
	ReasonCustomerUnavailable: "CUSTOMER_UNAVAILABLE",
	ReasonWrongAddress:        "WRONG_ADDRESS",
	ReasonPackageDamaged:      "PACKAGE_DAMAGED",
	ReasonRefusedByCustomer:   "REFUSED_BY_CUSTOMER",
	ReasonNoContact:           "NO_CONTACT",
	ReasonReturnedToSender:    "RETURNED_TO_SENDER",
	ReasonOther:               "OTHER",
}

func ParseFailureReason(value string) (FailureReason, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	for reason, name := range reasonNames {
		if reason != ReasonUnknown && name == normalized {
			return reason, nil
		}
	}

	return ReasonUnknown, errs.NewValueIsInvalidErrorWithCause(
		"failure reason",
		fmt.Errorf("%q is not a valid failure reason", value),
	)
}

func (r FailureReason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return reasonNames[ReasonUnknown]
}

func (r FailureReason) Validate() error {
	if r <= ReasonUnknown || r > ReasonOther {
		return errs.NewValueIsInvalidErrorWithCause("failure reason", fmt.Errorf("%d is not a valid failure reason", r))
	}
	return nil
}

// Priority orders deliveries on the dispatcher board.
type Priority int

const (
	PriorityUnknown Priority = iota
	PriorityLow
	PriorityNormal
	PriorityHigh
	PriorityUrgent
)

var priorityNames = map[Priority]string{
	PriorityUnknown: "UNKNOWN",
	PriorityLow:     "LOW",
	PriorityNormal:  "NORMAL",
	PriorityHigh:    "HIGH",
	PriorityUrgent:  "URGENT",
}

// ParsePriority treats an empty value as NORMAL.
func ParsePriority(value string) (Priority, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	if normalized == "" {
		return PriorityNormal, nil
	}
	for priority, name := range priorityNames {
		if priority != PriorityUnknown && name == normalized {
			return priority, nil
		}
	}

	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"priority",
		fmt.Errorf("%q is not a valid priority", value),
	)
}

func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return priorityNames[PriorityUnknown]
}

func (p Priority) Validate() error {
	if p <= PriorityUnknown || p > PriorityUrgent {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}
