package delivery

import (
	"fmt"
	"strings"

	"dispatch/internal/pkg/errs"
)

// EventLabel is the status label written to the timeline. It is a superset of
// Status: PICKED_UP is logged as its own label while the stored status moves
// straight to IN_TRANSIT.
type EventLabel int

const (
	LabelUnknown EventLabel = iota
	LabelPending
	LabelAssigned
	LabelPickedUp
	LabelInTransit
	LabelDelivered
	LabelFailed
	LabelCancelled
)

var labelNames = map[EventLabel]string{
	LabelUnknown:   "UNKNOWN",
	LabelPending:   "PENDING",
	LabelAssigned:  "ASSIGNED",
	LabelPickedUp:  "PICKED_UP",
	LabelInTransit: "IN_TRANSIT",
	LabelDelivered: "DELIVERED",
	LabelFailed:    "FAILED",
	LabelCancelled: "CANCELLED",
}

var labelStatuses = map[EventLabel]Status{
	LabelPending:   StatusPending,
	LabelAssigned:  StatusAssigned,
	LabelPickedUp:  StatusInTransit,
	LabelInTransit: StatusInTransit,
	LabelDelivered: StatusDelivered,
	LabelFailed:    StatusFailed,
	LabelCancelled: StatusCancelled,
}

func ParseEventLabel(value string) (EventLabel, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	for label, name := range labelNames {
		if label != LabelUnknown && name == normalized {
			return label, nil
		}
	}

	return LabelUnknown, errs.NewValueIsInvalidErrorWithCause(
		"event label",
		fmt.Errorf("%q is not a valid event label", value),
	)
}

func (l EventLabel) String() string {
	if name, ok := labelNames[l]; ok {
		return name
	}
	return labelNames[LabelUnknown]
}

func (l EventLabel) Validate() error {
	if _, ok := labelStatuses[l]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("event label", fmt.Errorf("%d is not a valid event label", l))
	}
	return nil
}

// Status returns the stored status this label normalizes to.
func (l EventLabel) Status() Status {
	return labelStatuses[l]
}

// Action is a courier progress report accepted by Delivery.Advance.
type Action int

const (
	ActionUnknown Action = iota
	ActionPickedUp
	ActionInTransit
)

func ParseAction(value string) (Action, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "PICKED_UP":
		return ActionPickedUp, nil
	case "IN_TRANSIT":
		return ActionInTransit, nil
	default:
		return ActionUnknown, errs.NewValueIsInvalidErrorWithCause(
			"action",
			fmt.Errorf("%q is not one of PICKED_UP, IN_TRANSIT", value),
		)
	}
}

// Label is the timeline label logged for the action.
func (a Action) Label() EventLabel {
	switch a {
	case ActionPickedUp:
		return LabelPickedUp
	case ActionInTransit:
		return LabelInTransit
	default:
		return LabelUnknown
	}
}

func (a Action) String() string {
	return a.Label().String()
}

func (a Action) Validate() error {
	if a != ActionPickedUp && a != ActionInTransit {
		return errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%d is not a valid action", a))
	}
	return nil
}
