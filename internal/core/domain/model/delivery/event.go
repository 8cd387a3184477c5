package delivery

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// PendingNote is the note of the PENDING event written at creation or backfilled.
const PendingNote = "Order created"

// Event is one immutable entry of a delivery's timeline.
type Event struct {
	id         int64
	deliveryID kernel.UUID
	label      EventLabel
	note       string
	actor      string
	occurredAt time.Time
}

// NewEvent creates an entry that has not been stored yet.
func NewEvent(deliveryID kernel.UUID, label EventLabel, note, actor string, occurredAt time.Time) (Event, error) {
	if err := errors.Join(deliveryID.Validate(), label.Validate()); err != nil {
		return Event{}, err
	}
	if occurredAt.IsZero() {
		return Event{}, errs.NewValueIsRequiredError("occurred at")
	}
	return Event{
		deliveryID: deliveryID,
		label:      label,
		note:       note,
		actor:      actor,
		occurredAt: occurredAt,
	}, nil
}

func RestoreEvent(id int64, deliveryID kernel.UUID, label EventLabel, note, actor string, occurredAt time.Time) Event {
	return Event{
		id:         id,
		deliveryID: deliveryID,
		label:      label,
		note:       note,
		actor:      actor,
		occurredAt: occurredAt,
	}
}

func (e Event) ID() int64               { return e.id }
func (e Event) DeliveryID() kernel.UUID { return e.deliveryID }
func (e Event) Label() EventLabel       { return e.label }
func (e Event) Note() string            { return e.note }
func (e Event) Actor() string           { return e.actor }
func (e Event) OccurredAt() time.Time   { return e.occurredAt }

// Status is the stored status the entry's label normalizes to.
func (e Event) Status() Status {
	return e.label.Status()
}

// Entry is a timeline line produced by a transition, before it is dated.
type Entry struct {
	Label EventLabel
	Note  string
}

// Transition describes an accepted status change and the timeline entries it writes.
type Transition struct {
	From    Status
	To      Status
	Entries []Entry
}

// StatusChanged is published after a transition is committed.
type StatusChanged struct {
	DeliveryID kernel.UUID
	Reference  ReferenceCode
	From       Status
	To         Status
	Label      EventLabel
	Note       string
	Actor      string
	OccurredAt time.Time
}
