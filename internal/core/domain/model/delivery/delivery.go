package delivery

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	defaultCancelActor = "admin"
	inTransitNote      = "In transit"
	pickedUpNote       = "Picked up"
)

var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// Customer identifies who receives the package.
type Customer struct {
	Name    string
	Contact string
}

// Package describes what is being delivered.
type Package struct {
	Type   string
	Weight *float64
	Notes  string
}

// Details groups the descriptive, non-lifecycle attributes of a delivery.
type Details struct {
	Customer     Customer
	Package      Package
	DeliveryDate *time.Time
	Priority     Priority
}

// Delivery is the aggregate root of the delivery lifecycle. It owns the stored
// status and validates every transition; each accepted transition is returned
// as a Transition so the caller can append its entries to the timeline.
//
// Pickup and dropoff carry their geocode cache and route carries the driving
// polyline cache. geometryDirty marks deliveries whose geometry should be
// refreshed in the background.
type Delivery struct {
	id            kernel.UUID
	reference     ReferenceCode
	status        Status
	details       Details
	pickup        Address
	dropoff       Address
	route         *Route
	courierID     *kernel.UUID
	geometryDirty bool
	createdAt     time.Time
	updatedAt     time.Time
	guard         guard.ConstructorGuard
}

// NewDelivery creates a PENDING delivery without courier or geometry.
//
// Example:
//
//	pickup, _ := delivery.NewAddress("Alexanderplatz 1, Berlin")
//	dropoff, _ := delivery.NewAddress("Potsdamer Platz 1, Berlin")
//	d, err := delivery.NewDelivery(kernel.NewUUID(), delivery.GenerateReferenceCode(now),
//	    pickup, dropoff, delivery.Details{Customer: delivery.Customer{Name: "Jane Doe"}}, now)
func NewDelivery(
	id kernel.UUID,
	reference ReferenceCode,
	pickup, dropoff Address,
	details Details,
	now time.Time,
) (*Delivery, error) {
	if details.Priority == PriorityUnknown {
		details.Priority = PriorityNormal
	}

	d := &Delivery{
		status:        StatusPending,
		geometryDirty: true,
		createdAt:     now,
		updatedAt:     now,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setReference(reference),
		d.setAddresses(pickup, dropoff),
		d.setDetails(details),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Snapshot is the persisted state used to rebuild a Delivery.
type Snapshot struct {
	ID            kernel.UUID
	Reference     ReferenceCode
	Status        Status
	Details       Details
	Pickup        Address
	Dropoff       Address
	Route         *Route
	CourierID     *kernel.UUID
	GeometryDirty bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RestoreDelivery rebuilds a delivery from storage and checks that status and
// courier assignment agree.
func RestoreDelivery(s Snapshot) (*Delivery, error) {
	d := &Delivery{
		route:         s.Route,
		geometryDirty: s.GeometryDirty,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(s.ID),
		d.setReference(s.Reference),
		d.setAddresses(s.Pickup, s.Dropoff),
		d.setDetails(s.Details),
		d.setStatus(s.Status, s.CourierID),
	); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

func (d *Delivery) ID() kernel.UUID          { return d.id }
func (d *Delivery) Reference() ReferenceCode { return d.reference }
func (d *Delivery) Status() Status           { return d.status }
func (d *Delivery) Details() Details         { return d.details }
func (d *Delivery) Pickup() Address          { return d.pickup }
func (d *Delivery) Dropoff() Address         { return d.dropoff }
func (d *Delivery) Courier() *kernel.UUID    { return d.courierID }
func (d *Delivery) IsGeometryDirty() bool    { return d.geometryDirty }
func (d *Delivery) CreatedAt() time.Time     { return d.createdAt }
func (d *Delivery) UpdatedAt() time.Time     { return d.updatedAt }

// Route returns the cached driving route, if any was ever stored.
func (d *Delivery) Route() (Route, bool) {
	if d.route == nil {
		return Route{}, false
	}
	return *d.route, true
}

// Assign attaches courierID. From PENDING the status becomes ASSIGNED; from
// ASSIGNED or IN_TRANSIT it is a reassignment that keeps the current status.
func (d *Delivery) Assign(courierID kernel.UUID, now time.Time) (Transition, error) {
	if err := courierID.Validate(); err != nil {
		return Transition{}, err
	}
	if err := d.status.guardTransition(StatusAssigned, StatusPending, StatusAssigned, StatusInTransit); err != nil {
		return Transition{}, err
	}

	note := "Assigned to driver_id=" + courierID.String()
	if d.courierID != nil && !d.courierID.IsEqual(courierID) {
		note = fmt.Sprintf("Reassigned %s -> %s", d.courierID.String(), courierID.String())
	}

	from := d.status
	if d.status == StatusPending {
		d.status = StatusAssigned
	}
	d.courierID = &courierID
	d.updatedAt = now

	return Transition{From: from, To: d.status, Entries: []Entry{{Label: LabelAssigned, Note: note}}}, nil
}

// Advance records courier progress. Both actions store IN_TRANSIT. PICKED_UP is
// logged under its own label and followed by an automatic IN_TRANSIT entry
// unless the timeline already has one.
func (d *Delivery) Advance(action Action, note string, inTransitLogged bool, now time.Time) (Transition, error) {
	if err := action.Validate(); err != nil {
		return Transition{}, err
	}
	if err := d.status.guardTransition(StatusInTransit, StatusAssigned, StatusInTransit); err != nil {
		return Transition{}, err
	}

	note = strings.TrimSpace(note)
	if note == "" {
		note = inTransitNote
		if action == ActionPickedUp {
			note = pickedUpNote
		}
	}

	entries := []Entry{{Label: action.Label(), Note: note}}
	if action == ActionPickedUp && !inTransitLogged {
		entries = append(entries, Entry{Label: LabelInTransit, Note: inTransitNote})
	}

	from := d.status
	d.status = StatusInTransit
	d.updatedAt = now

	return Transition{From: from, To: d.status, Entries: entries}, nil
}

// SubmitProof completes an IN_TRANSIT delivery.
func (d *Delivery) SubmitProof(pod ProofOfDelivery, now time.Time) (Transition, error) {
	if !pod.DeliveryID().IsEqual(d.id) {
		return Transition{}, errs.NewValueIsInvalidError("proof of delivery belongs to another delivery")
	}
	if err := d.status.guardTransition(StatusDelivered, StatusInTransit); err != nil {
		return Transition{}, err
	}

	from := d.status
	d.status = StatusDelivered
	d.updatedAt = now

	return Transition{
		From:    from,
		To:      d.status,
		Entries: []Entry{{Label: LabelDelivered, Note: "POD submitted for " + pod.RecipientName()}},
	}, nil
}

// ReportFailure ends a delivery that a courier is working on.
func (d *Delivery) ReportFailure(record FailureRecord, now time.Time) (Transition, error) {
	if !record.DeliveryID().IsEqual(d.id) {
		return Transition{}, errs.NewValueIsInvalidError("failure record belongs to another delivery")
	}
	if err := d.status.guardTransition(StatusFailed, StatusAssigned, StatusInTransit); err != nil {
		return Transition{}, err
	}

	from := d.status
	d.status = StatusFailed
	d.updatedAt = now

	return Transition{From: from, To: d.status, Entries: []Entry{{Label: LabelFailed, Note: record.Note()}}}, nil
}

// Cancel stops a non-terminal delivery. actor names the role that cancelled.
func (d *Delivery) Cancel(actor string, now time.Time) (Transition, error) {
	if err := d.status.guardTransition(StatusCancelled, StatusPending, StatusAssigned, StatusInTransit); err != nil {
		return Transition{}, err
	}

	actor = strings.TrimSpace(actor)
	if actor == "" {
		actor = defaultCancelActor
	}

	from := d.status
	d.status = StatusCancelled
	d.updatedAt = now

	return Transition{
		From:    from,
		To:      d.status,
		Entries: []Entry{{Label: LabelCancelled, Note: "Cancelled by " + actor}},
	}, nil
}

// CanDelete rejects removal of completed deliveries.
func (d *Delivery) CanDelete() error {
	if d.status == StatusDelivered {
		return errs.NewDeleteRejectedError("delivery "+d.reference.String(), "delivered orders are kept")
	}
	return nil
}

// CanReceiveFeedback allows ratings only for completed deliveries.
func (d *Delivery) CanReceiveFeedback() error {
	if d.status != StatusDelivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("feedback is accepted for DELIVERED orders only, got %s", d.status),
		)
	}
	return nil
}

// ChangeAddresses edits the address text of a non-terminal delivery. Nil
// arguments keep the current text. The stored geocodes are kept and become
// stale through their digest, and the delivery is flagged for repair.
func (d *Delivery) ChangeAddresses(pickup, dropoff *string, now time.Time) error {
	if d.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("addresses of a %s delivery cannot be changed", d.status),
		)
	}

	nextPickup, nextDropoff := d.pickup, d.dropoff
	var errList []error
	if pickup != nil {
		a, err := d.pickup.WithText(*pickup)
		errList = append(errList, err)
		nextPickup = a
	}
	if dropoff != nil {
		a, err := d.dropoff.WithText(*dropoff)
		errList = append(errList, err)
		nextDropoff = a
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	d.pickup, d.dropoff = nextPickup, nextDropoff
	d.geometryDirty = true
	d.updatedAt = now
	return nil
}

// ApplyGeometry stores refreshed geocodes and, when route is not nil, a
// freshly computed route. A nil route keeps the previous one.
func (d *Delivery) ApplyGeometry(pickup, dropoff Address, route *Route) {
	if pickup.Text() == d.pickup.Text() {
		d.pickup = pickup
	}
	if dropoff.Text() == d.dropoff.Text() {
		d.dropoff = dropoff
	}
	if route != nil {
		d.route = route
	}
}

// MarkGeometryClean clears the background repair flag.
func (d *Delivery) MarkGeometryClean() {
	d.geometryDirty = false
}

// StatusChanges turns a transition into the messages published after commit.
func (d *Delivery) StatusChanges(t Transition, actor string, at time.Time) []StatusChanged {
	out := make([]StatusChanged, 0, len(t.Entries))
	for _, e := range t.Entries {
		out = append(out, StatusChanged{
			DeliveryID: d.id,
			Reference:  d.reference,
			From:       t.From,
			To:         t.To,
			Label:      e.Label,
			Note:       e.Note,
			Actor:      actor,
			OccurredAt: at,
		})
	}
	return out
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setReference(reference ReferenceCode) error {
	if err := reference.Validate(); err != nil {
		return err
	}
	d.reference = reference
	return nil
}

func (d *Delivery) setAddresses(pickup, dropoff Address) error {
	var errList []error
	if strings.TrimSpace(pickup.Text()) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("pickup address"))
	}
	if strings.TrimSpace(dropoff.Text()) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("dropoff address"))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	d.pickup = pickup
	d.dropoff = dropoff
	return nil
}

func (d *Delivery) setDetails(details Details) error {
	details.Customer.Name = strings.TrimSpace(details.Customer.Name)
	details.Customer.Contact = strings.TrimSpace(details.Customer.Contact)

	var errList []error
	if details.Customer.Name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("customer name"))
	}
	if w := details.Package.Weight; w != nil && *w < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"package weight", fmt.Errorf("%g is negative", *w)))
	}
	errList = append(errList, details.Priority.Validate())
	if err := errors.Join(errList...); err != nil {
		return err
	}
	d.details = details
	return nil
}

func (d *Delivery) setStatus(status Status, courierID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return err
		}
	}

	switch status {
	case StatusPending:
		if courierID != nil {
			return errs.NewValueIsInvalidErrorWithCause("status", errors.New("PENDING delivery cannot have a courier"))
		}
	case StatusAssigned, StatusInTransit, StatusDelivered, StatusFailed:
		if courierID == nil {
			return errs.NewValueIsInvalidErrorWithCause(
				"status", fmt.Errorf("%s delivery must have a courier", status))
		}
	case StatusCancelled, StatusUnknown:
	}

	d.status = status
	d.courierID = courierID
	return nil
}
