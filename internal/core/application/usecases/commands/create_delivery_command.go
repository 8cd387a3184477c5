package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// deliveryDateLayouts are the accepted forms of the requested delivery date.
var deliveryDateLayouts = []string{"2006-01-02", "01/02/2006"}

// CreateDeliveryInput carries the raw values of a new order as received from clients.
type CreateDeliveryInput struct {
	CustomerName    string
	CustomerContact string
	PickupAddress   string
	DropoffAddress  string
	PackageType     string
	PackageWeight   *float64
	PackageNotes    string
	DeliveryDate    string
	Priority        string
	Actor           string
}

// CreateDeliveryCommand registers a new delivery in PENDING status.
//
// Example:
//
//	cmd, err := NewCreateDeliveryCommand(CreateDeliveryInput{
//	    CustomerName:   "Jane Doe",
//	    PickupAddress:  "Alexanderplatz 1, Berlin",
//	    DropoffAddress: "Potsdamer Platz 1, Berlin",
//	    DeliveryDate:   "2025-03-14",
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//	d, err := handler.Handle(ctx, cmd)
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	pickup  delivery.Address
	dropoff delivery.Address
	details delivery.Details
	actor   string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand validates the input. Customer name and both
// addresses are required, the date must be YYYY-MM-DD or MM/DD/YYYY and the
// priority defaults to NORMAL.
func NewCreateDeliveryCommand(in CreateDeliveryInput) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		actor: strings.TrimSpace(in.Actor),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAddresses(in.PickupAddress, in.DropoffAddress),
		cmd.setDetails(in),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

func (c CreateDeliveryCommand) Pickup() delivery.Address  { return c.pickup }
func (c CreateDeliveryCommand) Dropoff() delivery.Address { return c.dropoff }
func (c CreateDeliveryCommand) Details() delivery.Details { return c.details }
func (c CreateDeliveryCommand) Actor() string             { return c.actor }

func (c *CreateDeliveryCommand) setAddresses(pickup, dropoff string) error {
	p, pickupErr := delivery.NewAddress(pickup)
	if pickupErr != nil {
		pickupErr = errs.NewValueIsRequiredError("pickup address")
	}
	d, dropoffErr := delivery.NewAddress(dropoff)
	if dropoffErr != nil {
		dropoffErr = errs.NewValueIsRequiredError("dropoff address")
	}
	if err := errors.Join(pickupErr, dropoffErr); err != nil {
		return err
	}
	c.pickup, c.dropoff = p, d
	return nil
}

func (c *CreateDeliveryCommand) setDetails(in CreateDeliveryInput) error {
	name, nameErr := requireText("customer name", in.CustomerName)
	date, dateErr := parseDeliveryDate(in.DeliveryDate)
	priority, priorityErr := delivery.ParsePriority(in.Priority)

	var weightErr error
	if in.PackageWeight != nil && *in.PackageWeight < 0 {
		weightErr = errs.NewValueIsInvalidErrorWithCause(
			"package weight", fmt.Errorf("%g is negative", *in.PackageWeight))
	}

	if err := errors.Join(nameErr, dateErr, priorityErr, weightErr); err != nil {
		return err
	}

	c.details = delivery.Details{
		Customer: delivery.Customer{Name: name, Contact: strings.TrimSpace(in.CustomerContact)},
		Package: delivery.Package{
			Type:   strings.TrimSpace(in.PackageType),
			Weight: in.PackageWeight,
			Notes:  strings.TrimSpace(in.PackageNotes),
		},
		DeliveryDate: date,
		Priority:     priority,
	}
	return nil
}

func parseDeliveryDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	for _, layout := range deliveryDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, errs.NewValueIsInvalidErrorWithCause(
		"delivery date",
		fmt.Errorf("%q is neither YYYY-MM-DD nor MM/DD/YYYY", value),
	)
}
