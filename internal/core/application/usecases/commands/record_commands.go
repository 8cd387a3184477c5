package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrSubmitProofCommandIsNotConstructed = errors.New(
		"SubmitProofCommand must be created via NewSubmitProofCommand constructor",
	)
	ErrReportFailureCommandIsNotConstructed = errors.New(
		"ReportFailureCommand must be created via NewReportFailureCommand constructor",
	)
	ErrSubmitFeedbackCommandIsNotConstructed = errors.New(
		"SubmitFeedbackCommand must be created via NewSubmitFeedbackCommand constructor",
	)
)

// SubmitProofCommand carries the recipient attestation of an IN_TRANSIT delivery.
// PhotoRef and SignatureRef are references into external file storage.
type SubmitProofCommand struct {
	deliveryID    kernel.UUID
	recipientName string
	photoRef      string
	signatureRef  string
	note          string
	actor         string

	guard guard.ConstructorGuard
}

func NewSubmitProofCommand(
	deliveryID kernel.UUID,
	recipientName, photoRef, signatureRef, note, actor string,
) (SubmitProofCommand, error) {
	recipient, recipientErr := requireText("recipient name", recipientName)
	photo, photoErr := requireText("photo", photoRef)
	if err := errors.Join(requireID("delivery id", deliveryID), recipientErr, photoErr); err != nil {
		return SubmitProofCommand{}, err
	}

	return SubmitProofCommand{
		deliveryID:    deliveryID,
		recipientName: recipient,
		photoRef:      photo,
		signatureRef:  strings.TrimSpace(signatureRef),
		note:          strings.TrimSpace(note),
		actor:         strings.TrimSpace(actor),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitProofCommand) Validate() error {
	return c.guard.Validate(ErrSubmitProofCommandIsNotConstructed)
}

func (c SubmitProofCommand) DeliveryID() kernel.UUID { return c.deliveryID }
func (c SubmitProofCommand) RecipientName() string   { return c.recipientName }
func (c SubmitProofCommand) PhotoRef() string        { return c.photoRef }
func (c SubmitProofCommand) SignatureRef() string    { return c.signatureRef }
func (c SubmitProofCommand) Note() string            { return c.note }
func (c SubmitProofCommand) Actor() string           { return c.actor }

// ReportFailureCommand ends a delivery that could not be completed.
type ReportFailureCommand struct {
	deliveryID kernel.UUID
	reason     delivery.FailureReason
	notes      string
	photoRef   string
	actor      string

	guard guard.ConstructorGuard
}

func NewReportFailureCommand(deliveryID kernel.UUID, reason, notes, photoRef, actor string) (ReportFailureCommand, error) {
	parsed, reasonErr := delivery.ParseFailureReason(reason)
	if err := errors.Join(requireID("delivery id", deliveryID), reasonErr); err != nil {
		return ReportFailureCommand{}, err
	}

	return ReportFailureCommand{
		deliveryID: deliveryID,
		reason:     parsed,
		notes:      strings.TrimSpace(notes),
		photoRef:   strings.TrimSpace(photoRef),
		actor:      strings.TrimSpace(actor),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ReportFailureCommand) Validate() error {
	return c.guard.Validate(ErrReportFailureCommandIsNotConstructed)
}

func (c ReportFailureCommand) DeliveryID() kernel.UUID        { return c.deliveryID }
func (c ReportFailureCommand) Reason() delivery.FailureReason { return c.reason }
func (c ReportFailureCommand) Notes() string                  { return c.notes }
func (c ReportFailureCommand) PhotoRef() string               { return c.photoRef }
func (c ReportFailureCommand) Actor() string                  { return c.actor }

// SubmitFeedbackCommand rates a delivered order, once per customer.
type SubmitFeedbackCommand struct {
	deliveryID  kernel.UUID
	customerRef string
	rating      int
	comment     string

	guard guard.ConstructorGuard
}

func NewSubmitFeedbackCommand(deliveryID kernel.UUID, customerRef string, rating int, comment string) (SubmitFeedbackCommand, error) {
	customer, customerErr := requireText("customer", customerRef)
	var ratingErr error
	if rating < delivery.RatingMin || rating > delivery.RatingMax {
		ratingErr = errs.NewValueIsOutOfRangeError("rating", rating, delivery.RatingMin, delivery.RatingMax)
	}
	if err := errors.Join(requireID("delivery id", deliveryID), customerErr, ratingErr); err != nil {
		return SubmitFeedbackCommand{}, err
	}

	return SubmitFeedbackCommand{
		deliveryID:  deliveryID,
		customerRef: customer,
		rating:      rating,
		comment:     strings.TrimSpace(comment),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitFeedbackCommand) Validate() error {
	return c.guard.Validate(ErrSubmitFeedbackCommandIsNotConstructed)
}

func (c SubmitFeedbackCommand) DeliveryID() kernel.UUID { return c.deliveryID }
func (c SubmitFeedbackCommand) CustomerRef() string     { return c.customerRef }
func (c SubmitFeedbackCommand) Rating() int             { return c.rating }
func (c SubmitFeedbackCommand) Comment() string         { return c.comment }
