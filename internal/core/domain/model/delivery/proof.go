package delivery

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

const (
	RatingMin = 1
	RatingMax = 5
)

// ProofOfDelivery is the recipient attestation that completes a delivery.
// PhotoRef and SignatureRef point into external file storage.
type ProofOfDelivery struct {
	deliveryID    kernel.UUID
	recipientName string
	photoRef      string
	signatureRef  string
	note          string
	submittedAt   time.Time
}

func NewProofOfDelivery(
	deliveryID kernel.UUID,
	recipientName, photoRef, signatureRef, note string,
	submittedAt time.Time,
) (ProofOfDelivery, error) {
	pod := ProofOfDelivery{
		deliveryID:    deliveryID,
		recipientName: strings.TrimSpace(recipientName),
		photoRef:      strings.TrimSpace(photoRef),
		signatureRef:  strings.TrimSpace(signatureRef),
		note:          note,
		submittedAt:   submittedAt,
	}

	var errList []error
	errList = append(errList, deliveryID.Validate())
	if pod.recipientName == "" {
		errList = append(errList, errs.NewValueIsRequiredError("recipient name"))
	}
	if pod.photoRef == "" {
		errList = append(errList, errs.NewValueIsRequiredError("photo"))
	}
	if err := errors.Join(errList...); err != nil {
		return ProofOfDelivery{}, err
	}

	return pod, nil
}

func (p ProofOfDelivery) DeliveryID() kernel.UUID { return p.deliveryID }
func (p ProofOfDelivery) RecipientName() string   { return p.recipientName }
func (p ProofOfDelivery) PhotoRef() string        { return p.photoRef }
func (p ProofOfDelivery) SignatureRef() string    { return p.signatureRef }
func (p ProofOfDelivery) Note() string            { return p.note }
func (p ProofOfDelivery) SubmittedAt() time.Time  { return p.submittedAt }

// FailureRecord explains why a delivery could not be completed.
type FailureRecord struct {
	deliveryID kernel.UUID
	reason     FailureReason
	notes      string
	photoRef   string
	reportedAt time.Time
}

func NewFailureRecord(
	deliveryID kernel.UUID,
	reason FailureReason,
	notes, photoRef string,
	reportedAt time.Time,
) (FailureRecord, error) {
	if err := errors.Join(deliveryID.Validate(), reason.Validate()); err != nil {
		return FailureRecord{}, err
	}
	return FailureRecord{
		deliveryID: deliveryID,
		reason:     reason,
		notes:      strings.TrimSpace(notes),
		photoRef:   strings.TrimSpace(photoRef),
		reportedAt: reportedAt,
	}, nil
}

func (f FailureRecord) DeliveryID() kernel.UUID { return f.deliveryID }
func (f FailureRecord) Reason() FailureReason   { return f.reason }
func (f FailureRecord) Notes() string           { return f.notes }
func (f FailureRecord) PhotoRef() string        { return f.photoRef }
func (f FailureRecord) ReportedAt() time.Time   { return f.reportedAt }

// Note is the timeline text for the failure.
func (f FailureRecord) Note() string {
	if f.notes == "" {
		return "Failed: " + f.reason.String()
	}
	return fmt.Sprintf("Failed: %s - %s", f.reason, f.notes)
}

// Feedback is a customer's rating of a completed delivery, one per customer.
type Feedback struct {
	deliveryID  kernel.UUID
	customerRef string
	rating      int
	comment     string
	createdAt   time.Time
}

func NewFeedback(deliveryID kernel.UUID, customerRef string, rating int, comment string, createdAt time.Time) (Feedback, error) {
	var errList []error
	errList = append(errList, deliveryID.Validate())
	if strings.TrimSpace(customerRef) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("customer"))
	}
	if rating < RatingMin || rating > RatingMax {
		errList = append(errList, errs.NewValueIsOutOfRangeError("rating", rating, RatingMin, RatingMax))
	}
	if err := errors.Join(errList...); err != nil {
		return Feedback{}, err
	}

	return Feedback{
		deliveryID:  deliveryID,
		customerRef: strings.TrimSpace(customerRef),
		rating:      rating,
		comment:     strings.TrimSpace(comment),
		createdAt:   createdAt,
	}, nil
}

func (f Feedback) DeliveryID() kernel.UUID { return f.deliveryID }
func (f Feedback) CustomerRef() string     { return f.customerRef }
func (f Feedback) Rating() int             { return f.rating }
func (f Feedback) Comment() string         { return f.comment }
func (f Feedback) CreatedAt() time.Time    { return f.createdAt }
