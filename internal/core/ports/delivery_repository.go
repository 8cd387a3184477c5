package ports

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates
// and the records attached to them.
type DeliveryRepository interface {
	// Add persists a new delivery.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists status, courier, addresses and details. Geometry is
	// written by UpdateGeometry only.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery by identity.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetForUpdate retrieves a delivery and locks its row until the surrounding
	// transaction ends. Transitions read the current status through it so two
	// concurrent transitions cannot both succeed.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByReference retrieves a delivery by its reference code.
	GetByReference(ctx context.Context, reference delivery.ReferenceCode) (*delivery.Delivery, error)

	// UpdateGeometry writes geocodes, digests, the route cache and the repair
	// flag without touching lifecycle columns. It reports false when the
	// stored address texts no longer match the aggregate and nothing was written.
	UpdateGeometry(ctx context.Context, aggregate *delivery.Delivery) (bool, error)

	// GetGeometryDirty returns up to limit deliveries flagged for geometry repair,
	// oldest update first.
	GetGeometryDirty(ctx context.Context, limit int) ([]*delivery.Delivery, error)

	// Delete removes the delivery together with its events, proof, failure and feedback.
	Delete(ctx context.Context, id kernel.UUID) error

	// SaveProof upserts the proof of delivery.
	SaveProof(ctx context.Context, pod delivery.ProofOfDelivery) error

	// SaveFailure upserts the failure record. An empty photo keeps the stored one.
	SaveFailure(ctx context.Context, record delivery.FailureRecord) error

	// SaveFeedback upserts feedback per (delivery, customer).
	SaveFeedback(ctx context.Context, feedback delivery.Feedback) error
}
