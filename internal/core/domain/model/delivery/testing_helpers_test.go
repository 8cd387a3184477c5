package delivery_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()

	pickup, err := delivery.NewAddress("Alexanderplatz 1, Berlin")
	require.NoError(t, err)
	dropoff, err := delivery.NewAddress("Potsdamer Platz 1, Berlin")
	require.NoError(t, err)

	d, err := delivery.NewDelivery(
		kernel.NewUUID(),
		delivery.GenerateReferenceCode(testNow),
		pickup,
		dropoff,
		delivery.Details{Customer: delivery.Customer{Name: "Jane Doe"}},
		testNow,
	)
	require.NoError(t, err)
	return d
}

func newAssignedDelivery(t *testing.T) (*delivery.Delivery, kernel.UUID) {
	t.Helper()

	d := newTestDelivery(t)
	courierID := kernel.NewUUID()
	_, err := d.Assign(courierID, testNow)
	require.NoError(t, err)
	return d, courierID
}

func newInTransitDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()

	d, _ := newAssignedDelivery(t)
	_, err := d.Advance(delivery.ActionPickedUp, "", false, testNow)
	require.NoError(t, err)
	return d
}

func newProof(t *testing.T, d *delivery.Delivery) delivery.ProofOfDelivery {
	t.Helper()

	pod, err := delivery.NewProofOfDelivery(d.ID(), "Jane Doe", "uploads/pod/1.jpg", "", "", testNow)
	require.NoError(t, err)
	return pod
}

func newFailure(t *testing.T, d *delivery.Delivery) delivery.FailureRecord {
	t.Helper()

	rec, err := delivery.NewFailureRecord(d.ID(), delivery.ReasonNoContact, "rang twice", "", testNow)
	require.NoError(t, err)
	return rec
}
