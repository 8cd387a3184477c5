package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"dispatch/internal/core/application/geometry"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetByReference(
	ctx context.Context,
	reference delivery.ReferenceCode,
) (*delivery.Delivery, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) UpdateGeometry(ctx context.Context, d *delivery.Delivery) (bool, error) {
	args := m.Called(ctx, d)
	return args.Bool(0), args.Error(1)
}

func (m *MockDeliveryRepository) GetGeometryDirty(ctx context.Context, limit int) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDeliveryRepository) SaveProof(ctx context.Context, pod delivery.ProofOfDelivery) error {
	return m.Called(ctx, pod).Error(0)
}

func (m *MockDeliveryRepository) SaveFailure(ctx context.Context, record delivery.FailureRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockDeliveryRepository) SaveFeedback(ctx context.Context, feedback delivery.Feedback) error {
	return m.Called(ctx, feedback).Error(0)
}

type MockEventRepository struct{ mock.Mock }

func (m *MockEventRepository) Append(ctx context.Context, e delivery.Event) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockEventRepository) HasLabel(ctx context.Context, id kernel.UUID, label delivery.EventLabel) (bool, error) {
	args := m.Called(ctx, id, label)
	return args.Bool(0), args.Error(1)
}

func (m *MockEventRepository) Earliest(ctx context.Context, id kernel.UUID) (*time.Time, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *MockEventRepository) List(ctx context.Context, id kernel.UUID) ([]delivery.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]delivery.Event), args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

type MockDriverLocationRepository struct{ mock.Mock }

func (m *MockDriverLocationRepository) Push(ctx context.Context, location courier.Location) error {
	return m.Called(ctx, location).Error(0)
}

func (m *MockDriverLocationRepository) Get(ctx context.Context, id kernel.UUID) (courier.Location, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(courier.Location), args.Error(1)
}

// MockUoW satisfies every unit of work flavour used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	return m.Called().Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) EventRepository() ports.EventRepository {
	return m.Called().Get(0).(ports.EventRepository)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	return m.Called().Get(0).(ports.CourierRepository)
}

func (m *MockUoW) DriverLocationRepository() ports.DriverLocationRepository {
	return m.Called().Get(0).(ports.DriverLocationRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return m.Called().Get(0).(commands.DeliveryUoW)
}

type MockCourierUoWFactory struct{ mock.Mock }

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	return m.Called().Get(0).(commands.CourierUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockGeometryRepairer struct{ mock.Mock }

func (m *MockGeometryRepairer) Repair(ctx context.Context, d *delivery.Delivery) (geometry.Geometry, bool) {
	args := m.Called(ctx, d)
	return args.Get(0).(geometry.Geometry), args.Bool(1)
}

// recordingPublisher keeps everything it was asked to publish.
type recordingPublisher struct {
	mu      sync.Mutex
	changes []delivery.StatusChanged
}

func (p *recordingPublisher) Publish(_ context.Context, changes ...delivery.StatusChanged) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.changes = append(p.changes, changes...)
}

func (p *recordingPublisher) Labels() []delivery.EventLabel {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]delivery.EventLabel, 0, len(p.changes))
	for _, c := range p.changes {
		out = append(out, c.Label)
	}
	return out
}

// newMockUoW wires repositories into a unit of work that accepts Rollback at any time.
func newMockUoW(repos ...any) *MockUoW {
	uow := new(MockUoW)
	for _, r := range repos {
		switch repo := r.(type) {
		case *MockDeliveryRepository:
			uow.On("DeliveryRepository").Return(repo)
		case *MockEventRepository:
			uow.On("EventRepository").Return(repo)
		case *MockCourierRepository:
			uow.On("CourierRepository").Return(repo)
		case *MockDriverLocationRepository:
			uow.On("DriverLocationRepository").Return(repo)
		}
	}
	uow.On("Rollback", mock.Anything).Return(nil)
	return uow
}

func eventWithLabel(label delivery.EventLabel) any {
	return mock.MatchedBy(func(e delivery.Event) bool { return e.Label() == label })
}

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

func newAssignedDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()

	d := newTestDelivery(t)
	_, err := d.Assign(kernel.NewUUID(), testNow)
	require.NoError(t, err)
	return d
}

func newInTransitDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()

	d := newAssignedDelivery(t)
	_, err := d.Advance(delivery.ActionPickedUp, "", false, testNow)
	require.NoError(t, err)
	return d
}

func newDeliveredDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()

	d := newInTransitDelivery(t)
	pod, err := delivery.NewProofOfDelivery(d.ID(), "Jane Doe", "uploads/pod/1.jpg", "", "", testNow)
	require.NoError(t, err)
	_, err = d.SubmitProof(pod, testNow)
	require.NoError(t, err)
	return d
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
