package queries_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var (
	testNow    = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	discardLog = slog.New(slog.NewTextHandler(io.Discard, nil))
)

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

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

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

type MockUnitOfWorkFactory struct{ mock.Mock }

func (m *MockUnitOfWorkFactory) Create() ports.UnitOfWork {
	return m.Called().Get(0).(ports.UnitOfWork)
}

// newFactory returns a factory handing out one unit of work backed by repos.
func newFactory(repos ...any) *MockUnitOfWorkFactory {
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

	factory := new(MockUnitOfWorkFactory)
	factory.On("Create").Return(uow)
	return factory
}

// stubGeocoder answers from a fixed table and fails for anything else.
type stubGeocoder struct {
	mu      sync.Mutex
	results map[string]kernel.Location
	calls   int
}

func (s *stubGeocoder) Geocode(_ context.Context, query string) (*kernel.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	loc, ok := s.results[query]
	if !ok {
		return nil, errors.New("geocoder unavailable")
	}
	return &loc, nil
}

type stubRouter struct {
	calls int
}

func (s *stubRouter) Route(_ context.Context, from, to kernel.Location) (kernel.Polyline, error) {
	s.calls++
	mid, _ := kernel.NewLocation((from.Lat()+to.Lat())/2, (from.Lng()+to.Lng())/2)
	return kernel.Polyline{from, mid, to}, nil
}
