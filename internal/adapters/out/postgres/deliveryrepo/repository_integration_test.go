package deliveryrepo_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/deliveryrepo"
	"dispatch/internal/adapters/out/postgres/eventrepo"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var baseTime = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

// DeliveryRepositoryIntegrationTestSuite runs the delivery repository against
// a real PostgreSQL container.
type DeliveryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *deliveryrepo.GormDeliveryRepository
	events     *eventrepo.GormEventRepository
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE deliveries, delivery_events, delivery_proofs, delivery_failures, delivery_feedback",
	).Error)

	suite.repository = deliveryrepo.NewGormDeliveryRepository(suite.db)
	suite.events = eventrepo.NewGormEventRepository(suite.db)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_RoundTrip() {
	ctx := context.Background()
	d := suite.newDelivery()

	suite.Require().NoError(suite.repository.Add(ctx, d))

	loaded, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(d.ID(), loaded.ID())
	suite.Equal(d.Reference(), loaded.Reference())
	suite.Equal(delivery.StatusPending, loaded.Status())
	suite.Equal("Alexanderplatz 1, Berlin", loaded.Pickup().Text())
	suite.Equal("Potsdamer Platz 1, Berlin", loaded.Dropoff().Text())
	suite.Equal("Jane Doe", loaded.Details().Customer.Name)
	suite.Equal(delivery.PriorityNormal, loaded.Details().Priority)
	suite.True(loaded.IsGeometryDirty())
	suite.Nil(loaded.Courier())

	byReference, err := suite.repository.GetByReference(ctx, d.Reference())
	suite.Require().NoError(err)
	suite.Equal(d.ID(), byReference.ID())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_DuplicateReference_Fails() {
	ctx := context.Background()
	first := suite.newDelivery()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	pickup, _ := delivery.NewAddress("Somewhere 1")
	dropoff, _ := delivery.NewAddress("Elsewhere 2")
	second, err := delivery.NewDelivery(kernel.NewUUID(), first.Reference(), pickup, dropoff,
		delivery.Details{Customer: delivery.Customer{Name: "John"}}, baseTime)
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrPersistence)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	reference, _ := delivery.ParseReferenceCode("ORD-2025123456")
	_, err = suite.repository.GetByReference(context.Background(), reference)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_PersistsLifecycleOnly() {
	ctx := context.Background()
	d := suite.newDelivery()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	courierID := kernel.NewUUID()
	_, err := d.Assign(courierID, baseTime.Add(time.Minute))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, d))

	loaded, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.StatusAssigned, loaded.Status())
	suite.Require().NotNil(loaded.Courier())
	suite.Equal(courierID, *loaded.Courier())
	suite.True(loaded.IsGeometryDirty(), "geometry flag is written by UpdateGeometry only")
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_Missing_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.newDelivery())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdateGeometry_StoresCoordinatesAndRoute() {
	ctx := context.Background()
	d := suite.newDelivery()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	pickupLoc, _ := kernel.NewLocation(52.5219, 13.4132)
	dropoffLoc, _ := kernel.NewLocation(52.5096, 13.3759)
	route, err := delivery.NewRoute(
		kernel.Polyline{pickupLoc, dropoffLoc},
		kernel.RouteDigest(pickupLoc, dropoffLoc),
		baseTime,
	)
	suite.Require().NoError(err)
	d.ApplyGeometry(d.Pickup().WithGeocode(pickupLoc), d.Dropoff().WithGeocode(dropoffLoc), &route)
	d.MarkGeometryClean()

	written, err := suite.repository.UpdateGeometry(ctx, d)
	suite.Require().NoError(err)
	suite.True(written)

	loaded, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.False(loaded.IsGeometryDirty())
	loc, ok := loaded.Pickup().Location()
	suite.Require().True(ok)
	suite.InDelta(52.5219, loc.Lat(), 1e-9)
	suite.Equal(kernel.AddressDigest("Alexanderplatz 1, Berlin"), loaded.Pickup().Digest())
	storedRoute, ok := loaded.Route()
	suite.Require().True(ok)
	suite.True(storedRoute.IsValidFor(pickupLoc, dropoffLoc))
	suite.Len(storedRoute.Points(), 2)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdateGeometry_AddressChangedMeanwhile_NoOp() {
	ctx := context.Background()
	d := suite.newDelivery()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	stale, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)

	edited := "Unter den Linden 77, Berlin"
	suite.Require().NoError(d.ChangeAddresses(&edited, nil, baseTime.Add(time.Minute)))
	suite.Require().NoError(suite.repository.Update(ctx, d))

	pickupLoc, _ := kernel.NewLocation(52.5219, 13.4132)
	stale.ApplyGeometry(stale.Pickup().WithGeocode(pickupLoc), stale.Dropoff(), nil)
	stale.MarkGeometryClean()
	written, err := suite.repository.UpdateGeometry(ctx, stale)
	suite.Require().NoError(err)
	suite.False(written)

	loaded, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(edited, loaded.Pickup().Text())
	suite.True(loaded.IsGeometryDirty())
	_, ok := loaded.Pickup().Location()
	suite.False(ok)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetGeometryDirty_OldestFirstWithLimit() {
	ctx := context.Background()
	older := suite.newDeliveryAt(baseTime)
	newer := suite.newDeliveryAt(baseTime.Add(time.Hour))
	clean := suite.newDeliveryAt(baseTime.Add(-time.Hour))
	for _, d := range []*delivery.Delivery{newer, older, clean} {
		suite.Require().NoError(suite.repository.Add(ctx, d))
	}
	clean.MarkGeometryClean()
	written, err := suite.repository.UpdateGeometry(ctx, clean)
	suite.Require().NoError(err)
	suite.Require().True(written)

	dirty, err := suite.repository.GetGeometryDirty(ctx, 1)
	suite.Require().NoError(err)
	suite.Require().Len(dirty, 1)
	suite.Equal(older.ID(), dirty[0].ID())

	dirty, err = suite.repository.GetGeometryDirty(ctx, 10)
	suite.Require().NoError(err)
	suite.Len(dirty, 2)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetForUpdate_BlocksSecondLocker() {
	ctx := context.Background()
	d := suite.newDelivery()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	tx1 := suite.db.Begin()
	defer tx1.Rollback()
	_, err := deliveryrepo.NewGormDeliveryRepository(tx1).GetForUpdate(ctx, d.ID())
	suite.Require().NoError(err)

	tx2 := suite.db.Begin()
	defer tx2.Rollback()
	suite.Require().NoError(tx2.Exec("SET LOCAL lock_timeout = '200ms'").Error)
	_, err = deliveryrepo.NewGormDeliveryRepository(tx2).GetForUpdate(ctx, d.ID())
	suite.Require().ErrorIs(err, errs.ErrPersistence, "row is locked by the first transaction")
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestDelete_RemovesDependentRows() {
	ctx := context.Background()
	d := suite.newDelivery()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	event, err := delivery.NewEvent(d.ID(), delivery.LabelPending, "Order created", "system", baseTime)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.events.Append(ctx, event))
	record, err := delivery.NewFailureRecord(d.ID(), delivery.ReasonOther, "gate locked", "", baseTime)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.SaveFailure(ctx, record))

	suite.Require().NoError(suite.repository.Delete(ctx, d.ID()))

	_, err = suite.repository.Get(ctx, d.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.assertCount(&eventrepo.EventDTO{}, 0)
	suite.assertCount(&deliveryrepo.FailureDTO{}, 0)

	err = suite.repository.Delete(ctx, d.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestSaveProof_Upserts() {
	ctx := context.Background()
	d := suite.newDelivery()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	first, err := delivery.NewProofOfDelivery(d.ID(), "Jane", "photo-1", "", "", baseTime)
	suite.Require().NoError(err)
	second, err := delivery.NewProofOfDelivery(d.ID(), "John", "photo-2", "sig-2", "left at door", baseTime.Add(time.Minute))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.SaveProof(ctx, first))
	suite.Require().NoError(suite.repository.SaveProof(ctx, second))

	var stored deliveryrepo.ProofDTO
	suite.Require().NoError(suite.db.First(&stored, "delivery_id = ?", d.ID().Bytes()).Error)
	suite.Equal("John", stored.RecipientName)
	suite.Equal("photo-2", stored.PhotoRef)
	suite.assertCount(&deliveryrepo.ProofDTO{}, 1)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestSaveFailure_EmptyPhotoKeepsStoredOne() {
	ctx := context.Background()
	d := suite.newDelivery()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	withPhoto, err := delivery.NewFailureRecord(d.ID(), delivery.ReasonOther, "first", "photo-1", baseTime)
	suite.Require().NoError(err)
	withoutPhoto, err := delivery.NewFailureRecord(d.ID(), delivery.ReasonOther, "second", "", baseTime.Add(time.Minute))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.SaveFailure(ctx, withPhoto))
	suite.Require().NoError(suite.repository.SaveFailure(ctx, withoutPhoto))

	var stored deliveryrepo.FailureDTO
	suite.Require().NoError(suite.db.First(&stored, "delivery_id = ?", d.ID().Bytes()).Error)
	suite.Equal("second", stored.Notes)
	suite.Equal("photo-1", stored.PhotoRef)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestSaveFeedback_OnePerCustomer() {
	ctx := context.Background()
	d := suite.newDelivery()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	for i, rating := range []int{2, 5} {
		fb, err := delivery.NewFeedback(d.ID(), "customer-1", rating, "", baseTime.Add(time.Duration(i)*time.Minute))
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repository.SaveFeedback(ctx, fb))
	}
	other, err := delivery.NewFeedback(d.ID(), "customer-2", 4, "ok", baseTime)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.SaveFeedback(ctx, other))

	suite.assertCount(&deliveryrepo.FeedbackDTO{}, 2)
	var stored deliveryrepo.FeedbackDTO
	suite.Require().NoError(suite.db.First(&stored, "customer_ref = ?", "customer-1").Error)
	suite.Equal(5, stored.Rating)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) newDelivery() *delivery.Delivery {
	return suite.newDeliveryAt(baseTime)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) newDeliveryAt(at time.Time) *delivery.Delivery {
	pickup, err := delivery.NewAddress("Alexanderplatz 1, Berlin")
	suite.Require().NoError(err)
	dropoff, err := delivery.NewAddress("Potsdamer Platz 1, Berlin")
	suite.Require().NoError(err)

	d, err := delivery.NewDelivery(
		kernel.NewUUID(),
		delivery.GenerateReferenceCode(at),
		pickup,
		dropoff,
		delivery.Details{Customer: delivery.Customer{Name: "Jane Doe"}},
		at,
	)
	suite.Require().NoError(err)
	return d
}

func (suite *DeliveryRepositoryIntegrationTestSuite) assertCount(model any, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestDeliveryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryRepositoryIntegrationTestSuite))
}
