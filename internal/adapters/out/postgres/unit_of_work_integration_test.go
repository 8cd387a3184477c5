package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var baseTime = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

// UnitOfWorkIntegrationTestSuite exercises transaction boundaries across the
// delivery, event and courier repositories with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE deliveries, delivery_events, delivery_proofs, delivery_failures, " +
			"delivery_feedback, couriers, driver_locations",
	).Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.DeliveryRepository())
	suite.NotNil(uow1.EventRepository())
	suite.NotNil(uow1.CourierRepository())
	suite.NotNil(uow1.DriverLocationRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DeliveryAndEventsCommitTogether() {
	ctx := context.Background()
	uow := suite.factory.Create()
	d := createTestDelivery(suite)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, d))
	suite.appendEvent(ctx, uow, d.ID(), delivery.LabelPending)
	suite.Require().NoError(uow.Commit(ctx))

	other := suite.factory.Create()
	loaded, err := other.DeliveryRepository().Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(d.ID(), loaded.ID())

	events, err := other.EventRepository().List(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Len(events, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()
	d := createTestDelivery(suite)
	c, err := courier.NewCourier(kernel.NewUUID(), "Anna")
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, d))
	suite.Require().NoError(uow.CourierRepository().Add(ctx, c))
	suite.appendEvent(ctx, uow, d.ID(), delivery.LabelPending)

	_, err = uow.DeliveryRepository().Get(ctx, d.ID())
	suite.Require().NoError(err, "Delivery should be visible inside the transaction")

	suite.Require().NoError(uow.Rollback(ctx))

	other := suite.factory.Create()
	_, err = other.DeliveryRepository().Get(ctx, d.ID())
	suite.Require().Error(err, "Delivery should not exist after rollback")
	_, err = other.CourierRepository().Get(ctx, c.ID())
	suite.Require().Error(err, "Courier should not exist after rollback")
	events, err := other.EventRepository().List(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Empty(events)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	d1 := createTestDelivery(suite)
	d2 := createTestDelivery(suite)

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.DeliveryRepository().Add(ctx, d1))
	suite.Require().NoError(uow2.DeliveryRepository().Add(ctx, d2))

	_, err := uow1.DeliveryRepository().Get(ctx, d2.ID())
	suite.Require().Error(err, "UOW1 should not see d2")
	_, err = uow2.DeliveryRepository().Get(ctx, d1.ID())
	suite.Require().Error(err, "UOW2 should not see d1")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	other := suite.factory.Create()
	_, err = other.DeliveryRepository().Get(ctx, d1.ID())
	suite.Require().NoError(err)
	_, err = other.DeliveryRepository().Get(ctx, d2.ID())
	suite.Require().Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()
	courierID := kernel.NewUUID()
	point, _ := kernel.NewLocation(52.52, 13.40)
	location, err := courier.NewLocation(courierID, point, courier.Reading{}, baseTime)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.DriverLocationRepository().Push(ctx, location))

	loaded, err := suite.factory.Create().DriverLocationRepository().Get(ctx, courierID)
	suite.Require().NoError(err)
	suite.InDelta(52.52, loaded.Point().Lat(), 1e-9)
}

func (suite *UnitOfWorkIntegrationTestSuite) appendEvent(
	ctx context.Context,
	uow ports.UnitOfWork,
	id kernel.UUID,
	label delivery.EventLabel,
) {
	event, err := delivery.NewEvent(id, label, "Order created", "system", baseTime)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.EventRepository().Append(ctx, event))
}

func createTestDelivery(suite *UnitOfWorkIntegrationTestSuite) *delivery.Delivery {
	pickup, err := delivery.NewAddress("Alexanderplatz 1, Berlin")
	suite.Require().NoError(err)
	dropoff, err := delivery.NewAddress("Potsdamer Platz 1, Berlin")
	suite.Require().NoError(err)

	d, err := delivery.NewDelivery(
		kernel.NewUUID(),
		delivery.GenerateReferenceCode(baseTime),
		pickup,
		dropoff,
		delivery.Details{Customer: delivery.Customer{Name: "Jane Doe"}},
		baseTime,
	)
	suite.Require().NoError(err)
	return d
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
