package eventrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/eventrepo"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var baseTime = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

// EventRepositoryIntegrationTestSuite checks the append-only timeline store
// against PostgreSQL.
type EventRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *eventrepo.GormEventRepository
}

func (suite *EventRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&eventrepo.EventDTO{}))
}

func (suite *EventRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE delivery_events RESTART IDENTITY").Error)
	suite.repository = eventrepo.NewGormEventRepository(suite.db)
}

func (suite *EventRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *EventRepositoryIntegrationTestSuite) TestAppend_SecondPendingIsDropped() {
	ctx := context.Background()
	id := kernel.NewUUID()

	suite.append(id, delivery.LabelPending, "Order created", baseTime)
	suite.append(id, delivery.LabelPending, "Order created", baseTime.Add(time.Second))

	events, err := suite.repository.List(ctx, id)
	suite.Require().NoError(err)
	suite.Require().Len(events, 1)
	suite.Equal(baseTime, events[0].OccurredAt())
}

func (suite *EventRepositoryIntegrationTestSuite) TestAppend_OtherLabelsRepeat() {
	ctx := context.Background()
	id := kernel.NewUUID()

	suite.append(id, delivery.LabelAssigned, "Assigned to driver_id=a", baseTime)
	suite.append(id, delivery.LabelAssigned, "Reassigned a -> b", baseTime.Add(time.Minute))

	events, err := suite.repository.List(ctx, id)
	suite.Require().NoError(err)
	suite.Len(events, 2)
}

func (suite *EventRepositoryIntegrationTestSuite) TestList_OrdersByTimeThenInsertion() {
	ctx := context.Background()
	id := kernel.NewUUID()
	at := baseTime.Add(time.Hour)

	suite.append(id, delivery.LabelPickedUp, "Picked up", at)
	suite.append(id, delivery.LabelInTransit, "In transit", at)
	suite.append(id, delivery.LabelPending, "Order created", baseTime)
	suite.append(kernel.NewUUID(), delivery.LabelPending, "Order created", baseTime)

	events, err := suite.repository.List(ctx, id)
	suite.Require().NoError(err)
	suite.Require().Len(events, 3)
	suite.Equal(delivery.LabelPending, events[0].Label())
	suite.Equal(delivery.LabelPickedUp, events[1].Label())
	suite.Equal(delivery.LabelInTransit, events[2].Label())
	suite.Equal(delivery.StatusInTransit, events[1].Status())
	suite.Less(events[1].ID(), events[2].ID())
	suite.Equal(id, events[0].DeliveryID())
	suite.Equal("system", events[0].Actor())
}

func (suite *EventRepositoryIntegrationTestSuite) TestHasLabelAndEarliest() {
	ctx := context.Background()
	id := kernel.NewUUID()

	earliest, err := suite.repository.Earliest(ctx, id)
	suite.Require().NoError(err)
	suite.Nil(earliest)

	suite.append(id, delivery.LabelAssigned, "Assigned", baseTime.Add(time.Minute))
	suite.append(id, delivery.LabelPickedUp, "Picked up", baseTime.Add(2*time.Minute))

	has, err := suite.repository.HasLabel(ctx, id, delivery.LabelPickedUp)
	suite.Require().NoError(err)
	suite.True(has)

	has, err = suite.repository.HasLabel(ctx, id, delivery.LabelPending)
	suite.Require().NoError(err)
	suite.False(has)

	earliest, err = suite.repository.Earliest(ctx, id)
	suite.Require().NoError(err)
	suite.Require().NotNil(earliest)
	suite.True(earliest.Equal(baseTime.Add(time.Minute)))
}

func (suite *EventRepositoryIntegrationTestSuite) append(
	id kernel.UUID,
	label delivery.EventLabel,
	note string,
	at time.Time,
) {
	event, err := delivery.NewEvent(id, label, note, "system", at)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Append(context.Background(), event))
}

func TestEventRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(EventRepositoryIntegrationTestSuite))
}
