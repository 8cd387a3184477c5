package courierrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/courierrepo"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CourierRepositoryIntegrationTestSuite covers courier profiles and the
// one-row-per-courier location store.
type CourierRepositoryIntegrationTestSuite struct {
	suite.Suite
	container          *postgres.PostgresContainer
	db                 *gorm.DB
	courierRepository  *courierrepo.GormCourierRepository
	locationRepository *courierrepo.GormDriverLocationRepository
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&courierrepo.CourierDTO{},
		&courierrepo.DriverLocationDTO{},
	))
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE couriers, driver_locations").Error)

	suite.courierRepository = courierrepo.NewGormCourierRepository(suite.db)
	suite.locationRepository = courierrepo.NewGormDriverLocationRepository(suite.db)
}

func (suite *CourierRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CourierRepositoryIntegrationTestSuite) TestAdd_ValidCourier_Success() {
	ctx := context.Background()
	c := suite.createTestCourier("Anna")

	suite.Require().NoError(suite.courierRepository.Add(ctx, c))

	loaded, err := suite.courierRepository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.True(c.IsEqual(loaded))
	suite.Equal("Anna", loaded.Name())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestUpdate_Rename() {
	ctx := context.Background()
	c := suite.createTestCourier("Anna")
	suite.Require().NoError(suite.courierRepository.Add(ctx, c))

	suite.Require().NoError(c.Rename("Anna K."))
	suite.Require().NoError(suite.courierRepository.Update(ctx, c))

	loaded, err := suite.courierRepository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal("Anna K.", loaded.Name())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestUpdate_Missing_ReturnsNotFound() {
	c := suite.createTestCourier("Ghost")

	err := suite.courierRepository.Update(context.Background(), c)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.courierRepository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestPush_KeepsOnlyLatestSample() {
	ctx := context.Background()
	courierID := kernel.NewUUID()
	speed := 8.5

	first := suite.createLocation(courierID, 52.52, 13.40, courier.Reading{}, time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC))
	second := suite.createLocation(courierID, 52.53, 13.41, courier.Reading{Speed: &speed}, time.Date(2025, 3, 14, 9, 1, 0, 0, time.UTC))

	suite.Require().NoError(suite.locationRepository.Push(ctx, first))
	suite.Require().NoError(suite.locationRepository.Push(ctx, second))

	var count int64
	suite.Require().NoError(suite.db.Model(&courierrepo.DriverLocationDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	loaded, err := suite.locationRepository.Get(ctx, courierID)
	suite.Require().NoError(err)
	suite.InDelta(52.53, loaded.Point().Lat(), 1e-9)
	suite.InDelta(13.41, loaded.Point().Lng(), 1e-9)
	suite.Require().NotNil(loaded.Speed())
	suite.InDelta(8.5, *loaded.Speed(), 1e-9)
	suite.Nil(loaded.Heading())
	suite.True(loaded.RecordedAt().Equal(second.RecordedAt()))
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGetLocation_Missing_ReturnsNotFound() {
	_, err := suite.locationRepository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CourierRepositoryIntegrationTestSuite) createTestCourier(name string) *courier.Courier {
	c, err := courier.NewCourier(kernel.NewUUID(), name)
	suite.Require().NoError(err)
	return c
}

func (suite *CourierRepositoryIntegrationTestSuite) createLocation(
	courierID kernel.UUID,
	lat, lng float64,
	reading courier.Reading,
	at time.Time,
) courier.Location {
	point, err := kernel.NewLocation(lat, lng)
	suite.Require().NoError(err)
	location, err := courier.NewLocation(courierID, point, reading, at)
	suite.Require().NoError(err)
	return location
}

func TestCourierRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CourierRepositoryIntegrationTestSuite))
}
