package cmd

import (
	"errors"
	"io"
	"log/slog"

	httpadapter "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/geo"
	"dispatch/internal/adapters/out/kafka"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/geometry"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"
	"dispatch/internal/metrics"
	"dispatch/internal/pkg/clock"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type publisherCloser interface {
	ports.EventPublisher
	io.Closer
}

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      ports.Clock
	metrics    *metrics.Metrics
	publisher  publisherCloser
	resolver   *geometry.Resolver
	logger     *slog.Logger
}

// NewCompositionRoot builds the shared infrastructure. Status changes go to
// kafka when brokers are configured and are dropped otherwise.
func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	registerer prometheus.Registerer,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	if gormDB == nil {
		return nil, errNilDB
	}

	geocoder, err := geo.NewNominatimGeocoder(configs.GeocoderURL, configs.GeocoderUserAgent)
	if err != nil {
		return nil, err
	}
	router, err := geo.NewOSRMRouter(configs.RouterURL)
	if err != nil {
		return nil, err
	}

	var publisher publisherCloser = kafka.NoopPublisher{}
	if brokers := configs.KafkaBrokers(); len(brokers) > 0 {
		producer, err := kafka.NewProducer(brokers)
		if err != nil {
			return nil, err
		}
		publisher = kafka.NewPublisher(producer, configs.KafkaDeliveryChangedTopic, logger)
	}

	systemClock := clock.System{}
	m := metrics.New(registerer)

	return &CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      systemClock,
		metrics:    m,
		publisher:  publisher,
		resolver: geometry.NewResolver(
			geometry.NewGeocodeCache(geocoder, m, logger),
			geometry.NewRouteCache(router, systemClock, m, logger),
		),
		logger: logger,
	}, nil
}

// Close releases the event publisher.
func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

func (c *CompositionRoot) eventPublisher() ports.EventPublisher {
	return metrics.NewCountingPublisher(c.publisher, c.metrics)
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) courierUoWFactory() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uowFactoryAll() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.deliveryUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateAddressesCommandHandler() commands.UpdateAddressesCommandHandler {
	return commands.NewUpdateAddressesCommandHandler(c.deliveryUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	return commands.NewAssignCourierCommandHandler(c.uowFactoryAll(), c.eventPublisher(), c.clock)
}

func (c *CompositionRoot) CreateAdvanceStatusCommandHandler() commands.AdvanceStatusCommandHandler {
	return commands.NewAdvanceStatusCommandHandler(c.deliveryUoWFactory(), c.eventPublisher(), c.clock)
}

func (c *CompositionRoot) CreateSubmitProofCommandHandler() commands.SubmitProofCommandHandler {
	return commands.NewSubmitProofCommandHandler(c.deliveryUoWFactory(), c.eventPublisher(), c.clock)
}

func (c *CompositionRoot) CreateReportFailureCommandHandler() commands.ReportFailureCommandHandler {
	return commands.NewReportFailureCommandHandler(c.deliveryUoWFactory(), c.eventPublisher(), c.clock)
}

func (c *CompositionRoot) CreateCancelDeliveryCommandHandler() commands.CancelDeliveryCommandHandler {
	return commands.NewCancelDeliveryCommandHandler(c.deliveryUoWFactory(), c.eventPublisher(), c.clock)
}

func (c *CompositionRoot) CreateDeleteDeliveryCommandHandler() commands.DeleteDeliveryCommandHandler {
	return commands.NewDeleteDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateSubmitFeedbackCommandHandler() commands.SubmitFeedbackCommandHandler {
	return commands.NewSubmitFeedbackCommandHandler(c.deliveryUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	return commands.NewCreateCourierCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreatePushLocationCommandHandler() commands.PushLocationCommandHandler {
	return commands.NewPushLocationCommandHandler(c.courierUoWFactory(), c.clock, c.metrics)
}

func (c *CompositionRoot) CreateRepairGeometryCommandHandler() commands.RepairGeometryCommandHandler {
	return commands.NewRepairGeometryCommandHandler(c.deliveryUoWFactory(), c.resolver, c.logger)
}

func (c *CompositionRoot) CreateGetTrackingQueryHandler() queries.GetTrackingQueryHandler {
	return queries.NewGetTrackingQueryHandler(c.uowFactory, c.resolver, c.clock, c.configs.LocationStaleAfter, c.logger)
}

func (c *CompositionRoot) CreateGetTimelineQueryHandler() queries.GetTimelineQueryHandler {
	return queries.NewGetTimelineQueryHandler(c.uowFactory, c.clock)
}

func (c *CompositionRoot) CreateGetDriverLocationQueryHandler() queries.GetDriverLocationQueryHandler {
	return queries.NewGetDriverLocationQueryHandler(c.uowFactory, c.clock, c.configs.LocationStaleAfter)
}

func (c *CompositionRoot) CreateGetDriverLocationsQueryHandler() queries.GetDriverLocationsQueryHandler {
	return queries.NewGetDriverLocationsQueryHandler(c.gormDB, c.clock, c.configs.LocationStaleAfter)
}

func (c *CompositionRoot) CreateGetActiveDeliveriesQueryHandler() queries.GetActiveDeliveriesQueryHandler {
	return queries.NewGetActiveDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProofQueryHandler() queries.GetProofQueryHandler {
	return queries.NewGetProofQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFailureQueryHandler() queries.GetFailureQueryHandler {
	return queries.NewGetFailureQueryHandler(c.gormDB)
}

// HTTPHandlers collects every handler served by the HTTP adapter.
func (c *CompositionRoot) HTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		CreateDelivery:  c.CreateCreateDeliveryCommandHandler(),
		UpdateAddresses: c.CreateUpdateAddressesCommandHandler(),
		AssignCourier:   c.CreateAssignCourierCommandHandler(),
		AdvanceStatus:   c.CreateAdvanceStatusCommandHandler(),
		SubmitProof:     c.CreateSubmitProofCommandHandler(),
		ReportFailure:   c.CreateReportFailureCommandHandler(),
		CancelDelivery:  c.CreateCancelDeliveryCommandHandler(),
		DeleteDelivery:  c.CreateDeleteDeliveryCommandHandler(),
		SubmitFeedback:  c.CreateSubmitFeedbackCommandHandler(),
		CreateCourier:   c.CreateCreateCourierCommandHandler(),
		PushLocation:    c.CreatePushLocationCommandHandler(),

		GetTracking:         c.CreateGetTrackingQueryHandler(),
		GetTimeline:         c.CreateGetTimelineQueryHandler(),
		GetDriverLocation:   c.CreateGetDriverLocationQueryHandler(),
		GetDriverLocations:  c.CreateGetDriverLocationsQueryHandler(),
		GetActiveDeliveries: c.CreateGetActiveDeliveriesQueryHandler(),
		GetProof:            c.CreateGetProofQueryHandler(),
		GetFailure:          c.CreateGetFailureQueryHandler(),
	}
}

// JobManager wires the scheduled jobs.
func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewGeometryRepairJob(
			c.CreateRepairGeometryCommandHandler(),
			c.configs.GeometryRepairSchedule,
			c.configs.GeometryRepairBatch,
			c.logger,
		),
	)
}

var errNilDB = errors.New("gorm db is required")

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
