package queries

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dispatch/internal/core/application/geometry"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// GeometryRepairer fills in missing geocodes and routes of a delivery.
type GeometryRepairer interface {
	Repair(ctx context.Context, d *delivery.Delivery) (geometry.Geometry, bool)
}

// GetTrackingQueryHandler assembles the live tracking view. Missing geometry
// is repaired on the way and written back; provider or storage trouble on
// anything but the delivery itself only leaves fields empty.
type GetTrackingQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	repairer   GeometryRepairer
	clock      ports.Clock
	staleAfter time.Duration
	logger     *slog.Logger
}

func NewGetTrackingQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
	repairer GeometryRepairer,
	clock ports.Clock,
	staleAfter time.Duration,
	logger *slog.Logger,
) GetTrackingQueryHandler {
	return GetTrackingQueryHandler{
		uowFactory: uowFactory,
		repairer:   repairer,
		clock:      clock,
		staleAfter: staleAfter,
		logger:     logger.With("component", "GetTrackingQueryHandler"),
	}
}

func (h GetTrackingQueryHandler) Handle(ctx context.Context, query GetTrackingQuery) (GetTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTrackingQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	repo := uow.DeliveryRepository()

	var (
		d   *delivery.Delivery
		err error
	)
	if query.id != nil {
		d, err = repo.Get(ctx, *query.id)
	} else {
		d, err = repo.GetByReference(ctx, query.reference)
	}
	if err != nil {
		return GetTrackingQueryResponse{}, err
	}

	resolved, changed := h.repairer.Repair(ctx, d)
	if changed {
		d.MarkGeometryClean()
		if _, err = repo.UpdateGeometry(ctx, d); err != nil {
			h.logger.ErrorContext(ctx, "failed to store repaired geometry",
				"delivery_id", d.ID().String(),
				"error", err)
		}
	}

	response := GetTrackingQueryResponse{
		Delivery: deliveryView(d),
		Pickup:   pointView(resolved.Pickup),
		Dropoff:  pointView(resolved.Dropoff),
	}
	if len(resolved.Route) > 0 {
		response.Route = resolved.Route.Pairs()
	}

	if courierID := d.Courier(); courierID != nil {
		c, courierErr := uow.CourierRepository().Get(ctx, *courierID)
		switch {
		case courierErr == nil:
			response.Driver = &DriverView{ID: c.ID(), Name: c.Name()}
		case !errors.Is(courierErr, errs.ErrObjectNotFound):
			h.logger.ErrorContext(ctx, "failed to load courier", "courier_id", courierID.String(), "error", courierErr)
		}

		sample, locationErr := uow.DriverLocationRepository().Get(ctx, *courierID)
		switch {
		case locationErr == nil:
			view := driverLocationView(sample, h.clock.Now(), h.staleAfter)
			response.DriverLocation = &view
		case !errors.Is(locationErr, errs.ErrObjectNotFound):
			h.logger.ErrorContext(ctx, "failed to load driver location", "courier_id", courierID.String(), "error", locationErr)
		}
	}

	return response, nil
}
