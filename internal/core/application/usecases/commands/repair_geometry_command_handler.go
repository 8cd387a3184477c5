package commands

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/geometry"
	"dispatch/internal/core/domain/model/delivery"
)

// GeometryRepairer fills in missing geocodes and routes of a delivery.
type GeometryRepairer interface {
	Repair(ctx context.Context, d *delivery.Delivery) (geometry.Geometry, bool)
}

// RepairGeometryCommandHandler repairs deliveries flagged after creation or an
// address change. Provider calls run outside any transaction; each delivery is
// then written on its own so one failure does not hold back the batch.
type RepairGeometryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	repairer   GeometryRepairer
	logger     *slog.Logger
}

func NewRepairGeometryCommandHandler(
	uowFactory DeliveryUoWFactory,
	repairer GeometryRepairer,
	logger *slog.Logger,
) RepairGeometryCommandHandler {
	return RepairGeometryCommandHandler{
		uowFactory: uowFactory,
		repairer:   repairer,
		logger:     logger.With("component", "RepairGeometryCommandHandler"),
	}
}

// Handle returns the number of deliveries whose geometry was written back.
func (h RepairGeometryCommandHandler) Handle(ctx context.Context, cmd RepairGeometryCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	dirty, err := h.uowFactory.Create().DeliveryRepository().GetGeometryDirty(ctx, cmd.Batch())
	if err != nil {
		return 0, err
	}

	repaired := 0
	for _, d := range dirty {
		if ctx.Err() != nil {
			return repaired, ctx.Err()
		}

		h.repairer.Repair(ctx, d)
		d.MarkGeometryClean()

		written, err := h.uowFactory.Create().DeliveryRepository().UpdateGeometry(ctx, d)
		if err != nil {
			h.logger.Error("failed to store repaired geometry",
				"delivery_id", d.ID().String(),
				"error", err)
			continue
		}
		if !written {
			h.logger.Info("addresses changed during repair, geometry left to the next run",
				"delivery_id", d.ID().String())
			continue
		}
		repaired++
	}

	return repaired, nil
}
