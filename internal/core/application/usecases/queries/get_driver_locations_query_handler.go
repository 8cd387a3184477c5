package queries

import (
	"context"
	"database/sql"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriverLocationsQueryHandler reads courier samples straight from the
// database. Couriers that never reported a location are not listed.
type GetDriverLocationsQueryHandler struct {
	db         *gorm.DB
	clock      ports.Clock
	staleAfter time.Duration
}

func NewGetDriverLocationsQueryHandler(
	db *gorm.DB,
	clock ports.Clock,
	staleAfter time.Duration,
) GetDriverLocationsQueryHandler {
	if staleAfter <= 0 {
		staleAfter = courier.DefaultStaleAfter
	}
	return GetDriverLocationsQueryHandler{db: db, clock: clock, staleAfter: staleAfter}
}

// Handle returns the freshest samples first.
func (h GetDriverLocationsQueryHandler) Handle(
	ctx context.Context,
	query GetDriverLocationsQuery,
) ([]GetDriverLocationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	locations := make([]GetDriverLocationsQueryResponse, 0)
	now := h.clock.Now()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			l.lat,
			l.lng,
			l.accuracy,
			l.heading,
			l.speed,
			l.recorded_at
		FROM driver_locations l
		JOIN couriers c ON c.id = l.courier_id
		ORDER BY l.recorded_at DESC, c.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetDriverLocationsQueryResponse
		var id uuid.UUID
		var accuracy, heading, speed sql.NullFloat64

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Lat,
			&resp.Lng,
			&accuracy,
			&heading,
			&speed,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		courierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.CourierID = courierID
		resp.Accuracy = nullableFloat(accuracy)
		resp.Heading = nullableFloat(heading)
		resp.Speed = nullableFloat(speed)
		resp.UpdatedAt = resp.UpdatedAt.UTC()
		resp.Stale = now.Sub(resp.UpdatedAt) > h.staleAfter

		locations = append(locations, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return locations, nil
}

func nullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}
