package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetDriverLocationsQueryIsNotConstructed = errors.New(
	"GetDriverLocationsQuery must be created via NewGetDriverLocationsQuery constructor",
)

// GetDriverLocationsQuery lists the last sample of every courier for the
// dispatcher map.
//
// Example:
//
//	query := NewGetDriverLocationsQuery()
//	handler := NewGetDriverLocationsQueryHandler(db, clock, 10*time.Minute)
//
//	locations, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get driver locations: %w", err)
//	}
//	for _, l := range locations {
//	    fmt.Printf("%s at (%.5f, %.5f) stale=%v\n", l.Name, l.Lat, l.Lng, l.Stale)
//	}
type GetDriverLocationsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDriverLocationsQuery() GetDriverLocationsQuery {
	return GetDriverLocationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDriverLocationsQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverLocationsQueryIsNotConstructed)
}

// GetDriverLocationsQueryResponse is one courier with its last sample.
type GetDriverLocationsQueryResponse struct {
	CourierID kernel.UUID
	Name      string
	Lat       float64
	Lng       float64
	Accuracy  *float64
	Heading   *float64
	Speed     *float64
	UpdatedAt time.Time
	Stale     bool
}
