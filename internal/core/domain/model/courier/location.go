package courier

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

const (
	HeadingMin = 0.0
	HeadingMax = 360.0

	// DefaultStaleAfter is the age after which a sample is shown as outdated.
	DefaultStaleAfter = 10 * time.Minute
)

// Location is the latest position reported by a courier. Exactly one is kept
// per courier and every push replaces it.
type Location struct {
	courierID  kernel.UUID
	point      kernel.Location
	accuracy   *float64
	heading    *float64
	speed      *float64
	recordedAt time.Time
}

// Reading holds the optional sensor values of a push.
type Reading struct {
	Accuracy *float64
	Heading  *float64
	Speed    *float64
}

func NewLocation(courierID kernel.UUID, point kernel.Location, reading Reading, recordedAt time.Time) (Location, error) {
	var errList []error
	errList = append(errList, courierID.Validate(), point.Validate())
	if v := reading.Accuracy; v != nil && *v < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("accuracy", *v, 0, "unbounded"))
	}
	if v := reading.Heading; v != nil && (*v < HeadingMin || *v > HeadingMax) {
		errList = append(errList, errs.NewValueIsOutOfRangeError("heading", *v, HeadingMin, HeadingMax))
	}
	if v := reading.Speed; v != nil && *v < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("speed", *v, 0, "unbounded"))
	}
	if recordedAt.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("recorded at"))
	}
	if err := errors.Join(errList...); err != nil {
		return Location{}, err
	}

	return Location{
		courierID:  courierID,
		point:      point,
		accuracy:   reading.Accuracy,
		heading:    reading.Heading,
		speed:      reading.Speed,
		recordedAt: recordedAt,
	}, nil
}

func (l Location) CourierID() kernel.UUID { return l.courierID }
func (l Location) Point() kernel.Location { return l.point }
func (l Location) Accuracy() *float64     { return l.accuracy }
func (l Location) Heading() *float64      { return l.heading }
func (l Location) Speed() *float64        { return l.speed }
func (l Location) RecordedAt() time.Time  { return l.recordedAt }

// Age is the time elapsed since the sample was recorded.
func (l Location) Age(now time.Time) time.Duration {
	return now.Sub(l.recordedAt)
}

// IsStale reports whether the sample is older than threshold. A non-positive
// threshold uses DefaultStaleAfter.
func (l Location) IsStale(now time.Time, threshold time.Duration) bool {
	if threshold <= 0 {
		threshold = DefaultStaleAfter
	}
	return l.Age(now) > threshold
}
