package kernel

import (
	"errors"
	"fmt"
	"math"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// LatitudeMin is the southern bound of a valid latitude, in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the northern bound of a valid latitude, in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the western bound of a valid longitude, in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the eastern bound of a valid longitude, in degrees.
	LongitudeMax = 180.0

	// earthRadiusMeters is the mean earth radius used by DistanceMeters.
	earthRadiusMeters = 6371000.0
)

// ErrLocationIsNotConstructed is returned when a Location that did not come
// from NewLocation is validated or compared. The zero value always fails with
// this error.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation")

// Location is a point in WGS84 degrees. The domain always orders the pair as
// (latitude, longitude); adapters talking to providers that use (lon, lat)
// convert at their boundary.
//
// Location is an immutable value object. The zero value is invalid and fails
// Validate, so geocodes, courier samples and route points are all built with
// NewLocation.
//
// Example:
//
//	pickup, err := kernel.NewLocation(40.7128, -74.0060)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(pickup.Lat(), pickup.Lng())
type Location struct { //nolint:recvcheck // setters use pointer receivers
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewLocation creates a Location from a latitude and a longitude.
// NaN is rejected for either value. When both values are out of range the
// returned error joins both violations.
//
// Parameters:
//   - lat: latitude in degrees, within [LatitudeMin, LatitudeMax]
//   - lng: longitude in degrees, within [LongitudeMin, LongitudeMax]
//
// Returns:
//   - Location: a valid location
//   - error: a ValueIsOutOfRange error for every coordinate outside its bounds
//
// Example:
//
//	loc, err := kernel.NewLocation(52.5219, 13.4132)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(loc) // Location(52.5219,13.4132)
func NewLocation(lat, lng float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLat(lat), loc.setLng(lng)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate reports whether the location was built by NewLocation.
//
// Returns:
//   - error: ErrLocationIsNotConstructed for the zero value, nil otherwise
//
// Example:
//
//	var missing kernel.Location
//	err := missing.Validate() // ErrLocationIsNotConstructed
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Lat returns the latitude in degrees.
func (l Location) Lat() float64 {
	return l.lat
}

// Lng returns the longitude in degrees.
func (l Location) Lng() float64 {
	return l.lng
}

// Pair returns the point as [lat, lng]. This is the order used in route
// payloads and in the stored route cache.
//
// Example:
//
//	loc, _ := kernel.NewLocation(52.5219, 13.4132)
//	pair := loc.Pair() // [52.5219 13.4132]
func (l Location) Pair() [2]float64 {
	return [2]float64{l.lat, l.lng}
}

// String implements fmt.Stringer and formats the point as "Location(lat,lng)".
func (l Location) String() string {
	return fmt.Sprintf("Location(%g,%g)", l.lat, l.lng)
}

// IsEqual reports whether both locations are valid and identical.
// Coordinates are compared exactly, without tolerance.
//
// Parameters:
//   - other: the location to compare with
//
// Returns:
//   - bool: true when latitude and longitude match
//   - error: ErrLocationIsNotConstructed if either side is the zero value
//
// Example:
//
//	a, _ := kernel.NewLocation(52.52, 13.40)
//	b, _ := kernel.NewLocation(52.52, 13.40)
//	equal, err := a.IsEqual(b) // true, nil
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l.lat == other.lat && l.lng == other.lng, nil
}

// DistanceMeters returns the great-circle distance to other using the
// haversine formula on a sphere of radius 6371 km. The result is symmetric.
//
// Parameters:
//   - other: the second point
//
// Returns:
//   - float64: distance in meters
//   - error: ErrLocationIsNotConstructed if either side is the zero value
//
// Example:
//
//	alex, _ := kernel.NewLocation(52.5219, 13.4132)
//	potsdamer, _ := kernel.NewLocation(52.5096, 13.3759)
//	meters, err := alex.DistanceMeters(potsdamer) // about 2870
func (l Location) DistanceMeters(other Location) (float64, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := l.lat * math.Pi / 180
	lat2 := other.lat * math.Pi / 180
	dLat := lat2 - lat1
	dLng := (other.lng - l.lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(a)), nil
}

// setLat sets the latitude after a range check. Setters take a pointer so
// NewLocation can validate each field on the value it is building.
func (l *Location) setLat(lat float64) error {
	if math.IsNaN(lat) || lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("lat", lat, LatitudeMin, LatitudeMax)
	}

	l.lat = lat
	return nil
}

// setLng sets the longitude after a range check.
func (l *Location) setLng(lng float64) error {
	if math.IsNaN(lng) || lng < LongitudeMin || lng > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("lng", lng, LongitudeMin, LongitudeMax)
	}

	l.lng = lng
	return nil
}
