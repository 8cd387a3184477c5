package kernel

import (
	"errors"

	"dispatch/internal/pkg/errs"
)

// Polyline is an ordered path of points in (lat, lng) order. Routes returned
// by the routing provider and straight-line fallbacks are both polylines.
//
// A nil Polyline means no path is known. A path is drawable on a map only
// once it has at least two points.
//
// Example:
//
//	line, err := kernel.NewPolyline([][2]float64{{52.5219, 13.4132}, {52.5096, 13.3759}})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(line.IsDrawable()) // true
type Polyline []Location

// NewPolyline builds a path from [lat, lng] pairs. Every pair must be a valid
// coordinate; all invalid pairs are reported together.
//
// Parameters:
//   - pairs: points as [latitude, longitude], in travel order
//
// Returns:
//   - Polyline: the path, empty but non-nil for an empty input
//   - error: a ValueIsInvalid error wrapping every out-of-range pair
//
// Example:
//
//	line, err := kernel.NewPolyline(stored)
//	if err != nil {
//	    return nil // treat the cached route as missing
//	}
func NewPolyline(pairs [][2]float64) (Polyline, error) {
	line := make(Polyline, 0, len(pairs))
	var errList []error
	for _, p := range pairs {
		loc, err := NewLocation(p[0], p[1])
		if err != nil {
			errList = append(errList, err)
			continue
		}
		line = append(line, loc)
	}
	if len(errList) > 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("polyline", errors.Join(errList...))
	}
	return line, nil
}

// StraightLine is the two point path used when no road geometry is known.
//
// Example:
//
//	fallback := kernel.StraightLine(pickup, dropoff)
//	fmt.Println(len(fallback)) // 2
func StraightLine(from, to Location) Polyline {
	return Polyline{from, to}
}

// Pairs returns the path as [lat, lng] pairs, the shape used by the tracking
// payload and the route cache column. A nil path yields nil.
//
// Returns:
//   - [][2]float64: one pair per point, in path order
func (p Polyline) Pairs() [][2]float64 {
	if p == nil {
		return nil
	}
	out := make([][2]float64, len(p))
	for i, loc := range p {
		out[i] = loc.Pair()
	}
	return out
}

// IsDrawable reports whether the path has at least two points.
func (p Polyline) IsDrawable() bool {
	return len(p) >= 2
}
