// Package geometry resolves the coordinates and driving route of a delivery.
//
// GeocodeCache and RouteCache decide between reusing what is stored on the
// delivery and calling the external provider once. Provider failures are
// logged and counted but never returned: a failed geocode leaves the previous
// coordinates in place, a failed route falls back to a straight line that is
// not stored. Resolver combines both and shares in-flight provider calls
// between concurrent repairs of the same delivery.
package geometry
