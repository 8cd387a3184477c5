// Package guard provides ConstructorGuard, a marker embedded in domain values
// so that zero-value instances can be told apart from constructed ones.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is set only by NewConstructorGuard. A struct holding a zero
// guard was not built through its constructor and fails validation.
//
// Example:
//
//	var ErrRouteNotConstructed = errors.New("Route must be created via NewRoute")
//
//	type Route struct {
//	    points []kernel.Location
//	    guard  guard.ConstructorGuard
//	}
//
//	func (r Route) Validate() error {
//	    return r.guard.Validate(ErrRouteNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that passes validation.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
