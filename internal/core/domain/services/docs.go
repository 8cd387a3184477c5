// Package services provides domain services that coordinate more than one
// aggregate.
//
// The package includes:
//   - CourierAssigner: validates a courier and a delivery and executes the
//     assignment or reassignment
package services
