// Package delivery holds the Delivery aggregate and its lifecycle.
//
// The package includes:
//   - Delivery: aggregate root owning the stored status, addresses with their
//     geocode cache and the cached driving route
//   - Status: the stored state machine PENDING -> ASSIGNED -> IN_TRANSIT -> DELIVERED | FAILED,
//     with CANCELLED reachable from every non-terminal state
//   - EventLabel and Action: the timeline vocabulary, which adds PICKED_UP
//   - Event, ProofOfDelivery, FailureRecord, Feedback: records attached to a delivery
//
// Transitions never touch storage. They return a Transition listing the
// timeline entries the caller must append in the same unit of work.
package delivery
