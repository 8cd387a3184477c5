// Package errs provides standardized error types for the dispatch service.
//
// Every type pairs a sentinel (matched with errors.Is) with a struct carrying
// the details of the failure:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//   - ObjectNotFoundError: a referenced delivery or courier does not exist
//   - InvalidTransitionError: a status change outside the delivery lifecycle;
//     terminal-state rejections additionally match ErrTerminalState
//   - DeleteRejectedError: removal refused for the entity's current state
//   - ExternalServiceError: a geocoding or routing provider failed
//   - PersistenceError: the underlying storage failed
package errs
