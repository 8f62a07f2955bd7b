// Package errs provides standardized error types for the workshop application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: a referenced job, holding point, signoff, assignment,
//     or delivery note does not exist
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is invalid
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds
//   - InvalidStateError: an operation was invoked while the aggregate is not in
//     the state it requires; the message names current vs. required state
//   - ConcurrentModificationError: two stage-affecting writes raced on the same job
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// All failures in this application are per-request: they are recovered at the
// boundary of a single operation and reported to the caller; none is silently
// swallowed and none causes cascading failure of unrelated jobs.
package errs
