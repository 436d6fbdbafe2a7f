// Package errs provides standardized error types for the atelier service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package maps the workflow engine's error taxonomy onto typed errors:
//   - ObjectNotFoundError: an order, task or staff member does not resolve
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: validation failures
//   - ObjectConflictError: a write would produce a second active task or a duplicate order number
//   - StatusSyncError: non-fatal failure to propagate task activity into order status
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify errors with errors.Is against the sentinels and read the
// offending parameter with Field.
package errs
