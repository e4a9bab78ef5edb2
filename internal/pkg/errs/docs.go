// Package errs provides standardized error types for the shipping application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type carrying error details
//   - constructor functions with and without a cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// The HTTP adapter relies on the sentinels to map errors onto status codes:
// required/invalid/out-of-range map to 400, not-found to 404, conflict to 409
// and unauthorized to 401.
package errs
