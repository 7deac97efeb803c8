// Package errs provides standardized error types for the order manager.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the error taxonomy of the order workflow:
//   - ObjectNotFoundError: a lookup by identifier found nothing
//   - ValueIsRequiredError / ValueIsInvalidError: input validation failures
//   - PreconditionFailedError: a conditional store write lost its race
//   - CallbackResumeError: a suspended caller could not be resumed
//   - CollaboratorUnavailableError: an external dependency failed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrPreconditionFailed)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Menu validation rejections are deliberately NOT errors: an invalid drink
// order is a normal negative outcome reported to the caller as a boolean
// result, not an exception path.
package errs
