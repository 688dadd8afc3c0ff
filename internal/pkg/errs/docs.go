// Package errs provides the error kinds shared by the order and user registries.
//
// The package includes:
//   - ValueIsRequiredError: a mandatory value is missing or empty
//   - ValueIsInvalidError: a value is present but not acceptable
//   - ObjectNotFoundError: no record exists under the given identifier
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies it
//
// Callers at the edge of the system (the HTTP adapter) map the sentinels onto
// transport status codes; nothing below the adapter retries or recovers.
package errs
