// Package errs provides standardized error types for the order audit application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes two families of error types.
//
// Generic value errors, returned when constructing commands, queries and value objects:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside an allowed range
//   - ObjectNotFoundError: For when an object cannot be found
//
// Finding errors, recorded against a single order by the validation engine:
//   - StructuralError: a required field is missing or malformed (id, sku, status)
//   - FormatError: a present value has the wrong shape (email)
//   - BusinessRuleError: a cross-field or consistency rule is violated
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
package errs
