// Package errs provides standardized error types for the dispatch service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping used throughout the application.
//
// The package includes error types for the common failure scenarios:
//   - ObjectNotFoundError: a requested entity does not exist
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a value is outside its allowed bounds
//   - UnavailableError: a storage or network fault that callers should retry
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Domain-specific rule violations (AlreadyAssigned, NotEligible, expired
// delivery codes and the like) are declared as sentinels in the domain package
// that owns the rule, not here. This package only carries the categories that
// cut across every layer.
package errs
