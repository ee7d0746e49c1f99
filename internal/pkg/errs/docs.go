// Package errs provides the shared error taxonomy for the service.
//
// Each error kind follows the same pattern: a sentinel variable (for
// errors.Is classification), a struct type carrying the failure details,
// constructors with and without a cause, an Error method for formatting and
// an Unwrap method returning the sentinel.
//
// The kinds map directly onto the boundary contract: ObjectNotFoundError is
// the 404-equivalent, ObjectAlreadyExistsError and the ValueIs* errors are
// 400-equivalents, and anything else is treated as unclassified.
package errs
