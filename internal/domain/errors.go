// Sentinel errors shared by the repositories and services. Handlers
// translate them into HTTP responses: ErrValidation becomes 400,
// ErrFlightNotFound 404 and ErrSoldOut 409. Anything else is treated as a
// storage failure and surfaced with a generic message.
package domain

import "errors"

// ErrValidation is returned when a required input is missing or malformed
// before any storage interaction takes place.
var ErrValidation = errors.New("validation failed")

// ErrFlightNotFound is returned when the referenced flight does not exist.
var ErrFlightNotFound = errors.New("flight not found")

// ErrSoldOut is returned when the flight has no remaining seats at the
// moment of the decrement.
var ErrSoldOut = errors.New("no seats available")
