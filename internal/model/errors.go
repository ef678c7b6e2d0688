// Package model defines the domain types shared by the inventory, ledger,
// reservation and handler layers, together with the sentinel errors those
// layers return.  The sentinels let handlers distinguish failure scenarios
// with errors.Is and map each one onto a fixed HTTP status code without
// inspecting internal state.
package model

import "errors"

// ErrShowtimeNotFound is returned when a showtime id is not present in the
// catalog.  Handlers translate this into an HTTP 404 response.
var ErrShowtimeNotFound = errors.New("showtime not found")

// ErrSeatNotFound is returned when a seat id does not exist in the seat map
// of the addressed showtime.  Handlers translate this into an HTTP 400
// response because the client named a seat the showtime does not have.
var ErrSeatNotFound = errors.New("seat not found")

// ErrSeatConflict is returned when one or more requested seats are not in
// the state a transition expects, e.g. holding a seat that is already held
// or booked.  No seat changes state when this error is returned.  Handlers
// translate this into an HTTP 409 response.
var ErrSeatConflict = errors.New("seat conflict")

// ErrHoldNotFound is returned when a hold id is unknown or the hold has
// already been confirmed or released.  Handlers translate this into an
// HTTP 404 response.
var ErrHoldNotFound = errors.New("hold not found")

// ErrHoldExpired is returned when a hold has passed its deadline before
// confirmation.  The seats have been (or will be) freed by the expiry
// path.  Handlers translate this into an HTTP 410 response.
var ErrHoldExpired = errors.New("hold expired")

// ErrBookingNotFound is returned when a booking id is not present in the
// ledger.  Handlers translate this into an HTTP 404 response.
var ErrBookingNotFound = errors.New("booking not found")

// ErrDuplicateBooking is returned by the ledger when appending a booking
// whose id is already recorded.  This must not occur under correct id
// generation.
var ErrDuplicateBooking = errors.New("duplicate booking id")

// ErrInvalidSeatSet is returned when a request carries an empty, duplicate
// or malformed seat id list.  Handlers translate this into an HTTP 400
// response.
var ErrInvalidSeatSet = errors.New("invalid seat set")

// ErrInvalidTTL is returned when a requested hold ttl is outside the
// configured bounds.  Handlers translate this into an HTTP 400 response.
var ErrInvalidTTL = errors.New("invalid hold ttl")
