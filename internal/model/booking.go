package model

import "time"

// Booking is a committed reservation of seats for one showtime.  Bookings
// are immutable once appended to the ledger and are removed only by
// explicit cancellation, which frees the underlying seats again.
//
// Fields:
//  ID          – opaque booking identifier.
//  ShowtimeID  – showtime the seats belong to.
//  SeatIDs     – seats covered by the booking.
//  CustomerRef – caller-supplied reference for the customer.
//  CommittedAt – when the hold was confirmed into this booking.
type Booking struct {
	ID          string    `json:"booking_id"`
	ShowtimeID  uint64    `json:"showtime_id"`
	SeatIDs     []SeatID  `json:"seat_ids"`
	CustomerRef string    `json:"customer_ref"`
	CommittedAt time.Time `json:"committed_at"`
}
