package model

import "time"

// Hold is an ephemeral claim on a set of seats made by a booking attempt.
// A hold is created when seats transition FREE→HELD and is resolved exactly
// once: confirmed into a booking, released by the client, or expired by its
// deadline.  A seat is referenced by at most one active hold at a time.
//
// Fields:
//  ID         – opaque hold identifier returned to the client.
//  ShowtimeID – showtime whose seats are claimed.
//  SeatIDs    – seats covered by this hold.
//  CreatedAt  – when the hold was registered.
//  ExpiresAt  – hard deadline; the hold is unusable past this instant.
type Hold struct {
	ID         string    `json:"hold_id"`
	ShowtimeID uint64    `json:"showtime_id"`
	SeatIDs    []SeatID  `json:"seat_ids"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}
