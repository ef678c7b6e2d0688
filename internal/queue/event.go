// Package queue defines the message payloads exchanged over the broker
// and the background consumer that records them.
package queue

// BookingConfirmedEvent is published when a hold is confirmed into a
// booking.  It carries enough context for downstream consumers to log or
// notify without querying the service.
type BookingConfirmedEvent struct {
	BookingID   string   `json:"booking_id"`
	ShowtimeID  uint64   `json:"showtime_id"`
	Movie       string   `json:"movie"`
	Theater     string   `json:"theater"`
	StartsAt    string   `json:"starts_at"`
	SeatLabels  []string `json:"seats"`
	CustomerRef string   `json:"customer_ref"`
	ConfirmedAt string   `json:"confirmed_at"`
}

// BookingCancelledEvent is published when a committed booking is
// cancelled and its seats return to the free pool.
type BookingCancelledEvent struct {
	BookingID   string   `json:"booking_id"`
	ShowtimeID  uint64   `json:"showtime_id"`
	Movie       string   `json:"movie"`
	Theater     string   `json:"theater"`
	SeatLabels  []string `json:"seats"`
	CancelledAt string   `json:"cancelled_at"`
}
