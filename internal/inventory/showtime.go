package inventory

import "github.com/boringbooking/boring-booking/internal/model"

// ShowtimeInventory binds one showtime's immutable metadata to the seat
// map that tracks its seat states.  It validates that requested seat ids
// belong to this showtime before delegating to the map; no seat mutation
// happens outside the map's atomic transition.
type ShowtimeInventory struct {
	meta  model.Showtime
	seats *SeatMap
}

// NewShowtimeInventory constructs an inventory for the given showtime
// metadata and seat map.  The seat map must be non-nil.
func NewShowtimeInventory(meta model.Showtime, seats *SeatMap) *ShowtimeInventory {
	if seats == nil {
		panic("nil seat map passed to NewShowtimeInventory")
	}
	return &ShowtimeInventory{meta: meta, seats: seats}
}

// Showtime returns a copy of the showtime metadata.
func (inv *ShowtimeInventory) Showtime() model.Showtime { return inv.meta }

// AvailableSeats returns a snapshot of the seat ids that are FREE right
// now.
func (inv *ShowtimeInventory) AvailableSeats() []model.SeatID {
	return inv.seats.AvailableSeats()
}

// SeatsByIDs resolves the requested seat ids against this showtime's map.
func (inv *ShowtimeInventory) SeatsByIDs(ids []model.SeatID) ([]model.Seat, error) {
	return inv.seats.SeatsByIDs(ids)
}

// Transition atomically moves all requested seats from one state to
// another, failing with ErrSeatNotFound for ids outside this showtime and
// ErrSeatConflict when any seat is not in the expected state.
func (inv *ShowtimeInventory) Transition(ids []model.SeatID, from, to model.SeatState) error {
	return inv.seats.TrySetState(ids, from, to)
}
