// Package inventory owns the in-memory seat state for every showtime in
// the catalog.  The seat map's all-or-nothing state transition is the only
// way seat states change, and its mutex is the single synchronization
// point per showtime, so bookings for different showtimes never block
// each other.
package inventory

import (
	"fmt"
	"sync"

	"github.com/boringbooking/boring-booking/internal/model"
)

// SeatMap holds the seats of one showtime.  Seat identifiers are unique
// within a map; the set of seats is fixed at construction and only the
// per-seat state mutates afterwards.  All methods are safe for concurrent
// use.
type SeatMap struct {
	mu    sync.Mutex
	order []model.SeatID
	state map[model.SeatID]model.SeatState
}

// NewSeatMap builds a rectangular seat map with the given row labels and
// number of columns per row.  All seats start FREE.
func NewSeatMap(rows []string, cols int) *SeatMap {
	seats := make([]model.Seat, 0, len(rows)*cols)
	for _, row := range rows {
		for col := 1; col <= cols; col++ {
			seats = append(seats, model.Seat{ID: model.SeatID{Row: row, Col: col}, State: model.SeatFree})
		}
	}
	m, _ := NewSeatMapFromSeats(seats)
	return m
}

// NewSeatMapFromSeats builds a seat map from an explicit seat list, which
// may carry initial states other than FREE (seeded or catalog-loaded
// bookings).  It returns an error when the list contains a duplicate seat
// identifier.
func NewSeatMapFromSeats(seats []model.Seat) (*SeatMap, error) {
	m := &SeatMap{
		order: make([]model.SeatID, 0, len(seats)),
		state: make(map[model.SeatID]model.SeatState, len(seats)),
	}
	for _, s := range seats {
		if _, ok := m.state[s.ID]; ok {
			return nil, fmt.Errorf("duplicate seat id %s", s.ID)
		}
		m.order = append(m.order, s.ID)
		m.state[s.ID] = s.State
	}
	return m, nil
}

// Size returns the number of seats in the map.
func (m *SeatMap) Size() int { return len(m.order) }

// SeatsByIDs returns the seats for the requested identifiers in request
// order.  It returns ErrSeatNotFound when any identifier does not exist in
// this map.
func (m *SeatMap) SeatsByIDs(ids []model.SeatID) ([]model.Seat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	seats := make([]model.Seat, 0, len(ids))
	for _, id := range ids {
		st, ok := m.state[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", model.ErrSeatNotFound, id)
		}
		seats = append(seats, model.Seat{ID: id, State: st})
	}
	return seats, nil
}

// TrySetState atomically transitions every requested seat from the `from`
// state to the `to` state.  The transition is all-or-nothing: when any
// seat is missing or not in the expected state, no seat changes and the
// call reports ErrSeatNotFound or ErrSeatConflict respectively.  Partial
// holds can therefore never surface.
func (m *SeatMap) TrySetState(ids []model.SeatID, from, to model.SeatState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range ids {
		st, ok := m.state[id]
		if !ok {
			return fmt.Errorf("%w: %s", model.ErrSeatNotFound, id)
		}
		if st != from {
			return fmt.Errorf("%w: seat %s is %s", model.ErrSeatConflict, id, st)
		}
	}
	for _, id := range ids {
		m.state[id] = to
	}
	return nil
}

// AvailableSeats returns the identifiers of all currently FREE seats in
// map order.  The result is a snapshot at call time, not a live view.
func (m *SeatMap) AvailableSeats() []model.SeatID {
	m.mu.Lock()
	defer m.mu.Unlock()
	free := make([]model.SeatID, 0, len(m.order))
	for _, id := range m.order {
		if m.state[id] == model.SeatFree {
			free = append(free, id)
		}
	}
	return free
}
