// Package ledger records committed bookings.  The ledger never inspects
// or forces seat-state transitions; the reservation coordinator sequences
// ledger and inventory updates around it.
package ledger

import (
	"fmt"
	"sync"

	"github.com/boringbooking/boring-booking/internal/model"
)

// Ledger is an in-memory, process-lifetime record of committed bookings.
// Append and Cancel are the only mutators.  Operations on different
// booking ids are independent; the map lock serializes access per call.
type Ledger struct {
	mu       sync.RWMutex
	bookings map[string]model.Booking
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{bookings: make(map[string]model.Booking)}
}

// Append records a committed booking and returns its id.  It fails with
// ErrDuplicateBooking when the id is already present, which must not occur
// under correct id generation.
func (l *Ledger) Append(b model.Booking) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.bookings[b.ID]; ok {
		return "", fmt.Errorf("%w: %s", model.ErrDuplicateBooking, b.ID)
	}
	l.bookings[b.ID] = b
	return b.ID, nil
}

// Get returns the booking with the given id or ErrBookingNotFound.
func (l *Ledger) Get(id string) (model.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	b, ok := l.bookings[id]
	if !ok {
		return model.Booking{}, fmt.Errorf("%w: %s", model.ErrBookingNotFound, id)
	}
	return b, nil
}

// Cancel removes the booking with the given id and returns the removed
// record so the caller can free its seats.  It fails with
// ErrBookingNotFound when the id is unknown, which also makes concurrent
// cancellations of the same booking resolve to exactly one winner.
func (l *Ledger) Cancel(id string) (model.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.bookings[id]
	if !ok {
		return model.Booking{}, fmt.Errorf("%w: %s", model.ErrBookingNotFound, id)
	}
	delete(l.bookings, id)
	return b, nil
}

// Len returns the number of bookings currently recorded.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.bookings)
}
