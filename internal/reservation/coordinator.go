// Package reservation implements the coordinator that arbitrates
// concurrent booking attempts.  Seat-state changes go through the seat
// map's atomic transition; hold resolution is a compare-and-set on the
// hold's own state field, so exactly one of confirm, release and expiry
// wins for any given hold.
package reservation

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/boringbooking/boring-booking/internal/inventory"
	"github.com/boringbooking/boring-booking/internal/ledger"
	"github.com/boringbooking/boring-booking/internal/model"
)

// Hold resolution states.  A hold starts active and moves exactly once to
// one of the terminal states; the first writer wins and everyone else
// observes the terminal value.
const (
	holdActive int32 = iota
	holdConfirmed
	holdReleased
	holdExpired
)

// holdRecord is the coordinator's internal representation of a hold.  The
// immutable fields are set at creation; state is the single mutable field
// and is only changed through compare-and-set.
type holdRecord struct {
	id         string
	showtimeID uint64
	seatIDs    []model.SeatID
	createdAt  time.Time
	expiresAt  time.Time
	state      atomic.Int32
}

func (r *holdRecord) snapshot() model.Hold {
	seats := make([]model.SeatID, len(r.seatIDs))
	copy(seats, r.seatIDs)
	return model.Hold{
		ID:         r.id,
		ShowtimeID: r.showtimeID,
		SeatIDs:    seats,
		CreatedAt:  r.createdAt,
		ExpiresAt:  r.expiresAt,
	}
}

// Coordinator owns the hold registry and sequences inventory and ledger
// updates for every booking attempt.  All methods are safe for concurrent
// use and fail fast with a sentinel error instead of blocking or
// retrying.
type Coordinator struct {
	catalog *inventory.Catalog
	ledger  *ledger.Ledger

	mu    sync.RWMutex
	holds map[string]*holdRecord

	// retention controls how long expired hold records stay visible so a
	// late confirm deterministically reports expired instead of not found.
	retention time.Duration
}

// DefaultExpiredRetention is how long expired hold records remain visible
// after their deadline when no explicit retention is configured.
const DefaultExpiredRetention = 5 * time.Minute

// New constructs a coordinator over the given catalog and ledger.  A
// non-positive retention falls back to DefaultExpiredRetention.
func New(catalog *inventory.Catalog, led *ledger.Ledger, retention time.Duration) *Coordinator {
	if catalog == nil || led == nil {
		panic("nil catalog or ledger passed to reservation.New")
	}
	if retention <= 0 {
		retention = DefaultExpiredRetention
	}
	return &Coordinator{
		catalog:   catalog,
		ledger:    led,
		holds:     make(map[string]*holdRecord),
		retention: retention,
	}
}

// validateSeatSet rejects empty seat lists and lists containing the same
// seat twice.
func validateSeatSet(seatIDs []model.SeatID) error {
	if len(seatIDs) == 0 {
		return fmt.Errorf("%w: empty seat list", model.ErrInvalidSeatSet)
	}
	seen := make(map[model.SeatID]struct{}, len(seatIDs))
	for _, id := range seatIDs {
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: duplicate seat id %s", model.ErrInvalidSeatSet, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// RequestHold attempts to claim the given seats for ttl.  The FREE→HELD
// transition is all-or-nothing, so when two concurrent requests overlap,
// exactly one succeeds and the other observes ErrSeatConflict.  No
// partial hold ever surfaces.
func (c *Coordinator) RequestHold(showtimeID uint64, seatIDs []model.SeatID, ttl time.Duration) (model.Hold, error) {
	if err := validateSeatSet(seatIDs); err != nil {
		return model.Hold{}, err
	}
	if ttl <= 0 {
		return model.Hold{}, fmt.Errorf("%w: ttl must be positive", model.ErrInvalidTTL)
	}
	inv, err := c.catalog.Get(showtimeID)
	if err != nil {
		return model.Hold{}, err
	}
	if err := inv.Transition(seatIDs, model.SeatFree, model.SeatHeld); err != nil {
		return model.Hold{}, err
	}
	now := time.Now().UTC()
	rec := &holdRecord{
		id:         uuid.NewString(),
		showtimeID: showtimeID,
		seatIDs:    append([]model.SeatID(nil), seatIDs...),
		createdAt:  now,
		expiresAt:  now.Add(ttl),
	}
	c.mu.Lock()
	c.holds[rec.id] = rec
	c.mu.Unlock()
	return rec.snapshot(), nil
}

func (c *Coordinator) lookup(holdID string) (*holdRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, ok := c.holds[holdID]
	return rec, ok
}

func (c *Coordinator) remove(holdID string) {
	c.mu.Lock()
	delete(c.holds, holdID)
	c.mu.Unlock()
}

// freeHeldSeats returns a resolved hold's seats to FREE.  The seats are
// owned by the hold, so the transition cannot legally fail; an error here
// would mean the single-ownership invariant was broken elsewhere.
func (c *Coordinator) freeHeldSeats(rec *holdRecord) error {
	inv, err := c.catalog.Get(rec.showtimeID)
	if err != nil {
		return err
	}
	return inv.Transition(rec.seatIDs, model.SeatHeld, model.SeatFree)
}

// expire resolves an overdue hold to the expired state and frees its
// seats.  Only the winner of the compare-and-set performs the release, so
// the lazy confirm-time check and the background sweep can run
// concurrently without double-freeing.
func (c *Coordinator) expire(rec *holdRecord) {
	if rec.state.CompareAndSwap(holdActive, holdExpired) {
		_ = c.freeHeldSeats(rec)
	}
}

// Confirm turns an active hold into a committed booking for customerRef.
// A hold past its deadline always reports ErrHoldExpired and frees its
// seats, even when the background sweep has not caught up yet.  Confirmed
// and released holds are destroyed, so late calls against them report
// ErrHoldNotFound.
func (c *Coordinator) Confirm(holdID, customerRef string) (model.Booking, error) {
	rec, ok := c.lookup(holdID)
	if !ok {
		return model.Booking{}, fmt.Errorf("%w: %s", model.ErrHoldNotFound, holdID)
	}
	now := time.Now().UTC()
	if now.After(rec.expiresAt) {
		// Hard deadline, no grace period.  Resolve to expired ourselves if
		// nobody has yet.
		c.expire(rec)
		if rec.state.Load() == holdExpired {
			return model.Booking{}, fmt.Errorf("%w: %s", model.ErrHoldExpired, holdID)
		}
		return model.Booking{}, fmt.Errorf("%w: %s", model.ErrHoldNotFound, holdID)
	}
	if !rec.state.CompareAndSwap(holdActive, holdConfirmed) {
		if rec.state.Load() == holdExpired {
			return model.Booking{}, fmt.Errorf("%w: %s", model.ErrHoldExpired, holdID)
		}
		return model.Booking{}, fmt.Errorf("%w: %s", model.ErrHoldNotFound, holdID)
	}
	inv, err := c.catalog.Get(rec.showtimeID)
	if err != nil {
		return model.Booking{}, err
	}
	if err := inv.Transition(rec.seatIDs, model.SeatHeld, model.SeatBooked); err != nil {
		return model.Booking{}, err
	}
	booking := model.Booking{
		ID:          uuid.NewString(),
		ShowtimeID:  rec.showtimeID,
		SeatIDs:     append([]model.SeatID(nil), rec.seatIDs...),
		CustomerRef: customerRef,
		CommittedAt: now,
	}
	if _, err := c.ledger.Append(booking); err != nil {
		return model.Booking{}, err
	}
	c.remove(holdID)
	return booking, nil
}

// Release cancels an in-progress booking attempt, returning the hold's
// seats to FREE and destroying the record.  Unknown holds and holds that
// have already been resolved (including expired ones, whose seats the
// expiry path frees) report ErrHoldNotFound.
func (c *Coordinator) Release(holdID string) error {
	rec, ok := c.lookup(holdID)
	if !ok {
		return fmt.Errorf("%w: %s", model.ErrHoldNotFound, holdID)
	}
	if time.Now().UTC().After(rec.expiresAt) {
		c.expire(rec)
		return fmt.Errorf("%w: %s", model.ErrHoldNotFound, holdID)
	}
	if !rec.state.CompareAndSwap(holdActive, holdReleased) {
		return fmt.Errorf("%w: %s", model.ErrHoldNotFound, holdID)
	}
	if err := c.freeHeldSeats(rec); err != nil {
		return err
	}
	c.remove(holdID)
	return nil
}

// CancelBooking removes a committed booking from the ledger and frees its
// seats.  The ledger removal is the exactly-once point: concurrent
// cancellations of the same booking resolve to one winner and the rest
// report ErrBookingNotFound.
func (c *Coordinator) CancelBooking(bookingID string) (model.Booking, error) {
	b, err := c.ledger.Cancel(bookingID)
	if err != nil {
		return model.Booking{}, err
	}
	inv, err := c.catalog.Get(b.ShowtimeID)
	if err != nil {
		return model.Booking{}, err
	}
	if err := inv.Transition(b.SeatIDs, model.SeatBooked, model.SeatFree); err != nil {
		return model.Booking{}, err
	}
	return b, nil
}

// Sweep scans the registry once: overdue active holds are resolved to
// expired and their seats freed, and expired records past the retention
// window are pruned.  It returns the number of holds expired by this
// pass.
func (c *Coordinator) Sweep(now time.Time) int {
	c.mu.RLock()
	records := make([]*holdRecord, 0, len(c.holds))
	for _, rec := range c.holds {
		records = append(records, rec)
	}
	c.mu.RUnlock()

	expired := 0
	var prune []string
	for _, rec := range records {
		if now.After(rec.expiresAt) && rec.state.CompareAndSwap(holdActive, holdExpired) {
			_ = c.freeHeldSeats(rec)
			expired++
		}
		if rec.state.Load() == holdExpired && now.After(rec.expiresAt.Add(c.retention)) {
			prune = append(prune, rec.id)
		}
	}
	if len(prune) > 0 {
		c.mu.Lock()
		for _, id := range prune {
			delete(c.holds, id)
		}
		c.mu.Unlock()
	}
	return expired
}

// ActiveHoldCount reports how many unresolved holds are registered.
func (c *Coordinator) ActiveHoldCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, rec := range c.holds {
		if rec.state.Load() == holdActive {
			n++
		}
	}
	return n
}
